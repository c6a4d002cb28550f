// Package textmatch is the case-insensitive substring rule shared by list
// filtering and match highlighting. Each rune is lowered on its own, so a
// filter hit always has a highlightable span and the reverse.
package textmatch

import "unicode"

// Contains reports whether substr occurs in s ignoring case. An empty substr
// matches everything.
func Contains(s, substr string) bool {
	if substr == "" {
		return true
	}
	text, _ := lowered(s)
	term, _ := lowered(substr)
	return index(text, term, 0) >= 0
}

// Spans returns the byte ranges [start, end) of s holding non-overlapping
// occurrences of substr, scanning left to right.
func Spans(s, substr string) [][2]int {
	if s == "" || substr == "" {
		return nil
	}
	text, offsets := lowered(s)
	term, _ := lowered(substr)

	var out [][2]int
	for i := index(text, term, 0); i >= 0; i = index(text, term, i+len(term)) {
		out = append(out, [2]int{offsets[i], offsets[i+len(term)]})
	}
	return out
}

// lowered returns the lowered runes of s and the byte offset of each rune,
// with len(s) appended.
func lowered(s string) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		runes = append(runes, unicode.ToLower(r))
		offsets = append(offsets, i)
	}
	return runes, append(offsets, len(s))
}

func index(text, term []rune, from int) int {
next:
	for i := from; i+len(term) <= len(text); i++ {
		for j, r := range term {
			if text[i+j] != r {
				continue next
			}
		}
		return i
	}
	return -1
}
