// Package highlight marks case-insensitive occurrences of a search term in
// display text, for terminal styling or HTML output.
package highlight

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/creamcroissant/adminboard/internal/support/textmatch"
)

// Segment is a run of text that either matches the term or not.
type Segment struct {
	Text  string
	Match bool
}

// Segments splits text around every case-insensitive occurrence of term,
// using the same rule as list filtering. An empty term or text yields a
// single non-matching segment.
func Segments(text, term string) []Segment {
	spans := textmatch.Spans(text, term)
	if len(spans) == 0 {
		return []Segment{{Text: text}}
	}

	var out []Segment
	last := 0
	for _, sp := range spans {
		if sp[0] > last {
			out = append(out, Segment{Text: text[last:sp[0]]})
		}
		out = append(out, Segment{Text: text[sp[0]:sp[1]], Match: true})
		last = sp[1]
	}
	if last < len(text) {
		out = append(out, Segment{Text: text[last:]})
	}
	return out
}

// Terminal renders text with matches passed through mark, e.g. a lipgloss
// style's Render method.
func Terminal(text, term string, mark func(...string) string) string {
	segs := Segments(text, term)
	if len(segs) == 1 && !segs[0].Match {
		return text
	}
	var b strings.Builder
	for _, s := range segs {
		if s.Match {
			b.WriteString(mark(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("mark")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^highlight$`)).OnElements("mark")
	return p
}

// HTML escapes text and wraps matches in <mark class="highlight">.
func HTML(text, term string) string {
	var b strings.Builder
	for _, s := range Segments(text, term) {
		if s.Match {
			b.WriteString(`<mark class="highlight">`)
			b.WriteString(html.EscapeString(s.Text))
			b.WriteString(`</mark>`)
		} else {
			b.WriteString(html.EscapeString(s.Text))
		}
	}
	return policy.Sanitize(b.String())
}
