// Package render writes a listing page to the terminal or a pipe as a table,
// JSON, YAML or an HTML fragment.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/creamcroissant/adminboard/internal/highlight"
	"github.com/creamcroissant/adminboard/internal/listing"
)

// ErrUnknownFormat 表示不支持的输出格式。
var ErrUnknownFormat = errors.New("render: unknown output format / 不支持的输出格式")

const (
	FormatAuto  = "auto"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatHTML  = "html"
)

// Formats lists the accepted --output values.
var Formats = []string{FormatAuto, FormatTable, FormatJSON, FormatYAML, FormatHTML}

// Column describes one table column.
type Column[R any] struct {
	Header string
	Value  func(R) string
	// Term is highlighted in HTML output, usually the active search text.
	Term string
}

// Document is the structured form of a page for JSON and YAML.
type Document[R any] struct {
	List    string `json:"list" yaml:"list"`
	Total   int    `json:"total" yaml:"total"`
	Visible int    `json:"visible" yaml:"visible"`
	HasMore bool   `json:"has_more" yaml:"has_more"`
	Rows    []R    `json:"rows" yaml:"rows"`
}

// ResolveFormat maps "auto" to table on a terminal and JSON otherwise.
func ResolveFormat(format string, out io.Writer) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "", FormatAuto:
		if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return FormatTable, nil
		}
		return FormatJSON, nil
	case FormatTable, FormatJSON, FormatYAML, FormatHTML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Page writes page in format.
func Page[R any](w io.Writer, format, name string, page listing.Page[R], columns []Column[R]) error {
	format, err := ResolveFormat(format, w)
	if err != nil {
		return err
	}

	doc := Document[R]{
		List:    name,
		Total:   page.Total,
		Visible: len(page.Rows),
		HasMore: page.HasMore,
		Rows:    page.Rows,
	}
	if doc.Rows == nil {
		doc.Rows = []R{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatHTML:
		return writeHTML(w, name, page, columns)
	default:
		return writeTable(w, page, columns)
	}
}

func writeTable[R any](w io.Writer, page listing.Page[R], columns []Column[R]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range page.Rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = c.Value(row)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Summary(page))
	return err
}

func writeHTML[R any](w io.Writer, name string, page listing.Page[R], columns []Column[R]) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<table class=\"%s\">\n<thead><tr>", highlight.HTML(name, ""))
	for _, c := range columns {
		fmt.Fprintf(&b, "<th>%s</th>", highlight.HTML(c.Header, ""))
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range page.Rows {
		b.WriteString("<tr>")
		for _, c := range columns {
			fmt.Fprintf(&b, "<td>%s</td>", highlight.HTML(c.Value(row), c.Term))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
	fmt.Fprintf(&b, "<p class=\"summary\">%s</p>\n", highlight.HTML(Summary(page), ""))
	_, err := io.WriteString(w, b.String())
	return err
}

// Summary describes how much of the filtered result is shown.
func Summary[R any](page listing.Page[R]) string {
	s := fmt.Sprintf("showing %d of %d", len(page.Rows), page.Total)
	if page.HasMore {
		s += " (more available)"
	}
	return s
}

var amountPrinter = message.NewPrinter(language.English)

// Amount formats a currency amount with thousands separators.
func Amount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}
