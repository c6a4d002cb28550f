package render

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/creamcroissant/adminboard/internal/listing"
)

type row struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

var columns = []Column[row]{
	{Header: "ID", Value: func(r row) string { return strconv.Itoa(r.ID) }},
	{Header: "Name", Value: func(r row) string { return r.Name }, Term: "an"},
}

func samplePage() listing.Page[row] {
	return listing.Page[row]{
		Rows:    []row{{1, "Ana"}, {2, "Luis <admin>"}},
		Total:   5,
		Visible: 2,
		HasMore: true,
	}
}

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer

	f, err := ResolveFormat("auto", &buf)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f, "non-terminal writers get JSON")

	f, err = ResolveFormat(" YAML ", &buf)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ResolveFormat("xml", &buf)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPageTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Page(&buf, FormatTable, "users", samplePage(), columns))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID   Name", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "1    Ana", strings.TrimRight(lines[1], " "))
	assert.Equal(t, "showing 2 of 5 (more available)", lines[3])
}

func TestPageJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Page(&buf, FormatJSON, "users", samplePage(), columns))

	var doc Document[row]
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "users", doc.List)
	assert.Equal(t, 5, doc.Total)
	assert.Equal(t, 2, doc.Visible)
	assert.True(t, doc.HasMore)
	assert.Equal(t, samplePage().Rows, doc.Rows)
}

func TestPageYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Page(&buf, FormatYAML, "billing", listing.Page[row]{}, columns))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "billing", doc["list"])
	assert.Equal(t, []any{}, doc["rows"])
}

func TestPageHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Page(&buf, FormatHTML, "users", samplePage(), columns))

	out := buf.String()
	assert.Contains(t, out, `<th>Name</th>`)
	assert.Contains(t, out, `<td><mark class="highlight">An</mark>a</td>`)
	assert.Contains(t, out, `<td>Luis &lt;admin&gt;</td>`)
	assert.Contains(t, out, `showing 2 of 5 (more available)`)
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "1,234.50", Amount(1234.5))
	assert.Equal(t, "100.00", Amount(100))
}
