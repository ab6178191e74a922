package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_ColumnWidths(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "CONTENT"},
		Rows: [][]string{
			{"1", "Buy milk"},
			{"12", "Write the quarterly report"},
		},
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 2, widths[0])  // "ID" and "12"
	assert.Equal(t, 26, widths[1]) // "Write the quarterly report"
}

func TestTable_ColumnWidths_MaxWidth(t *testing.T) {
	table := &Table{
		Headers:  []string{"ID", "CONTENT"},
		Rows:     [][]string{{"1", "This is a very long description that should be truncated"}},
		MaxWidth: 20,
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 2, widths[0])
	assert.Equal(t, 20, widths[1])
}

func TestTable_Render_Plain(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "CONTENT"},
		Rows: [][]string{
			{"1", "A"},
			{"2", "Buy milk"},
		},
		Plain: true,
	}

	want := " ID  CONTENT\n" +
		" ────────────\n" +
		" 1   A\n" +
		" 2   Buy milk\n"
	assert.Equal(t, want, table.Render())
}

func TestTable_Render_Styled(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "CONTENT"},
		Rows:    [][]string{{"1", "Alice"}},
	}

	output := table.Render()

	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "Alice")
	assert.Contains(t, output, "─")
}

func TestTable_Render_Empty(t *testing.T) {
	table := &Table{Headers: []string{}, Rows: [][]string{}}
	assert.Empty(t, table.Render())
}

func TestTable_Render_Truncation(t *testing.T) {
	table := &Table{
		Headers:  []string{"Text"},
		Rows:     [][]string{{"This is way too long"}},
		MaxWidth: 10,
		Plain:    true,
	}

	assert.Contains(t, table.Render(), "This is w…")
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"abc", 5, "abc  "},
		{"hello", 5, "hello"},
		{"longer", 3, "longer"},
		{"", 3, "   "},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, padRight(tc.input, tc.width))
	}
}

func TestTable_Render_RowsHaveFewerColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "CONTENT", "EXTRA"},
		Rows:    [][]string{{"1", "Alice"}},
		Plain:   true,
	}

	output := table.Render()

	assert.Contains(t, output, "Alice")
	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Equal(t, 3, len(lines))
}
