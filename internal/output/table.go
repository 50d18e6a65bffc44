package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableMode controls how a Table renders.
type TableMode int

const (
	ASCII    TableMode = iota // box-drawn terminal table
	Markdown                  // GitHub-flavoured Markdown table
	CSV                       // comma separated, for piping
)

// ParseTableMode maps "table", "markdown" or "csv" onto a TableMode.
func ParseTableMode(s string) (TableMode, error) {
	switch s {
	case "", "table", "ascii":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	case "csv":
		return CSV, nil
	}
	return ASCII, fmt.Errorf("unknown table format %q", s)
}

// Table wraps a go-pretty table writer.
type Table struct {
	writer table.Writer
	mode   TableMode
}

// NewTable returns an empty table that renders in mode m.
func NewTable(m TableMode) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &Table{writer: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

// Row appends a data row.
func (t *Table) Row(vals ...any) {
	t.writer.AppendRow(table.Row(vals))
}

// Footer appends a footer row.
func (t *Table) Footer(vals ...any) {
	t.writer.AppendFooter(table.Row(vals))
}

// AlignRight right-aligns the given 1-based columns (numbers).
func (t *Table) AlignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight, AlignFooter: text.AlignRight}
	}
	t.writer.SetColumnConfigs(cfgs)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return t.writer.Length() }

// String renders the table.
func (t *Table) String() string {
	switch t.mode {
	case Markdown:
		return t.writer.RenderMarkdown()
	case CSV:
		return t.writer.RenderCSV()
	default:
		return t.writer.Render()
	}
}
