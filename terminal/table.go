// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Passed to UI.Table to provide a nicely formatted table.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a new Table structure that can be used with UI.Table.
func NewTable(headers ...string) *Table {
	return &Table{
		Headers: headers,
	}
}

// AddRow appends a row, missing trailing cells are left blank.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Headers))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Render writes the table to w without borders or wrapping.
func (t *Table) Render(w io.Writer) error {
	table := TableWithSettings(w, t.Headers)
	if err := table.Bulk(t.Rows); err != nil {
		return err
	}
	return table.Render()
}

func TableWithSettings(writer io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(writer,
		tablewriter.WithBorders(tw.BorderNone),
		tablewriter.WithConfig(
			tablewriter.Config{
				Row: tw.CellConfig{Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone}},
			}))
	table.Header(headers)
	return table
}

// Table implements UI
func (u *basicUI) Table(tbl *Table, opts ...Option) {
	// Build our config and set our options
	cfg := &config{Writer: color.Output}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := tbl.Render(cfg.Writer); err != nil {
		u.Error(err.Error())
	}
}
