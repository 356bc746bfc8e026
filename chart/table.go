// seehuhn.de/go/reportpaint - paintables and hit regions for report pages
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package chart

import (
	"golang.org/x/exp/slices"

	"seehuhn.de/go/reportpaint/hyperlink"
)

// Table is an in-memory [DataSet].
type Table struct {
	Headers []string
	Rows    [][]any

	links  map[cell]*hyperlink.Ref
	drills map[cell][]*hyperlink.Ref
}

type cell struct {
	row, col int
}

var _ DataSet = (*Table)(nil)

// NewTable returns a new table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends a row of values.
func (t *Table) AddRow(values ...any) {
	t.Rows = append(t.Rows, values)
}

// ColCount implements the [DataSet] interface.
func (t *Table) ColCount() int { return len(t.Headers) }

// RowCount implements the [DataSet] interface.
func (t *Table) RowCount() int { return len(t.Rows) }

// Header implements the [DataSet] interface.
func (t *Table) Header(col int) string {
	if col < 0 || col >= len(t.Headers) {
		return ""
	}
	return t.Headers[col]
}

// Value returns the value of a cell, or nil if the cell does not exist.
func (t *Table) Value(row, col int) any {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][col]
}

// SetHyperlink sets the hyperlink of a cell.  A nil ref removes the link.
func (t *Table) SetHyperlink(row, col int, ref *hyperlink.Ref) {
	if ref == nil {
		delete(t.links, cell{row, col})
		return
	}
	if t.links == nil {
		t.links = make(map[cell]*hyperlink.Ref)
	}
	t.links[cell{row, col}] = ref
}

// SetDrillHyperlinks sets the drill hyperlinks of a cell.
func (t *Table) SetDrillHyperlinks(row, col int, refs []*hyperlink.Ref) {
	if len(refs) == 0 {
		delete(t.drills, cell{row, col})
		return
	}
	if t.drills == nil {
		t.drills = make(map[cell][]*hyperlink.Ref)
	}
	t.drills[cell{row, col}] = slices.Clone(refs)
}

// Hyperlink implements the [DataSet] interface.
func (t *Table) Hyperlink(row, col int) *hyperlink.Ref {
	return t.links[cell{row, col}]
}

// DrillHyperlinks implements the [DataSet] interface.
func (t *Table) DrillHyperlinks(row, col int) []*hyperlink.Ref {
	return t.drills[cell{row, col}]
}
