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


// Package chart describes the parts of a rendered chart which are needed
// to attach hyperlinks to its visual elements.
//
// A chart is painted by a [Painter].  After painting, the painter exposes
// the geometry of the plot as a [Plot]: a list of visual elements, each
// tied to a row and column of the chart's [DataSet].
package chart

import (
	"strings"

	"seehuhn.de/go/reportpaint/graphics"
	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/shape"
)

// DataSet is the tabular data shown in a chart.
type DataSet interface {
	ColCount() int
	RowCount() int

	// Header returns the name of a column.
	Header(col int) string

	// Hyperlink returns the hyperlink of a cell, or nil.
	Hyperlink(row, col int) *hyperlink.Ref

	// DrillHyperlinks returns the drill hyperlinks of a cell.
	DrillHyperlinks(row, col int) []*hyperlink.Ref
}

// Info holds chart-wide settings.
type Info struct {
	// Hyperlink is attached to the whole plot area.
	Hyperlink *hyperlink.Ref

	// GeoPointField and GeoPolygonField name the columns holding point
	// and polygon features of a map chart.  Empty strings mean that the
	// field is not bound.
	GeoPointField   string
	GeoPolygonField string
}

// Kind describes the type of a visual element.
type Kind int

// These are the kinds of visual elements.
const (
	KindPoint Kind = iota
	KindBar
	KindLine
	KindArea
	KindPie
	KindText
	KindGeoPoint
	KindGeoPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindBar:
		return "bar"
	case KindLine:
		return "line"
	case KindArea:
		return "area"
	case KindPie:
		return "pie"
	case KindText:
		return "text"
	case KindGeoPoint:
		return "geo point"
	case KindGeoPolygon:
		return "geo polygon"
	default:
		return "unknown"
	}
}

// Visual is a graphical element representing one cell of the data set.
type Visual struct {
	Row, Col int
	Kind     Kind

	// Shape is the outline of the element, in the coordinate system the
	// chart was painted in.
	Shape shape.Shape
}

// Plot is the geometry of a painted chart.
type Plot struct {
	// Bounds is the plot area.
	Bounds shape.Rect

	Visuals []Visual
}

// Painter paints a chart.
//
// The geometry of the chart is only known after Paint has been called.
// Plot returns nil before the first call to Paint.
type Painter interface {
	PreferredSize() (w, h float64)
	Paint(g graphics.Graphics, x, y, w, h float64)
	IsScalable() bool
	Plot() *Plot
}

// DerivedKind identifies a column computed from another column.
type DerivedKind int

// These are the kinds of derived columns.
const (
	IntervalTop DerivedKind = iota
	BoxMin
	BoxQ1
	BoxMedian
	BoxQ3
	BoxMax
)

var derivedPrefix = []string{
	IntervalTop: "__top__",
	BoxMin:      "__min__",
	BoxQ1:       "__q1__",
	BoxMedian:   "__median__",
	BoxQ3:       "__q3__",
	BoxMax:      "__max__",
}

// DerivedName returns the header of a column of the given kind, derived
// from the column base.  Unknown kinds return base unchanged.
func DerivedName(kind DerivedKind, base string) string {
	if kind < 0 || int(kind) >= len(derivedPrefix) {
		return base
	}
	return derivedPrefix[kind] + base
}

// BaseName returns the name of the column a derived column was computed
// from.  For columns which are not derived, ok is false and header is
// returned unchanged.
func BaseName(header string) (base string, ok bool) {
	for _, prefix := range derivedPrefix {
		if rest, found := strings.CutPrefix(header, prefix); found && rest != "" {
			return rest, true
		}
	}
	return header, false
}

// ColumnIndex returns the index of the column with the given header,
// or -1 if there is no such column.
func ColumnIndex(data DataSet, header string) int {
	for col := range data.ColCount() {
		if data.Header(col) == header {
			return col
		}
	}
	return -1
}
