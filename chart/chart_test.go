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
	"testing"

	"seehuhn.de/go/reportpaint/graphics"
	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/shape"
)

func TestDerivedNames(t *testing.T) {
	for _, kind := range []DerivedKind{IntervalTop, BoxMin, BoxQ1, BoxMedian, BoxQ3, BoxMax} {
		name := DerivedName(kind, "Sales")
		base, ok := BaseName(name)
		if !ok || base != "Sales" {
			t.Errorf("BaseName(%q) = %q, %t", name, base, ok)
		}
	}

	for _, kind := range []DerivedKind{-1, BoxMax + 1, 100} {
		if got := DerivedName(kind, "Sales"); got != "Sales" {
			t.Errorf("DerivedName(%d, \"Sales\") = %q", kind, got)
		}
	}

	for _, header := range []string{"Sales", "__top__", "top__Sales"} {
		base, ok := BaseName(header)
		if ok || base != header {
			t.Errorf("BaseName(%q) = %q, %t", header, base, ok)
		}
	}
}

func TestTable(t *testing.T) {
	tab := NewTable("Region", "Sales")
	tab.AddRow("north", 10.0)
	tab.AddRow("south", 20.0)

	if tab.ColCount() != 2 || tab.RowCount() != 2 {
		t.Fatalf("size %dx%d", tab.RowCount(), tab.ColCount())
	}
	if ColumnIndex(tab, "Sales") != 1 || ColumnIndex(tab, "Profit") != -1 {
		t.Error("ColumnIndex failed")
	}
	if tab.Value(1, 1) != 20.0 || tab.Value(5, 0) != nil {
		t.Error("Value failed")
	}

	ref := &hyperlink.Ref{Name: "a"}
	tab.SetHyperlink(0, 1, ref)
	if tab.Hyperlink(0, 1) != ref || tab.Hyperlink(1, 1) != nil {
		t.Error("hyperlink lookup failed")
	}
	tab.SetHyperlink(0, 1, nil)
	if tab.Hyperlink(0, 1) != nil {
		t.Error("hyperlink not removed")
	}

	drills := []*hyperlink.Ref{{Name: "d"}}
	tab.SetDrillHyperlinks(1, 0, drills)
	drills[0] = nil
	if got := tab.DrillHyperlinks(1, 0); len(got) != 1 || got[0] == nil {
		t.Error("drill hyperlinks not copied")
	}
}

func TestStaticPainter(t *testing.T) {
	p := &StaticPainter{
		Width:  100,
		Height: 50,
		Layout: Plot{
			Bounds: shape.R(10, 5, 80, 40),
			Visuals: []Visual{
				{Row: 0, Col: 1, Kind: KindBar, Shape: shape.R(20, 10, 10, 35)},
				{Row: 1, Col: 1, Kind: KindLine, Shape: shape.Line{X1: 10, Y1: 45, X2: 90, Y2: 5}},
			},
		},
	}
	if p.Plot() != nil {
		t.Error("plot available before painting")
	}

	rec := graphics.NewRecorder()
	p.Paint(rec, 100, 0, 200, 100)
	plot := p.Plot()
	if plot == nil || p.PaintCount() != 1 {
		t.Fatal("plot missing after painting")
	}
	if plot.Bounds != shape.R(120, 10, 160, 80) {
		t.Errorf("plot bounds = %v", plot.Bounds)
	}
	if got := plot.Visuals[0].Shape; got != shape.R(140, 20, 20, 70) {
		t.Errorf("bar = %v", got)
	}
	if len(rec.Ops) != 2 || rec.Ops[0].Kind != graphics.OpFill || rec.Ops[1].Kind != graphics.OpStroke {
		t.Errorf("unexpected drawing operations %v", rec.Ops)
	}

	// the layout itself is unchanged
	if p.Layout.Visuals[0].Shape != shape.R(20, 10, 10, 35) {
		t.Error("layout modified by Paint")
	}
}
