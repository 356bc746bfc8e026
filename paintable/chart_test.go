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


package paintable

import (
	"bytes"
	"errors"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/reportpaint/chart"
	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/param"
	"seehuhn.de/go/reportpaint/shape"
)

func linkName(ref *hyperlink.Ref) string {
	if ref == nil {
		return ""
	}
	return ref.Key()
}

func TestChartDerivedColumn(t *testing.T) {
	data := chart.NewTable("Region", "Sales", chart.DerivedName(chart.IntervalTop, "Sales"))
	data.AddRow("north", 10.0, 12.0)
	data.SetHyperlink(0, 1, &hyperlink.Ref{Name: "sales", Link: "http://example.com/?r=$(Region)"})

	painter := &chart.StaticPainter{
		Width:  100,
		Height: 100,
		Layout: chart.Plot{
			Bounds: shape.R(0, 0, 100, 100),
			Visuals: []chart.Visual{
				{Row: 0, Col: 2, Kind: chart.KindBar, Shape: shape.R(10, 10, 20, 20)},
			},
		},
	}
	info := &chart.Info{Hyperlink: &hyperlink.Ref{Name: "plot"}}
	params := param.Values{"Region": "north"}

	p := NewChartPaintable(nil, painter, data, info, shape.R(0, 0, 100, 100), params, nil)
	if painter.PaintCount() != 1 {
		t.Errorf("chart painted %d times during construction", painter.PaintCount())
	}

	ref := p.HyperlinkAt(15, 15)
	if linkName(ref) != "sales" {
		t.Fatalf("HyperlinkAt(15, 15) = %v", ref)
	}
	if val, ok := ref.Parameter("Region"); !ok || val != "north" {
		t.Errorf("parameter Region = %v, %t", val, ok)
	}
	if _, ok := data.Hyperlink(0, 1).Parameter("Region"); ok {
		t.Error("data set hyperlink was modified")
	}

	if got := linkName(p.HyperlinkAt(50, 50)); got != "plot" {
		t.Errorf("HyperlinkAt(50, 50) = %q", got)
	}
	if got := linkName(p.HyperlinkAt(150, 50)); got != "" {
		t.Errorf("HyperlinkAt(150, 50) = %q", got)
	}
}

func TestChartWithoutLinks(t *testing.T) {
	data := chart.NewTable("Region", "Sales")
	data.AddRow("north", 10.0)
	painter := &chart.StaticPainter{
		Width:  100,
		Height: 100,
		Layout: chart.Plot{
			Bounds:  shape.R(0, 0, 100, 100),
			Visuals: []chart.Visual{{Row: 0, Col: 1, Shape: shape.R(10, 10, 20, 20)}},
		},
	}

	p := NewChartPaintable(nil, painter, data, nil, shape.R(0, 0, 100, 100), nil, nil)
	if painter.PaintCount() != 0 {
		t.Errorf("chart painted %d times", painter.PaintCount())
	}
	for s := range p.HyperlinkAreas() {
		t.Errorf("unexpected area %v", s)
	}
}

func TestChartGeoFields(t *testing.T) {
	data := chart.NewTable("City", "Area", "Sales")
	data.AddRow("Leeds", "Yorkshire", 5.0)
	data.SetHyperlink(0, 0, &hyperlink.Ref{Name: "city"})
	data.SetHyperlink(0, 1, &hyperlink.Ref{Name: "area"})

	painter := &chart.StaticPainter{
		Width:  100,
		Height: 100,
		Layout: chart.Plot{
			Bounds: shape.R(0, 0, 100, 100),
			Visuals: []chart.Visual{
				{Row: 0, Col: 0, Kind: chart.KindGeoPolygon, Shape: shape.R(0, 0, 10, 10)},
				{Row: 0, Col: 2, Kind: chart.KindGeoPolygon, Shape: shape.R(20, 0, 10, 10)},
				{Row: 0, Col: 2, Kind: chart.KindGeoPoint, Shape: shape.R(40, 0, 10, 10)},
				{Row: 0, Col: 1, Kind: chart.KindGeoPoint, Shape: shape.R(60, 0, 10, 10)},
			},
		},
	}

	cases := []struct {
		info *chart.Info
		want []string
	}{
		{
			info: &chart.Info{GeoPointField: "City", GeoPolygonField: "Area"},
			want: []string{"", "area", "city", ""},
		},
		{
			info: &chart.Info{GeoPolygonField: "Area"},
			want: []string{"city", "area", "area", "area"},
		},
	}
	for i, c := range cases {
		p := NewChartPaintable(nil, painter, data, c.info, shape.R(0, 0, 100, 100), nil, nil)
		for j, x := range []float64{5, 25, 45, 65} {
			if got := linkName(p.HyperlinkAt(x, 5)); got != c.want[j] {
				t.Errorf("%d: HyperlinkAt(%g, 5) = %q, want %q", i, x, got, c.want[j])
			}
		}
	}
}

func TestChartRotated(t *testing.T) {
	data := chart.NewTable("Region", "Sales")
	data.AddRow("north", 10.0)
	data.SetDrillHyperlinks(0, 1, []*hyperlink.Ref{{Name: "drill"}})

	// content is 50x100, shown rotated in a 100x50 box
	painter := &chart.StaticPainter{
		Width:  50,
		Height: 100,
		Layout: chart.Plot{
			Bounds:  shape.R(0, 0, 50, 100),
			Visuals: []chart.Visual{{Row: 0, Col: 1, Kind: chart.KindBar, Shape: shape.R(0, 0, 10, 10)}},
		},
	}
	p := NewChartPaintable(nil, painter, data, nil, shape.R(200, 300, 100, 50), nil,
		&Options{Rotation: 90})

	if got := p.HyperlinksAt(95, 5); len(got) != 1 || got[0].Key() != "drill" {
		t.Errorf("HyperlinksAt(95, 5) = %v", got)
	}
	if got := p.HyperlinksAt(5, 5); got != nil {
		t.Errorf("HyperlinksAt(5, 5) = %v", got)
	}
	if p.HyperlinkAt(95, 5) != nil {
		t.Error("drill area has a primary hyperlink")
	}

	page := NewPage(600, 800)
	page.Add(p)
	if got := page.HyperlinksAt(295, 305); len(got) != 1 || got[0].Key() != "drill" {
		t.Errorf("page.HyperlinksAt(295, 305) = %v", got)
	}
	for s := range page.HyperlinkAreas() {
		b := s.Bounds()
		if b != shape.R(290, 300, 10, 10) {
			t.Errorf("area bounds %v", b)
		}
	}
}

// rotatingChart paints a static chart at any angle.
type rotatingChart struct {
	*chart.StaticPainter
}

func (c rotatingChart) Rotated(deg float64) Painter { return c }

func TestChartRotatedByPainter(t *testing.T) {
	data := chart.NewTable("Region", "Sales")
	data.AddRow("north", 10.0)
	data.SetHyperlink(0, 1, &hyperlink.Ref{Name: "bar"})

	painter := rotatingChart{&chart.StaticPainter{
		Width:  100,
		Height: 100,
		Layout: chart.Plot{
			Bounds:  shape.R(0, 0, 100, 100),
			Visuals: []chart.Visual{{Row: 0, Col: 1, Kind: chart.KindBar, Shape: shape.R(40, 0, 20, 20)}},
		},
	}}
	p := NewChartPaintable(nil, painter, data, nil, shape.R(0, 0, 100, 100), nil,
		&Options{Rotation: 45})

	if a := p.Transformer().Angle; a != 45 {
		t.Errorf("transformer angle %g, want 45", a)
	}

	// the centre (50, 10) of the bar is shown near (78.3, 21.7)
	if got := linkName(p.HyperlinkAt(78, 22)); got != "bar" {
		t.Errorf("HyperlinkAt(78, 22) = %q, want \"bar\"", got)
	}
	if got := p.HyperlinkAt(50, 10); got != nil {
		t.Errorf("HyperlinkAt(50, 10) = %v, want nil", got)
	}

	x, y := p.ContentToPage(50, 10)
	if d := cmp.Diff([]float64{50 + 20*math.Sqrt2, 50 - 20*math.Sqrt2}, []float64{x, y}, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("ContentToPage (-want +got):\n%s", d)
	}
}

func TestChartMergeFailure(t *testing.T) {
	data := chart.NewTable("Sales")
	data.AddRow(1.0)
	data.SetHyperlink(0, 0, &hyperlink.Ref{Name: "x", Link: "$(boom)"})
	painter := &chart.StaticPainter{
		Width:  10,
		Height: 10,
		Layout: chart.Plot{
			Bounds:  shape.R(0, 0, 10, 10),
			Visuals: []chart.Visual{{Row: 0, Col: 0, Shape: shape.R(0, 0, 10, 10)}},
		},
	}
	params := param.GetterFunc(func(name string) (any, bool, error) {
		return nil, false, errors.New("lookup of " + name + " failed")
	})
	buf := &bytes.Buffer{}
	p := NewChartPaintable(&BasicElement{Name: "chart1"}, painter, data, nil,
		shape.R(0, 0, 10, 10), params, &Options{Logger: log.New(buf, "", 0)})

	if ref := p.HyperlinkAt(5, 5); ref != nil {
		t.Errorf("unexpected hyperlink %v", ref)
	}
	if !strings.Contains(buf.String(), "lookup of boom failed") {
		t.Errorf("missing log message, got %q", buf.String())
	}
}
