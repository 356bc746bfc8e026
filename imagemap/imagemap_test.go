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


package imagemap

import (
	"bytes"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/paintable"
	"seehuhn.de/go/reportpaint/param"
	"seehuhn.de/go/reportpaint/shape"
)

type entry struct {
	s    shape.Shape
	refs []*hyperlink.Ref
}

type fixedSource []entry

func (src fixedSource) HyperlinkAreas() iter.Seq2[shape.Shape, []*hyperlink.Ref] {
	return func(yield func(shape.Shape, []*hyperlink.Ref) bool) {
		for _, e := range src {
			if !yield(e.s, e.refs) {
				return
			}
		}
	}
}

func TestAreas(t *testing.T) {
	item := &hyperlink.Ref{Name: "item", Link: "http://example.com/?id=$(id)", Tooltip: "item $(id)", TargetFrame: "_blank"}
	other := &hyperlink.Ref{Name: "other", Link: "http://example.com/other"}
	src := fixedSource{
		{shape.R(10, 20, 30, 40), []*hyperlink.Ref{item, other}},
		{shape.Ellipse{X: 0, Y: 0, W: 20, H: 20}, []*hyperlink.Ref{other}},
		{shape.NewPolygon([]float64{0, 10, 10}, []float64{0, 0, 10}), []*hyperlink.Ref{other}},
		{shape.Line{X1: 0, Y1: 0, X2: 5, Y2: 5}, []*hyperlink.Ref{other}},
		{shape.R(0, 0, 1, 1), nil},
	}

	got := Areas(src, param.Values{"id": "7"}, 2)
	want := []Area{
		{Shape: ShapeRect, Coords: []int{20, 40, 80, 120}, Href: "http://example.com/?id=7", Title: "item 7", Target: "_blank"},
		{Shape: ShapeCircle, Coords: []int{20, 20, 20}, Href: "http://example.com/other"},
		{Shape: ShapePoly, Coords: []int{0, 0, 20, 0, 20, 20}, Href: "http://example.com/other"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("areas (-want +got):\n%s", d)
	}
}

func TestRenderParse(t *testing.T) {
	areas := []Area{
		{Shape: ShapeRect, Coords: []int{0, 0, 10, 10}, Href: "a.html", Title: "A & B"},
		{Shape: ShapePoly, Coords: []int{1, 2, 3, 4, 5, 6}, Href: "b.html?x=1&y=2", Target: "main"},
	}
	buf := &bytes.Buffer{}
	err := Render(buf, "chart1", areas)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), `<map name="chart1">`) {
		t.Errorf("unexpected output %q", buf.String())
	}

	name, got, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if name != "chart1" {
		t.Errorf("name %q", name)
	}
	if d := cmp.Diff(areas, got); d != "" {
		t.Errorf("areas (-want +got):\n%s", d)
	}

	_, _, err = Parse(strings.NewReader("<p>no map here</p>"))
	if !errors.Is(err, ErrNoMap) {
		t.Errorf("got %v, want %v", err, ErrNoMap)
	}
}

func TestPageAreas(t *testing.T) {
	p := paintable.NewLinkedPaintable(nil, nil, shape.R(100, 50, 200, 100), nil)
	p.SetHyperlink(shape.R(10, 10, 20, 20), &hyperlink.Ref{Name: "bar", Link: "bar.html"})

	page := paintable.NewPage(600, 800)
	page.Add(p)

	got := Areas(page, nil, 1)
	want := []Area{{Shape: ShapeRect, Coords: []int{110, 60, 130, 80}, Href: "bar.html"}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("areas (-want +got):\n%s", d)
	}
}
