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


// Package imagemap writes the hyperlink areas of a report page as an HTML
// client-side image map.
package imagemap

import (
	"errors"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/param"
	"seehuhn.de/go/reportpaint/shape"
)

// Shape names used in the "shape" attribute of area elements.
const (
	ShapeRect   = "rect"
	ShapeCircle = "circle"
	ShapePoly   = "poly"
)

// flatness is the tolerance used when curved outlines are converted to
// polygons, in pixels.
const flatness = 0.5

// Area is one clickable region of an image map.
type Area struct {
	Shape  string
	Coords []int
	Href   string
	Title  string
	Target string
}

// Source provides hyperlink areas in page coordinates.
type Source interface {
	HyperlinkAreas() iter.Seq2[shape.Shape, []*hyperlink.Ref]
}

// Areas converts the hyperlink areas of src into image map areas.
//
// Each region uses the first of its hyperlinks.  Parameter references in
// links and tooltips are resolved using values.  Line segments have no
// interior and are skipped.  The coordinates are multiplied by scale,
// which must be positive.
func Areas(src Source, values param.Lookup, scale float64) []Area {
	var res []Area
	for s, refs := range src.HyperlinkAreas() {
		if len(refs) == 0 || refs[0] == nil {
			continue
		}
		ref := refs[0]
		href, title := ref.Resolve(values)
		for _, a := range convert(s, scale) {
			a.Href = href
			a.Title = title
			a.Target = ref.TargetFrame
			res = append(res, a)
		}
	}
	return res
}

func convert(s shape.Shape, scale float64) []Area {
	round := func(x float64) int {
		return int(math.Round(x * scale))
	}
	switch s := s.(type) {
	case shape.Rect:
		return []Area{{
			Shape:  ShapeRect,
			Coords: []int{round(s.X), round(s.Y), round(s.X + s.W), round(s.Y + s.H)},
		}}
	case shape.Ellipse:
		if s.W == s.H {
			return []Area{{
				Shape:  ShapeCircle,
				Coords: []int{round(s.X + s.W/2), round(s.Y + s.H/2), round(s.W / 2)},
			}}
		}
	case shape.Line:
		return nil
	case *shape.Area:
		var res []Area
		for _, part := range s.Parts {
			res = append(res, convert(part, scale)...)
		}
		return res
	}

	var res []Area
	for _, line := range s.Path().Flatten(flatness) {
		if len(line) < 3 {
			continue
		}
		coords := make([]int, 0, 2*len(line))
		for _, p := range line {
			coords = append(coords, round(p.X), round(p.Y))
		}
		res = append(res, Area{Shape: ShapePoly, Coords: coords})
	}
	return res
}

// Render writes a "map" element with the given name, containing one
// "area" element for each entry in areas.
func Render(w io.Writer, name string, areas []Area) error {
	m := &html.Node{
		Type:     html.ElementNode,
		Data:     "map",
		DataAtom: atom.Map,
		Attr:     []html.Attribute{{Key: "name", Val: name}},
	}
	for _, a := range areas {
		attr := []html.Attribute{
			{Key: "shape", Val: a.Shape},
			{Key: "coords", Val: joinInts(a.Coords)},
			{Key: "href", Val: a.Href},
		}
		if a.Title != "" {
			attr = append(attr, html.Attribute{Key: "title", Val: a.Title})
		}
		if a.Target != "" {
			attr = append(attr, html.Attribute{Key: "target", Val: a.Target})
		}
		m.AppendChild(&html.Node{
			Type:     html.ElementNode,
			Data:     "area",
			DataAtom: atom.Area,
			Attr:     attr,
		})
	}
	return html.Render(w, m)
}

// ErrNoMap is returned by [Parse] if the input contains no map element.
var ErrNoMap = errors.New("no image map found")

// Parse reads the first image map from an HTML document.
// It returns the name of the map and its areas.
func Parse(r io.Reader) (string, []Area, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", nil, err
	}

	m := find(doc, atom.Map)
	if m == nil {
		return "", nil, ErrNoMap
	}

	var areas []Area
	for c := m.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Area {
			continue
		}
		a := Area{
			Shape:  attr(c, "shape"),
			Href:   attr(c, "href"),
			Title:  attr(c, "title"),
			Target: attr(c, "target"),
		}
		a.Coords, err = parseInts(attr(c, "coords"))
		if err != nil {
			return "", nil, err
		}
		areas = append(areas, a)
	}
	return attr(m, "name"), areas, nil
}

func find(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := find(c, a); res != nil {
			return res
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

func parseInts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	res := make([]int, len(fields))
	for i, f := range fields {
		x, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}
