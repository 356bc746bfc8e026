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


// Package paper lists standard paper sizes, in PostScript points.
package paper

import (
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"

	"seehuhn.de/go/geom/rect"
)

func mm(w, h float64) rect.Rect {
	const scale = 72 / 25.4
	return rect.Rect{URx: w * scale, URy: h * scale}
}

// Standard paper sizes, in portrait orientation.
var (
	A3        = mm(297, 420)
	A4        = mm(210, 297)
	A5        = mm(148, 210)
	B4        = mm(250, 353)
	B5        = mm(176, 250)
	Letter    = rect.Rect{URx: 612, URy: 792}
	Legal     = rect.Rect{URx: 612, URy: 1008}
	Executive = rect.Rect{URx: 522, URy: 756}
	Tabloid   = rect.Rect{URx: 792, URy: 1224}
)

var byName = map[string]rect.Rect{
	"a3":        A3,
	"a4":        A4,
	"a5":        A5,
	"b4":        B4,
	"b5":        B5,
	"letter":    Letter,
	"legal":     Legal,
	"executive": Executive,
	"tabloid":   Tabloid,
	"ledger":    Landscape(Tabloid),
}

// Lookup returns the paper size with the given name.
// Names are compared case-insensitively.
func Lookup(name string) (rect.Rect, bool) {
	r, ok := byName[cases.Fold().String(name)]
	return r, ok
}

// Names returns the known paper names in alphabetical order.
func Names() []string {
	res := make([]string, 0, len(byName))
	for name := range byName {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// Size returns the width and height of r.
func Size(r rect.Rect) (w, h float64) {
	return r.URx - r.LLx, r.URy - r.LLy
}

// Landscape returns the paper size r in landscape orientation.
// The result is anchored at the origin.
func Landscape(r rect.Rect) rect.Rect {
	w, h := Size(r)
	if w > h {
		return rect.Rect{URx: w, URy: h}
	}
	return rect.Rect{URx: h, URy: w}
}
