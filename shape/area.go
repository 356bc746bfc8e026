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

package shape

// Area is the union of an arbitrary collection of shapes.
// Areas are compared by identity.
type Area struct {
	Parts []Shape
}

var _ Shape = (*Area)(nil)

// Contains reports whether any part of the area contains (x, y).
func (a *Area) Contains(x, y float64) bool {
	for _, part := range a.Parts {
		if part.Contains(x, y) {
			return true
		}
	}
	return false
}

// Intersects reports whether any part of the area intersects r.
func (a *Area) Intersects(r Rect) bool {
	if r.IsEmpty() {
		return false
	}
	for _, part := range a.Parts {
		if part.Intersects(r) {
			return true
		}
	}
	return false
}

// Bounds returns the union of the bounding boxes of all parts.
func (a *Area) Bounds() Rect {
	var res Rect
	first := true
	for _, part := range a.Parts {
		b := part.Bounds()
		if first {
			res = b
			first = false
			continue
		}
		x0 := min(res.X, b.X)
		y0 := min(res.Y, b.Y)
		x1 := max(res.X+res.W, b.X+b.W)
		y1 := max(res.Y+res.H, b.Y+b.H)
		res = Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	}
	return res
}

// Path returns the outlines of all parts.
func (a *Area) Path() *Path {
	res := &Path{}
	for _, part := range a.Parts {
		res.Append(part.Path())
	}
	return res
}
