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

import "seehuhn.de/go/geom/vec"

// Line is the straight line segment from (X1, Y1) to (X2, Y2).
// A line has no interior.
type Line struct {
	X1, Y1, X2, Y2 float64
}

var _ Shape = Line{}

// Contains always returns false, since a line encloses no area.
func (l Line) Contains(x, y float64) bool {
	return false
}

// Intersects reports whether the segment touches the rectangle r.
func (l Line) Intersects(r Rect) bool {
	if r.IsEmpty() {
		return false
	}
	if r.closedContains(l.X1, l.Y1) || r.closedContains(l.X2, l.Y2) {
		return true
	}
	a := vec.Vec2{X: l.X1, Y: l.Y1}
	b := vec.Vec2{X: l.X2, Y: l.Y2}
	return segmentCrossesRect(a, b, r)
}

// Bounds returns the bounding box of the segment.
// For horizontal or vertical lines, the result has zero height or width.
func (l Line) Bounds() Rect {
	x0, x1 := min(l.X1, l.X2), max(l.X1, l.X2)
	y0, y1 := min(l.Y1, l.Y2), max(l.Y1, l.Y2)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Path returns an open path along the segment.
func (l Line) Path() *Path {
	p := &Path{}
	p.MoveTo(l.X1, l.Y1)
	p.LineTo(l.X2, l.Y2)
	return p
}
