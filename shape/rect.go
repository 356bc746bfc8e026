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

import (
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle, given by its top-left corner and its
// size.
type Rect struct {
	X, Y, W, H float64
}

var _ Shape = Rect{}

// R is a shorthand for constructing a [Rect].
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.X, r.Y, r.W, r.H)
}

// IsEmpty reports whether the rectangle has non-positive width or height.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether (x, y) lies in the half-open rectangle
// [X, X+W) x [Y, Y+H).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Intersects reports whether the two rectangles overlap.
// Rectangles with non-positive width or height intersect nothing.
func (r Rect) Intersects(q Rect) bool {
	if r.IsEmpty() || q.IsEmpty() {
		return false
	}
	return q.X+q.W > r.X && q.Y+q.H > r.Y && q.X < r.X+r.W && q.Y < r.Y+r.H
}

// Bounds returns the rectangle itself.
func (r Rect) Bounds() Rect {
	return r
}

// Path returns the outline of the rectangle.
func (r Rect) Path() *Path {
	p := &Path{}
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.X+r.W, r.Y)
	p.LineTo(r.X+r.W, r.Y+r.H)
	p.LineTo(r.X, r.Y+r.H)
	p.Close()
	return p
}

// Union returns the smallest rectangle which covers both r and q.
// Empty rectangles are ignored.
func (r Rect) Union(q Rect) Rect {
	if q.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return q
	}
	x0 := min(r.X, q.X)
	y0 := min(r.Y, q.Y)
	x1 := max(r.X+r.W, q.X+q.W)
	y1 := max(r.Y+r.H, q.Y+q.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the largest rectangle contained in both r and q.
// If the two rectangles do not overlap, the result is empty.
func (r Rect) Intersect(q Rect) Rect {
	x0 := max(r.X, q.X)
	y0 := max(r.Y, q.Y)
	x1 := min(r.X+r.W, q.X+q.W)
	y1 := min(r.Y+r.H, q.Y+q.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Image returns the smallest integer rectangle which covers r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)),
		int(math.Ceil(r.Y+r.H)))
}

// closedContains is like Contains, but includes the right and bottom edges.
func (r Rect) closedContains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x <= r.X+r.W && y <= r.Y+r.H
}
