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

// Ellipse is the ellipse inscribed in the rectangle (X, Y, W, H).
type Ellipse struct {
	X, Y, W, H float64
}

var _ Shape = Ellipse{}

// Contains reports whether (x, y) lies strictly inside the ellipse.
func (e Ellipse) Contains(x, y float64) bool {
	if e.W <= 0 || e.H <= 0 {
		return false
	}
	nx := (x-e.X)/e.W - 0.5
	ny := (y-e.Y)/e.H - 0.5
	return nx*nx+ny*ny < 0.25
}

// Intersects reports whether the ellipse and the rectangle r overlap.
//
// The rectangle is mapped into "ellipse units", where the ellipse becomes
// the circle of radius 0.5 around the origin.  The point of the rectangle
// closest to the origin is then tested against the circle.  Touching the
// circle from outside does not count as an intersection.
func (e Ellipse) Intersects(r Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}

	if e.W <= 0 {
		return false
	}
	nx0 := (r.X-e.X)/e.W - 0.5
	nx1 := nx0 + r.W/e.W

	if e.H <= 0 {
		return false
	}
	ny0 := (r.Y-e.Y)/e.H - 0.5
	ny1 := ny0 + r.H/e.H

	var nearX, nearY float64
	if nx0 > 0 {
		nearX = nx0
	} else if nx1 < 0 {
		nearX = nx1
	}
	if ny0 > 0 {
		nearY = ny0
	} else if ny1 < 0 {
		nearY = ny1
	}

	return nearX*nearX+nearY*nearY < 0.25
}

// Bounds returns the rectangle the ellipse is inscribed in.
func (e Ellipse) Bounds() Rect {
	return Rect(e)
}

// Path returns the outline of the ellipse, as four cubic Bézier arcs.
func (e Ellipse) Path() *Path {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

	rx := e.W / 2
	ry := e.H / 2
	cx := e.X + rx
	cy := e.Y + ry
	kx := k * rx
	ky := k * ry

	p := &Path{}
	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return p
}
