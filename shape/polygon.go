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
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed polygon.  The last point is implicitly connected to
// the first one.  The interior is determined by the even-odd rule.
type Polygon struct {
	Points []vec.Vec2
}

var _ Shape = (*Polygon)(nil)

// NewPolygon creates a polygon from separate coordinate slices.
// If the slices differ in length, the extra coordinates are ignored.
func NewPolygon(xs, ys []float64) *Polygon {
	n := min(len(xs), len(ys))
	points := make([]vec.Vec2, n)
	for i := range n {
		points[i] = vec.Vec2{X: xs[i], Y: ys[i]}
	}
	return &Polygon{Points: points}
}

// Contains reports whether (x, y) lies inside the polygon.
//
// Points on left and top edges count as inside, points on right and
// bottom edges as outside, so that adjacent polygons never both contain a
// point on their shared edge.
func (p *Polygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n <= 2 || !p.Bounds().Contains(x, y) {
		return false
	}

	hits := 0
	last := p.Points[n-1]
	for _, cur := range p.Points {
		lastX, lastY := last.X, last.Y
		curX, curY := cur.X, cur.Y
		last = cur

		if curY == lastY {
			continue
		}

		var leftX float64
		if curX < lastX {
			if x >= lastX {
				continue
			}
			leftX = curX
		} else {
			if x >= curX {
				continue
			}
			leftX = lastX
		}

		var test1, test2 float64
		if curY < lastY {
			if y < curY || y >= lastY {
				continue
			}
			if x < leftX {
				hits++
				continue
			}
			test1 = x - curX
			test2 = y - curY
		} else {
			if y < lastY || y >= curY {
				continue
			}
			if x < leftX {
				hits++
				continue
			}
			test1 = x - lastX
			test2 = y - lastY
		}

		if test1 < test2/(lastY-curY)*(lastX-curX) {
			hits++
		}
	}

	return hits&1 != 0
}

// Intersects reports whether the polygon and r overlap.
func (p *Polygon) Intersects(r Rect) bool {
	if r.IsEmpty() || len(p.Points) == 0 {
		return false
	}
	b := p.Bounds()
	if b.X > r.X+r.W || b.Y > r.Y+r.H || b.X+b.W < r.X || b.Y+b.H < r.Y {
		return false
	}

	for _, pt := range p.Points {
		if r.Contains(pt.X, pt.Y) {
			return true
		}
	}
	if p.Contains(r.X, r.Y) || p.Contains(r.X+r.W/2, r.Y+r.H/2) {
		return true
	}

	n := len(p.Points)
	for i, a := range p.Points {
		b := p.Points[(i+1)%n]
		if segmentCrossesRect(a, b, r) {
			return true
		}
	}
	return false
}

// Bounds returns the bounding box of the polygon's points.
func (p *Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	x0, y0 := p.Points[0].X, p.Points[0].Y
	x1, y1 := x0, y0
	for _, pt := range p.Points[1:] {
		x0 = min(x0, pt.X)
		y0 = min(y0, pt.Y)
		x1 = max(x1, pt.X)
		y1 = max(y1, pt.Y)
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Path returns the outline of the polygon.
func (p *Polygon) Path() *Path {
	res := &Path{}
	for i, pt := range p.Points {
		if i == 0 {
			res.MoveTo(pt.X, pt.Y)
		} else {
			res.LineTo(pt.X, pt.Y)
		}
	}
	if len(p.Points) > 0 {
		res.Close()
	}
	return res
}

// segmentCrossesRect reports whether the segment from a to b touches one of
// the edges of r.
func segmentCrossesRect(a, b vec.Vec2, r Rect) bool {
	c := [4]vec.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
	for i := range c {
		if segmentsIntersect(a, b, c[i], c[(i+1)%4]) {
			return true
		}
	}
	return false
}

// segmentsIntersect reports whether the closed segments ab and cd have a
// point in common.
func segmentsIntersect(a, b, c, d vec.Vec2) bool {
	o1 := orientation(a, b, c)
	o2 := orientation(a, b, d)
	o3 := orientation(c, d, a)
	o4 := orientation(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}
	return (o1 == 0 && onSegment(a, c, b)) ||
		(o2 == 0 && onSegment(a, d, b)) ||
		(o3 == 0 && onSegment(c, a, d)) ||
		(o4 == 0 && onSegment(c, b, d))
}

// orientation returns 1 if c lies to one side of the line through a and b,
// -1 if it lies to the other side, and 0 if the three points are collinear.
func orientation(a, b, c vec.Vec2) int {
	v := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether q lies within the bounding box of p and r.
// This is only meaningful if the three points are collinear.
func onSegment(p, q, r vec.Vec2) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}
