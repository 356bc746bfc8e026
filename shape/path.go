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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Command identifies a path construction operator.
type Command uint8

// These are the path construction operators.
// MoveTo and LineTo use one point, CubeTo uses three points and Close uses
// none.
const (
	CmdMoveTo Command = iota
	CmdLineTo
	CmdCubeTo
	CmdClose
)

// defaultFlatness is the maximal distance, in device pixels, between a
// curve and its polygonal approximation.
const defaultFlatness = 0.25

// Path is a sequence of subpaths, made of straight lines and cubic Bézier
// curves.
type Path struct {
	Cmds   []Command
	Coords []vec.Vec2
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.Cmds = append(p.Cmds, CmdMoveTo)
	p.Coords = append(p.Coords, vec.Vec2{X: x, Y: y})
}

// LineTo appends a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Cmds = append(p.Cmds, CmdLineTo)
	p.Coords = append(p.Coords, vec.Vec2{X: x, Y: y})
}

// CubeTo appends a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x3, y3).
func (p *Path) CubeTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Cmds = append(p.Cmds, CmdCubeTo)
	p.Coords = append(p.Coords,
		vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x3, Y: y3})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Cmds = append(p.Cmds, CmdClose)
}

// Append adds all subpaths of q to p.
func (p *Path) Append(q *Path) {
	p.Cmds = append(p.Cmds, q.Cmds...)
	p.Coords = append(p.Coords, q.Coords...)
}

// Transform returns a copy of the path with m applied to all points.
func (p *Path) Transform(m matrix.Matrix) *Path {
	res := &Path{
		Cmds:   append([]Command(nil), p.Cmds...),
		Coords: make([]vec.Vec2, len(p.Coords)),
	}
	for i, c := range p.Coords {
		x, y := m.Apply(c.X, c.Y)
		res.Coords[i] = vec.Vec2{X: x, Y: y}
	}
	return res
}

// Flatten converts the path into a list of polygons, one per subpath.
// Curves are replaced by line segments which deviate from the curve by at
// most flatness.
func (p *Path) Flatten(flatness float64) [][]vec.Vec2 {
	lines := p.Polylines(flatness)
	res := make([][]vec.Vec2, len(lines))
	for i, l := range lines {
		res[i] = l.Points
	}
	return res
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []vec.Vec2

	// Closed is set if the subpath was closed explicitly.
	Closed bool
}

// Polylines is like Flatten, but also reports which subpaths are closed.
func (p *Path) Polylines(flatness float64) []Polyline {
	var res []Polyline
	var cur []vec.Vec2
	flush := func(closed bool) {
		if len(cur) > 0 {
			res = append(res, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}

	idx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case CmdMoveTo:
			flush(false)
			cur = append(cur, p.Coords[idx])
			idx++
		case CmdLineTo:
			cur = append(cur, p.Coords[idx])
			idx++
		case CmdCubeTo:
			var p0 vec.Vec2
			if len(cur) > 0 {
				p0 = cur[len(cur)-1]
			}
			cur = flattenCubic(cur, p0, p.Coords[idx], p.Coords[idx+1], p.Coords[idx+2], flatness)
			idx += 3
		case CmdClose:
			flush(true)
		}
	}
	flush(false)
	return res
}

// flattenCubic appends line segment end points approximating the cubic
// Bézier curve p0, p1, p2, p3 to out.  The number of segments is chosen
// using Wang's formula.
func flattenCubic(out []vec.Vec2, p0, p1, p2, p3 vec.Vec2, flatness float64) []vec.Vec2 {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		out = append(out, pt)
	}
	return out
}
