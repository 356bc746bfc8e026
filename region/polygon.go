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

package region

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/reportpaint/shape"
)

// Polygon is a polygonal region with integer vertex coordinates.
//
// To retain sub-pixel precision, the coordinates may be stored multiplied
// by ScaleFactor.  The scale is divided out, using integer division, when
// the shape of the region is computed.
type Polygon struct {
	name string

	// Xs and Ys are the vertex coordinates, multiplied by ScaleFactor.
	Xs, Ys []int

	// ScaleFactor is the factor by which the coordinates are scaled.
	// Values less than or equal to 1 mean that the coordinates are
	// unscaled.
	ScaleFactor int

	// Arc is set if the polygon approximates a slice of a pie or donut
	// chart.
	Arc bool
}

// NewPolygon returns a new polygon region with unscaled coordinates.
func NewPolygon(name string, xs, ys []int) *Polygon {
	return &Polygon{name: name, Xs: xs, Ys: ys, ScaleFactor: 1}
}

// NewScaledPolygon returns a new polygon region.  The coordinates in xs
// and ys must already be multiplied by scale.
func NewScaledPolygon(name string, xs, ys []int, scale int) *Polygon {
	return &Polygon{name: name, Xs: xs, Ys: ys, ScaleFactor: scale}
}

// PolygonFromShape approximates the outline of s by a polygon region.
// Coordinates are multiplied by scale and rounded to the nearest integer.
// Only the first subpath of the outline is used.
func PolygonFromShape(name string, s shape.Shape, scale int, arc bool) *Polygon {
	if scale < 1 {
		scale = 1
	}
	p := &Polygon{name: name, ScaleFactor: scale, Arc: arc}
	polys := s.Path().Flatten(0.25 / float64(scale))
	if len(polys) == 0 {
		return p
	}
	for _, pt := range polys[0] {
		p.Xs = append(p.Xs, int(math.Round(pt.X*float64(scale))))
		p.Ys = append(p.Ys, int(math.Round(pt.Y*float64(scale))))
	}
	return p
}

// Name implements the [Region] interface.
func (p *Polygon) Name() string { return p.name }

// N returns the number of vertices.
func (p *Polygon) N() int {
	return min(len(p.Xs), len(p.Ys))
}

// IsArc reports whether the polygon was derived from a pie or donut slice.
func (p *Polygon) IsArc() bool {
	return p.Arc
}

// Contains implements the [Region] interface.
func (p *Polygon) Contains(x, y float64) bool {
	return p.polygon().Contains(x, y)
}

// Intersects implements the [Region] interface.
func (p *Polygon) Intersects(q shape.Rect) bool {
	return p.polygon().Intersects(q)
}

// Bounds implements the [Region] interface.
func (p *Polygon) Bounds() image.Rectangle {
	return p.polygon().Bounds().Image()
}

// Shape returns the polygon in unscaled coordinates.
// This implements the [Region] interface.
func (p *Polygon) Shape() shape.Shape {
	return p.polygon()
}

// ScaledShape returns the polygon with the stored, scaled coordinates.
func (p *Polygon) ScaledShape() *shape.Polygon {
	return p.build(1)
}

func (p *Polygon) polygon() *shape.Polygon {
	return p.build(max(p.ScaleFactor, 1))
}

func (p *Polygon) build(scale int) *shape.Polygon {
	n := p.N()
	points := make([]vec.Vec2, n)
	for i := range n {
		points[i] = vec.Vec2{
			X: float64(p.Xs[i] / scale),
			Y: float64(p.Ys[i] / scale),
		}
	}
	return &shape.Polygon{Points: points}
}
