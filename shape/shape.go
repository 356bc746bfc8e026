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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Shape is a closed region of the plane, or a line segment.
//
// Implementations must be comparable, so that shapes can be used as
// lookup keys.  Use pointer types for shapes which contain slices.
type Shape interface {
	// Contains reports whether the point (x, y) lies inside the shape.
	Contains(x, y float64) bool

	// Intersects reports whether the interior of the shape and the
	// interior of r overlap.
	Intersects(r Rect) bool

	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() Rect

	// Path returns the outline of the shape.
	Path() *Path
}

// Equal reports whether a and b describe the same shape.
// Polygons are compared point by point, areas by identity, and all other
// shapes by value.
func Equal(a, b Shape) bool {
	if pa, ok := a.(*Polygon); ok {
		pb, ok := b.(*Polygon)
		if !ok {
			return false
		}
		if pa == nil || pb == nil {
			return pa == pb
		}
		return slices.Equal(pa.Points, pb.Points)
	}
	return a == b
}

// Transform applies the transformation matrix m to s.
//
// Rectangles and ellipses stay rectangles and ellipses under matrices
// which only scale and translate.  All other combinations produce a
// polygon approximating the transformed outline.
func Transform(s Shape, m matrix.Matrix) Shape {
	axisAligned := m[1] == 0 && m[2] == 0
	switch s := s.(type) {
	case Rect:
		if axisAligned {
			return Rect(transformBox(Rect(s), m))
		}
	case Ellipse:
		if axisAligned {
			return Ellipse(transformBox(Rect(s), m))
		}
	case Line:
		x1, y1 := m.Apply(s.X1, s.Y1)
		x2, y2 := m.Apply(s.X2, s.Y2)
		return Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
	case *Area:
		parts := make([]Shape, len(s.Parts))
		for i, part := range s.Parts {
			parts[i] = Transform(part, m)
		}
		return &Area{Parts: parts}
	}

	var points []vec.Vec2
	for _, poly := range s.Path().Flatten(defaultFlatness) {
		for _, p := range poly {
			x, y := m.Apply(p.X, p.Y)
			points = append(points, vec.Vec2{X: x, Y: y})
		}
	}
	return &Polygon{Points: points}
}

func transformBox(r Rect, m matrix.Matrix) Rect {
	x0, y0 := m.Apply(r.X, r.Y)
	x1, y1 := m.Apply(r.X+r.W, r.Y+r.H)
	return Rect{
		X: min(x0, x1),
		Y: min(y0, y1),
		W: max(x0, x1) - min(x0, x1),
		H: max(y0, y1) - min(y0, y1),
	}
}
