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

// Package region implements named geometric regions, as used for image
// maps of rendered charts and pictures.
//
// A region is a [shape.Shape] with a name and a compact XML
// representation.  The XML format uses one empty "region" element per
// region, see [WriteXML] and [ReadXML].
package region

import (
	"image"

	"seehuhn.de/go/reportpaint/shape"
)

// Region is a named area of the plane.
type Region interface {
	// Name returns the name of the region.
	Name() string

	// Contains reports whether the point (x, y) lies inside the region.
	Contains(x, y float64) bool

	// Intersects reports whether the region overlaps the rectangle r.
	// The result is false if r has non-positive width or height.
	Intersects(r shape.Rect) bool

	// Bounds returns the smallest integer rectangle covering the region.
	Bounds() image.Rectangle

	// Shape returns the geometric shape of the region.
	Shape() shape.Shape
}

// Rectangle is an axis-aligned rectangular region.
type Rectangle struct {
	name       string
	X, Y, W, H float64
}

// NewRectangle returns a new rectangular region.
func NewRectangle(name string, x, y, w, h float64) *Rectangle {
	return &Rectangle{name: name, X: x, Y: y, W: w, H: h}
}

// Name implements the [Region] interface.
func (r *Rectangle) Name() string { return r.name }

// Contains implements the [Region] interface.
func (r *Rectangle) Contains(x, y float64) bool {
	return r.rect().Contains(x, y)
}

// Intersects implements the [Region] interface.
func (r *Rectangle) Intersects(q shape.Rect) bool {
	return r.rect().Intersects(q)
}

// Bounds implements the [Region] interface.
func (r *Rectangle) Bounds() image.Rectangle {
	return r.rect().Image()
}

// Shape implements the [Region] interface.
func (r *Rectangle) Shape() shape.Shape {
	return r.rect()
}

func (r *Rectangle) rect() shape.Rect {
	return shape.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Ellipse is the elliptical region inscribed in the rectangle
// (X, Y, W, H).
type Ellipse struct {
	name       string
	X, Y, W, H float64
}

// NewEllipse returns a new elliptical region.
func NewEllipse(name string, x, y, w, h float64) *Ellipse {
	return &Ellipse{name: name, X: x, Y: y, W: w, H: h}
}

// Name implements the [Region] interface.
func (e *Ellipse) Name() string { return e.name }

// Contains implements the [Region] interface.
func (e *Ellipse) Contains(x, y float64) bool {
	return e.ellipse().Contains(x, y)
}

// Intersects implements the [Region] interface.
func (e *Ellipse) Intersects(q shape.Rect) bool {
	return e.ellipse().Intersects(q)
}

// Bounds implements the [Region] interface.
func (e *Ellipse) Bounds() image.Rectangle {
	return e.ellipse().Bounds().Image()
}

// Shape implements the [Region] interface.
func (e *Ellipse) Shape() shape.Shape {
	return e.ellipse()
}

func (e *Ellipse) ellipse() shape.Ellipse {
	return shape.Ellipse{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Line is a region consisting of a single line segment.
// Lines contain no points, but can intersect rectangles.
type Line struct {
	name           string
	X1, Y1, X2, Y2 float64
}

// NewLine returns a new line region.
func NewLine(name string, x1, y1, x2, y2 float64) *Line {
	return &Line{name: name, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Name implements the [Region] interface.
func (l *Line) Name() string { return l.name }

// Contains implements the [Region] interface.
// The result is always false.
func (l *Line) Contains(x, y float64) bool {
	return l.line().Contains(x, y)
}

// Intersects implements the [Region] interface.
func (l *Line) Intersects(q shape.Rect) bool {
	return l.line().Intersects(q)
}

// Bounds implements the [Region] interface.
func (l *Line) Bounds() image.Rectangle {
	return l.line().Bounds().Image()
}

// Shape implements the [Region] interface.
func (l *Line) Shape() shape.Shape {
	return l.line()
}

func (l *Line) line() shape.Line {
	return shape.Line{X1: l.X1, Y1: l.Y1, X2: l.X2, Y2: l.Y2}
}

// Area is a region with an arbitrary shape.
//
// Areas are computed while rendering and are never persisted: writing an
// area as XML produces no output.
type Area struct {
	name string
	S    shape.Shape
}

// NewArea returns a new region covering the given shape.
func NewArea(name string, s shape.Shape) *Area {
	return &Area{name: name, S: s}
}

// Name implements the [Region] interface.
func (a *Area) Name() string { return a.name }

// Contains implements the [Region] interface.
func (a *Area) Contains(x, y float64) bool {
	return a.S != nil && a.S.Contains(x, y)
}

// Intersects implements the [Region] interface.
func (a *Area) Intersects(q shape.Rect) bool {
	return a.S != nil && a.S.Intersects(q)
}

// Bounds implements the [Region] interface.
func (a *Area) Bounds() image.Rectangle {
	if a.S == nil {
		return image.Rectangle{}
	}
	return a.S.Bounds().Image()
}

// Shape implements the [Region] interface.
func (a *Area) Shape() shape.Shape {
	return a.S
}
