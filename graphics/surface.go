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


package graphics

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/reportpaint/shape"
)

// Font describes the font used by [Graphics.DrawString].
type Font struct {
	Name   string
	Size   float64
	Bold   bool
	Italic bool
}

// DefaultFont is the font used by newly created surfaces.
var DefaultFont = Font{Name: "Go", Size: 10}

// Graphics is a drawing surface.
type Graphics interface {
	// Push saves a copy of the current graphics state.
	Push()

	// Pop restores the graphics state saved by the matching call to Push.
	Pop()

	// Clip returns the clipping rectangle, in device coordinates.
	// If no clipping is in effect, ok is false.
	Clip() (clip shape.Rect, ok bool)

	// SetClip replaces the clipping rectangle.  The rectangle is given in
	// device coordinates.
	SetClip(clip shape.Rect)

	// ClipRect intersects the clipping region with r.  The rectangle is
	// given in user coordinates; rotated rectangles are replaced by their
	// bounding box.
	ClipRect(r shape.Rect)

	// Transform returns the current transformation matrix.
	Transform() matrix.Matrix

	// SetTransform replaces the current transformation matrix.
	SetTransform(m matrix.Matrix)

	Color() color.Color
	SetColor(c color.Color)

	Font() Font
	SetFont(f Font)

	// Fill paints the interior of s in the current colour.
	Fill(s shape.Shape)

	// Stroke paints the outline of s in the current colour.
	Stroke(s shape.Shape, width float64)

	// DrawImage paints img, scaled to fill dst.
	DrawImage(img image.Image, dst shape.Rect)

	// DrawString paints s with the left end of the baseline at (x, y).
	DrawString(s string, x, y float64)
}

// Translate moves the origin of the user coordinate system to (dx, dy).
func Translate(g Graphics, dx, dy float64) {
	Concat(g, matrix.Translate(dx, dy))
}

// Rotate rotates the user coordinate system by the given angle, in
// degrees.  Since the y axis points downwards, positive angles rotate
// clockwise on screen.
func Rotate(g Graphics, deg float64) {
	Concat(g, RotationMatrix(deg))
}

// Concat applies m to user coordinates, before the current
// transformation.
func Concat(g Graphics, m matrix.Matrix) {
	g.SetTransform(m.Mul(g.Transform()))
}

// RotationMatrix returns the matrix which rotates by deg degrees.
// Multiples of 90 degrees give exact results.
func RotationMatrix(deg float64) matrix.Matrix {
	var c, s float64
	switch math.Mod(math.Mod(deg, 360)+360, 360) {
	case 0:
		c, s = 1, 0
	case 90:
		c, s = 0, 1
	case 180:
		c, s = -1, 0
	case 270:
		c, s = 0, -1
	default:
		rad := deg * math.Pi / 180
		c, s = math.Cos(rad), math.Sin(rad)
	}
	return matrix.Matrix{c, s, -s, c, 0, 0}
}

// state is the part of the graphics state shared by all surfaces.
type state struct {
	clip    shape.Rect
	clipped bool
	ctm     matrix.Matrix
	color   color.Color
	font    Font
}

// stateStack implements the state related methods of [Graphics].
type stateStack struct {
	cur   state
	saved []state
}

func newStateStack() stateStack {
	return stateStack{
		cur: state{
			ctm:   matrix.Identity,
			color: color.Black,
			font:  DefaultFont,
		},
	}
}

// Push implements the [Graphics] interface.
func (s *stateStack) Push() {
	s.saved = append(s.saved, s.cur)
}

// Pop implements the [Graphics] interface.
// Unbalanced calls to Pop panic.
func (s *stateStack) Pop() {
	n := len(s.saved) - 1
	if n < 0 {
		panic("graphics: Pop without matching Push")
	}
	s.cur = s.saved[n]
	s.saved = s.saved[:n]
}

// Clip implements the [Graphics] interface.
func (s *stateStack) Clip() (shape.Rect, bool) {
	return s.cur.clip, s.cur.clipped
}

// SetClip implements the [Graphics] interface.
func (s *stateStack) SetClip(clip shape.Rect) {
	s.cur.clip = clip
	s.cur.clipped = true
}

// ClipRect implements the [Graphics] interface.
func (s *stateStack) ClipRect(r shape.Rect) {
	dev := shape.Transform(r, s.cur.ctm).Bounds()
	if s.cur.clipped {
		dev = s.cur.clip.Intersect(dev)
	}
	s.SetClip(dev)
}

// Transform implements the [Graphics] interface.
func (s *stateStack) Transform() matrix.Matrix {
	return s.cur.ctm
}

// SetTransform implements the [Graphics] interface.
func (s *stateStack) SetTransform(m matrix.Matrix) {
	s.cur.ctm = m
}

// Color implements the [Graphics] interface.
func (s *stateStack) Color() color.Color {
	return s.cur.color
}

// SetColor implements the [Graphics] interface.
func (s *stateStack) SetColor(c color.Color) {
	s.cur.color = c
}

// Font implements the [Graphics] interface.
func (s *stateStack) Font() Font {
	return s.cur.font
}

// SetFont implements the [Graphics] interface.
func (s *stateStack) SetFont(f Font) {
	s.cur.font = f
}
