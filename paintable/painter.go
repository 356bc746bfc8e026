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


package paintable

import (
	"image"
	"image/color"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/reportpaint/fontmetrics"
	"seehuhn.de/go/reportpaint/format"
	"seehuhn.de/go/reportpaint/graphics"
	"seehuhn.de/go/reportpaint/shape"
)

// Painter produces the content of a paintable.
type Painter interface {
	// PreferredSize returns the natural size of the content.
	PreferredSize() (w, h float64)

	// Paint paints the content into the rectangle (x, y, w, h).
	Paint(g graphics.Graphics, x, y, w, h float64)

	// IsScalable reports whether the painter produces good results at
	// any size.  Painters which are not scalable are painted at their
	// buffer size and then scaled.
	IsScalable() bool
}

// RotatablePainter is implemented by painters which can paint their
// content at arbitrary angles.
type RotatablePainter interface {
	Painter

	// Rotated returns a painter which paints the same content, rotated
	// clockwise by deg degrees around the centre of the paint rectangle.
	Rotated(deg float64) Painter
}

// TextPainter paints lines of text.
type TextPainter struct {
	Text  string
	Font  graphics.Font
	Align format.Alignment

	// Metrics is used to measure the text.  If nil, the metrics of the Go
	// Regular font are used.
	Metrics fontmetrics.Metrics

	rotation float64
}

var _ RotatablePainter = (*TextPainter)(nil)

func (obj *TextPainter) metrics() fontmetrics.Metrics {
	if obj.Metrics != nil {
		return obj.Metrics
	}
	return fontmetrics.Default()
}

func (obj *TextPainter) size() float64 {
	if obj.Font.Size > 0 {
		return obj.Font.Size
	}
	return graphics.DefaultFont.Size
}

func (obj *TextPainter) lines() []string {
	return strings.Split(obj.Text, "\n")
}

// textSize returns the size of the unrotated text block.
func (obj *TextPainter) textSize() (w, h float64) {
	m := obj.metrics()
	size := obj.size()
	lines := obj.lines()
	for _, line := range lines {
		w = max(w, m.StringWidth(line, size))
	}
	h = m.LineHeight(size) * float64(len(lines))
	return w, h
}

// PreferredSize implements the [Painter] interface.
// For rotated text, the size of the bounding box is returned.
func (obj *TextPainter) PreferredSize() (w, h float64) {
	w, h = obj.textSize()
	if obj.rotation == 0 {
		return w, h
	}
	b := shape.Transform(shape.R(0, 0, w, h), graphics.RotationMatrix(obj.rotation)).Bounds()
	return b.W, b.H
}

// IsScalable implements the [Painter] interface.
func (obj *TextPainter) IsScalable() bool {
	return true
}

// Rotated implements the [RotatablePainter] interface.
func (obj *TextPainter) Rotated(deg float64) Painter {
	res := *obj
	res.rotation += deg
	return &res
}

// Paint implements the [Painter] interface.
func (obj *TextPainter) Paint(g graphics.Graphics, x, y, w, h float64) {
	g.Push()
	defer g.Pop()

	font := obj.Font
	if font.Size <= 0 {
		font.Size = graphics.DefaultFont.Size
	}
	if font.Name == "" {
		font.Name = g.Font().Name
	}
	g.SetFont(font)

	boxW := w
	if obj.rotation != 0 {
		var boxH float64
		boxW, boxH = obj.textSize()
		graphics.Concat(g,
			matrix.Translate(-boxW/2, -boxH/2).
				Mul(graphics.RotationMatrix(obj.rotation)).
				Mul(matrix.Translate(x+w/2, y+h/2)))
		x, y = 0, 0
	}

	m := obj.metrics()
	lineHeight := m.LineHeight(font.Size)
	baseline := y + m.Ascent(font.Size)
	for _, line := range obj.lines() {
		lx := x
		switch obj.Align {
		case format.AlignCenter:
			lx += (boxW - m.StringWidth(line, font.Size)) / 2
		case format.AlignRight:
			lx += boxW - m.StringWidth(line, font.Size)
		}
		g.DrawString(line, lx, baseline)
		baseline += lineHeight
	}
}

// ImagePainter paints a raster image.
// Images are not scalable: they are painted at their buffer size and then
// scaled to the paint rectangle.
type ImagePainter struct {
	Image image.Image
}

// PreferredSize implements the [Painter] interface.
// The size of the image in pixels is returned.
func (obj *ImagePainter) PreferredSize() (w, h float64) {
	if obj.Image == nil {
		return 0, 0
	}
	b := obj.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// IsScalable implements the [Painter] interface.
func (obj *ImagePainter) IsScalable() bool {
	return false
}

// Paint implements the [Painter] interface.
func (obj *ImagePainter) Paint(g graphics.Graphics, x, y, w, h float64) {
	if obj.Image == nil {
		return
	}
	g.DrawImage(obj.Image, shape.R(x, y, w, h))
}

// ShapePainter paints a geometric shape.
// The shape is scaled so that its bounding box fills the paint
// rectangle.
type ShapePainter struct {
	Shape shape.Shape

	// Fill and Stroke are the colours for the interior and the outline.
	// Nil values disable filling and stroking, respectively.
	Fill, Stroke color.Color

	LineWidth float64
}

// PreferredSize implements the [Painter] interface.
func (obj *ShapePainter) PreferredSize() (w, h float64) {
	if obj.Shape == nil {
		return 0, 0
	}
	b := obj.Shape.Bounds()
	return b.W, b.H
}

// IsScalable implements the [Painter] interface.
func (obj *ShapePainter) IsScalable() bool {
	return true
}

// Paint implements the [Painter] interface.
func (obj *ShapePainter) Paint(g graphics.Graphics, x, y, w, h float64) {
	if obj.Shape == nil {
		return
	}
	b := obj.Shape.Bounds()
	sx, sy := 1.0, 1.0
	if b.W > 0 {
		sx = w / b.W
	}
	if b.H > 0 {
		sy = h / b.H
	}
	s := shape.Transform(obj.Shape,
		matrix.Translate(-b.X, -b.Y).Mul(matrix.Scale(sx, sy)).Mul(matrix.Translate(x, y)))

	g.Push()
	defer g.Pop()
	if obj.Fill != nil {
		g.SetColor(obj.Fill)
		g.Fill(s)
	}
	if obj.Stroke != nil {
		g.SetColor(obj.Stroke)
		width := obj.LineWidth
		if width <= 0 {
			width = 1
		}
		g.Stroke(s, width)
	}
}
