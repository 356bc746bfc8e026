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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/reportpaint/shape"
)

// A Recorder allows to record drawing operations.
// The recorded operations can be inspected via the Ops field, or later be
// applied to another surface using the [Recorder.ApplyTo] method.
type Recorder struct {
	stateStack

	Ops []*Op
}

// OpKind identifies a drawing operation.
type OpKind int

// These are the drawing operations recorded by a [Recorder].
const (
	OpFill OpKind = iota
	OpStroke
	OpDrawImage
	OpDrawString
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpDrawImage:
		return "image"
	case OpDrawString:
		return "string"
	default:
		return "unknown"
	}
}

// Op is a recorded drawing operation, together with the graphics state in
// effect when the operation was issued.
type Op struct {
	Kind OpKind

	Shape shape.Shape // OpFill, OpStroke
	Width float64     // OpStroke
	Image image.Image // OpDrawImage
	Dst   shape.Rect  // OpDrawImage
	Text  string      // OpDrawString
	X, Y  float64     // OpDrawString

	Transform matrix.Matrix
	Color     color.Color
	Font      Font
	Clip      shape.Rect
	Clipped   bool
}

// NewRecorder returns a new, empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{stateStack: newStateStack()}
}

func (r *Recorder) record(op *Op) {
	op.Transform = r.cur.ctm
	op.Color = r.cur.color
	op.Font = r.cur.font
	op.Clip = r.cur.clip
	op.Clipped = r.cur.clipped
	r.Ops = append(r.Ops, op)
}

// Fill implements the [Graphics] interface.
func (r *Recorder) Fill(s shape.Shape) {
	r.record(&Op{Kind: OpFill, Shape: s})
}

// Stroke implements the [Graphics] interface.
func (r *Recorder) Stroke(s shape.Shape, width float64) {
	r.record(&Op{Kind: OpStroke, Shape: s, Width: width})
}

// DrawImage implements the [Graphics] interface.
func (r *Recorder) DrawImage(img image.Image, dst shape.Rect) {
	r.record(&Op{Kind: OpDrawImage, Image: img, Dst: dst})
}

// DrawString implements the [Graphics] interface.
func (r *Recorder) DrawString(s string, x, y float64) {
	r.record(&Op{Kind: OpDrawString, Text: s, X: x, Y: y})
}

// ApplyTo replays all recorded operations on g.
//
// The device space of the recorder is mapped to the current user space
// of g.  The graphics state of g is unchanged when ApplyTo returns.
func (r *Recorder) ApplyTo(g Graphics) {
	base := g.Transform()
	for _, op := range r.Ops {
		g.Push()
		if op.Clipped {
			g.ClipRect(op.Clip)
		}
		g.SetTransform(op.Transform.Mul(base))
		g.SetColor(op.Color)
		g.SetFont(op.Font)
		switch op.Kind {
		case OpFill:
			g.Fill(op.Shape)
		case OpStroke:
			g.Stroke(op.Shape, op.Width)
		case OpDrawImage:
			g.DrawImage(op.Image, op.Dst)
		case OpDrawString:
			g.DrawString(op.Text, op.X, op.Y)
		}
		g.Pop()
	}
}
