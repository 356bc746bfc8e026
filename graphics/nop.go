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

	"seehuhn.de/go/reportpaint/shape"
)

// Nop is a [Graphics] implementation which keeps track of the graphics
// state, but does not draw anything.
//
// Nop surfaces are used to run painters for their side effects, for
// example to compute the geometry of a chart before hyperlinks are
// attached.
type Nop struct {
	stateStack
}

// NewNop returns a new no-op surface.
func NewNop() *Nop {
	return &Nop{stateStack: newStateStack()}
}

// Fill implements the [Graphics] interface.
func (g *Nop) Fill(shape.Shape) {}

// Stroke implements the [Graphics] interface.
func (g *Nop) Stroke(shape.Shape, float64) {}

// DrawImage implements the [Graphics] interface.
func (g *Nop) DrawImage(image.Image, shape.Rect) {}

// DrawString implements the [Graphics] interface.
func (g *Nop) DrawString(string, float64, float64) {}
