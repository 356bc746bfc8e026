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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/reportpaint/graphics"
)

// RotationTransformer maps between the coordinate system of rotated
// content and the box it is painted into.
//
// The content occupies the rectangle (0, 0, ContentW, ContentH).  It is
// rotated clockwise by Angle degrees around its centre, and the centre is
// placed at the centre of the box (0, 0, BoxW, BoxH).  Unrotated content
// is placed at the top-left corner of the box.
type RotationTransformer struct {
	Angle              float64
	ContentW, ContentH float64
	BoxW, BoxH         float64
}

// Matrix returns the matrix mapping content coordinates to box
// coordinates.
func (t RotationTransformer) Matrix() matrix.Matrix {
	if t.Angle == 0 {
		return matrix.Identity
	}
	return matrix.Translate(-t.ContentW/2, -t.ContentH/2).
		Mul(graphics.RotationMatrix(t.Angle)).
		Mul(matrix.Translate(t.BoxW/2, t.BoxH/2))
}

// InverseMatrix returns the matrix mapping box coordinates to content
// coordinates.
func (t RotationTransformer) InverseMatrix() matrix.Matrix {
	if t.Angle == 0 {
		return matrix.Identity
	}
	return matrix.Translate(-t.BoxW/2, -t.BoxH/2).
		Mul(graphics.RotationMatrix(-t.Angle)).
		Mul(matrix.Translate(t.ContentW/2, t.ContentH/2))
}

// Apply maps a point from content coordinates to box coordinates.
func (t RotationTransformer) Apply(x, y float64) (float64, float64) {
	return t.Matrix().Apply(x, y)
}

// Inverse maps a point from box coordinates to content coordinates.
func (t RotationTransformer) Inverse(x, y float64) (float64, float64) {
	return t.InverseMatrix().Apply(x, y)
}
