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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Kind identifies a shape type in the encoded representation.
type Kind string

// These are the shape kinds understood by [Encode] and [Decode].
const (
	KindRect    Kind = "rect"
	KindEllipse Kind = "ellipse"
	KindPolygon Kind = "polygon"
	KindLine    Kind = "line"
	KindArea    Kind = "area"
)

// Encoded is a self-describing representation of a shape, suitable for
// JSON serialization.  Which fields are used depends on Kind.
type Encoded struct {
	Kind   Kind       `json:"kind"`
	X      float64    `json:"x,omitempty"`
	Y      float64    `json:"y,omitempty"`
	W      float64    `json:"w,omitempty"`
	H      float64    `json:"h,omitempty"`
	X2     float64    `json:"x2,omitempty"`
	Y2     float64    `json:"y2,omitempty"`
	Points []vec.Vec2 `json:"points,omitempty"`
	Parts  []*Encoded `json:"parts,omitempty"`
}

// ErrUnsupportedShape is returned by [Encode] for shape types which have
// no encoded representation.
var ErrUnsupportedShape = errors.New("unsupported shape type")

// Encode converts a shape into its tagged representation.
func Encode(s Shape) (*Encoded, error) {
	switch s := s.(type) {
	case Rect:
		return &Encoded{Kind: KindRect, X: s.X, Y: s.Y, W: s.W, H: s.H}, nil
	case Ellipse:
		return &Encoded{Kind: KindEllipse, X: s.X, Y: s.Y, W: s.W, H: s.H}, nil
	case Line:
		return &Encoded{Kind: KindLine, X: s.X1, Y: s.Y1, X2: s.X2, Y2: s.Y2}, nil
	case *Polygon:
		points := make([]vec.Vec2, len(s.Points))
		copy(points, s.Points)
		return &Encoded{Kind: KindPolygon, Points: points}, nil
	case *Area:
		res := &Encoded{Kind: KindArea}
		for _, part := range s.Parts {
			enc, err := Encode(part)
			if err != nil {
				return nil, err
			}
			res.Parts = append(res.Parts, enc)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
	}
}

// Decode converts a tagged representation back into a shape.
func Decode(enc *Encoded) (Shape, error) {
	if enc == nil {
		return nil, errors.New("missing shape")
	}
	switch enc.Kind {
	case KindRect:
		return Rect{X: enc.X, Y: enc.Y, W: enc.W, H: enc.H}, nil
	case KindEllipse:
		return Ellipse{X: enc.X, Y: enc.Y, W: enc.W, H: enc.H}, nil
	case KindLine:
		return Line{X1: enc.X, Y1: enc.Y, X2: enc.X2, Y2: enc.Y2}, nil
	case KindPolygon:
		points := make([]vec.Vec2, len(enc.Points))
		copy(points, enc.Points)
		return &Polygon{Points: points}, nil
	case KindArea:
		res := &Area{}
		for _, part := range enc.Parts {
			s, err := Decode(part)
			if err != nil {
				return nil, err
			}
			res.Parts = append(res.Parts, s)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", enc.Kind)
	}
}
