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
	"image/color"

	"seehuhn.de/go/reportpaint/graphics"
	"seehuhn.de/go/reportpaint/hyperlink"
)

// Element is the report element rendered by a paintable.
type Element interface {
	// ID identifies the element within its report.
	ID() string

	// Foreground and Background return the element colours.
	// Nil values mean that the colour is not set.
	Foreground() color.Color
	Background() color.Color

	Font() graphics.Font
}

// LinkedElement is implemented by elements which carry a hyperlink.
type LinkedElement interface {
	Element
	Hyperlink() *hyperlink.Ref
}

// DrillElement is implemented by elements which carry drill hyperlinks.
type DrillElement interface {
	Element
	DrillHyperlinks() []*hyperlink.Ref
}

// Nested is implemented by elements which are contained in another
// element, for example a text field inside a table cell.
type Nested interface {
	Parent() Element
}

// BasicElement is a simple [Element] implementation.
// It implements all optional interfaces of this package.
type BasicElement struct {
	Name     string
	Fg, Bg   color.Color
	TextFont graphics.Font
	Link     *hyperlink.Ref
	Drills   []*hyperlink.Ref

	// Container is the enclosing element, or nil.
	Container Element
}

var (
	_ LinkedElement = (*BasicElement)(nil)
	_ DrillElement  = (*BasicElement)(nil)
	_ Nested        = (*BasicElement)(nil)
)

// ID implements the [Element] interface.
func (e *BasicElement) ID() string { return e.Name }

// Foreground implements the [Element] interface.
func (e *BasicElement) Foreground() color.Color { return e.Fg }

// Background implements the [Element] interface.
func (e *BasicElement) Background() color.Color { return e.Bg }

// Font implements the [Element] interface.
func (e *BasicElement) Font() graphics.Font { return e.TextFont }

// Hyperlink implements the [LinkedElement] interface.
func (e *BasicElement) Hyperlink() *hyperlink.Ref { return e.Link }

// DrillHyperlinks implements the [DrillElement] interface.
func (e *BasicElement) DrillHyperlinks() []*hyperlink.Ref { return e.Drills }

// Parent implements the [Nested] interface.
func (e *BasicElement) Parent() Element { return e.Container }

// inheritedBackground returns the background of elem, or of the closest
// enclosing element which has a background set.
func inheritedBackground(elem Element) color.Color {
	for depth := 0; elem != nil && depth < 64; depth++ {
		if bg := elem.Background(); bg != nil {
			return bg
		}
		nested, ok := elem.(Nested)
		if !ok {
			break
		}
		elem = nested.Parent()
	}
	return nil
}
