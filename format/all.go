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


package format

import (
	"image/color"
	"io"

	"seehuhn.de/go/reportpaint/graphics"
)

// All applies property changes to a group of formats.
//
// Setters change every member of the group.  Getters report the value of
// the first member, or the zero value if the group is empty.  A group has
// no XML representation of its own; calling WriteXML panics.
type All struct {
	members []TextFormat
}

var _ TextFormat = (*All)(nil)

// NewAll returns a group containing the given formats.
func NewAll(members ...TextFormat) *All {
	return &All{members: members}
}

// Members returns the formats in the group.
func (a *All) Members() []TextFormat {
	return a.members
}

// Add appends formats to the group.
func (a *All) Add(members ...TextFormat) {
	a.members = append(a.members, members...)
}

func (a *All) first() TextFormat {
	if len(a.members) == 0 {
		return nil
	}
	return a.members[0]
}

// Alignment implements the [TextFormat] interface.
func (a *All) Alignment() Alignment {
	if f := a.first(); f != nil {
		return f.Alignment()
	}
	return AlignLeft
}

// SetAlignment implements the [TextFormat] interface.
func (a *All) SetAlignment(align Alignment) {
	for _, f := range a.members {
		f.SetAlignment(align)
	}
}

// Font implements the [TextFormat] interface.
func (a *All) Font() graphics.Font {
	if f := a.first(); f != nil {
		return f.Font()
	}
	return graphics.Font{}
}

// SetFont implements the [TextFormat] interface.
func (a *All) SetFont(font graphics.Font) {
	for _, f := range a.members {
		f.SetFont(font)
	}
}

// Color implements the [TextFormat] interface.
func (a *All) Color() color.Color {
	if f := a.first(); f != nil {
		return f.Color()
	}
	return nil
}

// SetColor implements the [TextFormat] interface.
func (a *All) SetColor(c color.Color) {
	for _, f := range a.members {
		f.SetColor(c)
	}
}

// Background implements the [TextFormat] interface.
func (a *All) Background() color.Color {
	if f := a.first(); f != nil {
		return f.Background()
	}
	return nil
}

// SetBackground implements the [TextFormat] interface.
func (a *All) SetBackground(c color.Color) {
	for _, f := range a.members {
		f.SetBackground(c)
	}
}

// Rotation implements the [TextFormat] interface.
func (a *All) Rotation() float64 {
	if f := a.first(); f != nil {
		return f.Rotation()
	}
	return 0
}

// SetRotation implements the [TextFormat] interface.
func (a *All) SetRotation(deg float64) {
	for _, f := range a.members {
		f.SetRotation(deg)
	}
}

// Pattern implements the [TextFormat] interface.
func (a *All) Pattern() string {
	if f := a.first(); f != nil {
		return f.Pattern()
	}
	return ""
}

// SetPattern implements the [TextFormat] interface.
func (a *All) SetPattern(p string) {
	for _, f := range a.members {
		f.SetPattern(p)
	}
}

// WriteXML always panics: a group of formats cannot be written.
func (a *All) WriteXML(io.Writer) error {
	panic("format: WriteXML called on a format group")
}
