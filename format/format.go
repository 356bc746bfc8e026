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


// Package format describes how text in report elements is presented.
//
// [Basic] holds the presentation properties of a single element.  [All]
// groups several formats, so that a property can be changed for all of
// them at once.
package format

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/reportpaint/graphics"
)

// Alignment describes the horizontal placement of text.
type Alignment int

// These are the supported alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

func parseAlignment(s string) (Alignment, error) {
	switch s {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return 0, fmt.Errorf("invalid alignment %q", s)
	}
}

// TextFormat is the set of presentation properties of a text element.
type TextFormat interface {
	Alignment() Alignment
	SetAlignment(a Alignment)

	Font() graphics.Font
	SetFont(f graphics.Font)

	// Color returns the text colour.  Nil means that the colour is
	// inherited.
	Color() color.Color
	SetColor(c color.Color)

	// Background returns the background colour.  Nil means transparent.
	Background() color.Color
	SetBackground(c color.Color)

	// Rotation returns the text rotation in degrees.
	Rotation() float64
	SetRotation(deg float64)

	// Pattern returns the number or date pattern used to format values.
	Pattern() string
	SetPattern(p string)

	// WriteXML writes the format as a "format" element.
	WriteXML(w io.Writer) error
}

// Basic is the standard [TextFormat] implementation.
type Basic struct {
	align      Alignment
	font       graphics.Font
	color      color.Color
	background color.Color
	rotation   float64
	pattern    string
}

var _ TextFormat = (*Basic)(nil)

// NewBasic returns a new format using the default font.
func NewBasic() *Basic {
	return &Basic{font: graphics.DefaultFont}
}

// Alignment implements the [TextFormat] interface.
func (f *Basic) Alignment() Alignment { return f.align }

// SetAlignment implements the [TextFormat] interface.
func (f *Basic) SetAlignment(a Alignment) { f.align = a }

// Font implements the [TextFormat] interface.
func (f *Basic) Font() graphics.Font { return f.font }

// SetFont implements the [TextFormat] interface.
func (f *Basic) SetFont(font graphics.Font) { f.font = font }

// Color implements the [TextFormat] interface.
func (f *Basic) Color() color.Color { return f.color }

// SetColor implements the [TextFormat] interface.
func (f *Basic) SetColor(c color.Color) { f.color = c }

// Background implements the [TextFormat] interface.
func (f *Basic) Background() color.Color { return f.background }

// SetBackground implements the [TextFormat] interface.
func (f *Basic) SetBackground(c color.Color) { f.background = c }

// Rotation implements the [TextFormat] interface.
func (f *Basic) Rotation() float64 { return f.rotation }

// SetRotation implements the [TextFormat] interface.
func (f *Basic) SetRotation(deg float64) { f.rotation = deg }

// Pattern implements the [TextFormat] interface.
func (f *Basic) Pattern() string { return f.pattern }

// SetPattern implements the [TextFormat] interface.
func (f *Basic) SetPattern(p string) { f.pattern = p }

// Clone returns a copy of f.
func (f *Basic) Clone() *Basic {
	res := *f
	return &res
}

type formatElement struct {
	XMLName    xml.Name `xml:"format"`
	Align      string   `xml:"align,attr,omitempty"`
	Font       string   `xml:"font,attr,omitempty"`
	Size       string   `xml:"size,attr,omitempty"`
	Bold       bool     `xml:"bold,attr,omitempty"`
	Italic     bool     `xml:"italic,attr,omitempty"`
	Color      string   `xml:"color,attr,omitempty"`
	Background string   `xml:"background,attr,omitempty"`
	Rotation   string   `xml:"rotation,attr,omitempty"`
	Pattern    string   `xml:"pattern,attr,omitempty"`
}

// WriteXML implements the [TextFormat] interface.
func (f *Basic) WriteXML(w io.Writer) error {
	elem := &formatElement{
		Font:       f.font.Name,
		Bold:       f.font.Bold,
		Italic:     f.font.Italic,
		Color:      ColorString(f.color),
		Background: ColorString(f.background),
		Pattern:    f.pattern,
	}
	if f.align != AlignLeft {
		elem.Align = f.align.String()
	}
	if f.font.Size != 0 {
		elem.Size = strconv.FormatFloat(f.font.Size, 'f', -1, 64)
	}
	if f.rotation != 0 {
		elem.Rotation = strconv.FormatFloat(f.rotation, 'f', -1, 64)
	}
	return xml.NewEncoder(w).Encode(elem)
}

// ReadXML reads a "format" element, as written by [Basic.WriteXML].
func ReadXML(r io.Reader) (*Basic, error) {
	elem := &formatElement{}
	err := xml.NewDecoder(r).Decode(elem)
	if err != nil {
		return nil, err
	}

	f := &Basic{
		font: graphics.Font{
			Name:   elem.Font,
			Bold:   elem.Bold,
			Italic: elem.Italic,
		},
		pattern: elem.Pattern,
	}
	f.align, err = parseAlignment(elem.Align)
	if err != nil {
		return nil, err
	}
	if elem.Size != "" {
		f.font.Size, err = strconv.ParseFloat(elem.Size, 64)
		if err != nil {
			return nil, err
		}
	}
	if elem.Rotation != "" {
		f.rotation, err = strconv.ParseFloat(elem.Rotation, 64)
		if err != nil {
			return nil, err
		}
	}
	f.color, err = ParseColor(elem.Color)
	if err != nil {
		return nil, err
	}
	f.background, err = ParseColor(elem.Background)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ColorString formats c as "#rrggbb", or "#rrggbbaa" for translucent
// colours.  Nil colours give the empty string.
func ColorString(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseColor parses a colour written by [ColorString].
// The empty string gives a nil colour.
func ParseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
