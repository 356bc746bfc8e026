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


// Package fontmetrics measures text for layout of report elements.
//
// Metrics can be read from Adobe font metrics (AFM) files, or from
// TrueType and OpenType fonts.  All lengths returned by this package are
// in the same unit as the font size.
package fontmetrics

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/postscript/afm"
	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// Metrics provides the information needed to lay out a line of text.
type Metrics interface {
	// StringWidth returns the advance width of s, set at the given size.
	StringWidth(s string, size float64) float64

	// Ascent returns the height of the font above the baseline.
	Ascent(size float64) float64

	// Descent returns the depth of the font below the baseline,
	// as a positive number.
	Descent(size float64) float64

	// LineHeight returns the distance between consecutive baselines.
	LineHeight(size float64) float64
}

// AFM holds metrics read from an AFM file.
type AFM struct {
	// FontName is the PostScript name of the font.
	FontName string

	widths            map[string]float64
	kern              map[[2]string]float64
	ascent, descent   float64
	missingGlyphWidth float64
}

// ErrNotAFM is returned by [ReadAFM] if the input does not describe a font.
var ErrNotAFM = errors.New("not an AFM file")

// ReadAFM reads font metrics from an AFM file.
func ReadAFM(r io.Reader) (*AFM, error) {
	metrics, err := afm.Read(r)
	if err != nil {
		return nil, err
	}
	if metrics.FontName == "" || len(metrics.Glyphs) == 0 {
		return nil, ErrNotAFM
	}

	// Some AFM files lack ascent and descent.  We infer values for these
	// from glyph bounding boxes.
	ascent := metrics.Ascent
	for _, name := range []string{"d", "bracketleft", "bar"} {
		if g, ok := metrics.Glyphs[name]; ok {
			ascent = max(ascent, float64(g.BBox.URy))
		}
	}
	descent := metrics.Descent
	for _, name := range []string{"p", "bracketleft", "bar"} {
		if g, ok := metrics.Glyphs[name]; ok {
			descent = min(descent, float64(g.BBox.LLy))
		}
	}

	res := &AFM{
		FontName: metrics.FontName,
		widths:   make(map[string]float64, len(metrics.Glyphs)),
		ascent:   ascent / 1000,
		descent:  -descent / 1000,
	}
	for name, g := range metrics.Glyphs {
		res.widths[name] = g.WidthX / 1000
	}
	if w, ok := res.widths["space"]; ok {
		res.missingGlyphWidth = w
	}
	if len(metrics.Kern) > 0 {
		res.kern = make(map[[2]string]float64, len(metrics.Kern))
		for _, k := range metrics.Kern {
			res.kern[[2]string{k.Left, k.Right}] = float64(k.Adjust) / 1000
		}
	}
	return res, nil
}

// StringWidth implements the [Metrics] interface.
// Kerning information from the AFM file is applied.
func (m *AFM) StringWidth(s string, size float64) float64 {
	var width float64
	prev := ""
	for _, r := range s {
		name := names.FromUnicode(string(r))
		w, ok := m.widths[name]
		if !ok {
			w = m.missingGlyphWidth
		}
		width += w
		if prev != "" {
			width += m.kern[[2]string{prev, name}]
		}
		prev = name
	}
	return width * size
}

// Ascent implements the [Metrics] interface.
func (m *AFM) Ascent(size float64) float64 {
	return m.ascent * size
}

// Descent implements the [Metrics] interface.
func (m *AFM) Descent(size float64) float64 {
	return m.descent * size
}

// LineHeight implements the [Metrics] interface.
// AFM files carry no line gap, so 20% of the font size are used.
func (m *AFM) LineHeight(size float64) float64 {
	return (m.ascent + m.descent + 0.2) * size
}

// SFNT holds metrics read from a TrueType or OpenType font.
type SFNT struct {
	// FamilyName is the font family name.
	FamilyName string

	font   *sfnt.Font
	lookup func(rune) glyph.ID

	ascent, descent, lineGap float64
}

// ReadSFNT reads font metrics from a TrueType or OpenType font file.
func ReadSFNT(r io.Reader) (*SFNT, error) {
	f, err := sfnt.Read(r)
	if err != nil {
		return nil, err
	}
	cmap, err := f.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}

	unitsPerEm := float64(f.UnitsPerEm)
	return &SFNT{
		FamilyName: f.FamilyName,
		font:       f,
		lookup:     cmap.Lookup,
		ascent:     float64(f.Ascent) / unitsPerEm,
		descent:    -float64(f.Descent) / unitsPerEm,
		lineGap:    float64(f.LineGap) / unitsPerEm,
	}, nil
}

// StringWidth implements the [Metrics] interface.
// Characters missing from the font use the width of the ".notdef" glyph.
func (m *SFNT) StringWidth(s string, size float64) float64 {
	var width float64
	for _, r := range s {
		width += m.font.GlyphWidthPDF(m.lookup(r))
	}
	return width / 1000 * size
}

// Ascent implements the [Metrics] interface.
func (m *SFNT) Ascent(size float64) float64 {
	return m.ascent * size
}

// Descent implements the [Metrics] interface.
func (m *SFNT) Descent(size float64) float64 {
	return m.descent * size
}

// LineHeight implements the [Metrics] interface.
func (m *SFNT) LineHeight(size float64) float64 {
	return (m.ascent + m.descent + m.lineGap) * size
}

var defaultMetrics = sync.OnceValue(func() *SFNT {
	m, err := ReadSFNT(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err) // should not happen
	}
	return m
})

// Default returns the metrics of the Go Regular font.
func Default() *SFNT {
	return defaultMetrics()
}
