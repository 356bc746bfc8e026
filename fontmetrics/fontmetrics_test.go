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


package fontmetrics

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const testAFM = `StartFontMetrics 4.1
FontName Test-Regular
FullName Test Regular
FamilyName Test
Weight Regular
ItalicAngle 0
IsFixedPitch false
FontBBox 0 -210 600 720
StartCharMetrics 5
C 32 ; WX 250 ; N space ; B 0 0 0 0 ;
C 65 ; WX 600 ; N A ; B 0 0 600 700 ;
C 86 ; WX 600 ; N V ; B 0 0 600 700 ;
C 100 ; WX 500 ; N d ; B 20 -10 480 720 ;
C 112 ; WX 500 ; N p ; B 20 -210 480 500 ;
EndCharMetrics
StartKernData
StartKernPairs 1
KPX A V -80
EndKernPairs
EndKernData
EndFontMetrics
`

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestAFM(t *testing.T) {
	m, err := ReadAFM(strings.NewReader(testAFM))
	if err != nil {
		t.Fatal(err)
	}
	if m.FontName != "Test-Regular" {
		t.Errorf("FontName = %q", m.FontName)
	}

	got := []float64{
		m.StringWidth("AV", 10),
		m.StringWidth("VA", 10),
		m.StringWidth("d p", 10),
		m.StringWidth("é", 10), // missing glyphs use the space width
		m.Ascent(10),
		m.Descent(10),
		m.LineHeight(10),
	}
	want := []float64{11.2, 12, 12.5, 2.5, 7.2, 2.1, 11.3}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("metrics (-want +got):\n%s", d)
	}
}

func TestReadAFMError(t *testing.T) {
	cases := []string{
		"this is not an AFM file",
		"StartFontMetrics 4.1\nFontName Empty\nEndFontMetrics\n",
		"",
	}
	for _, in := range cases {
		_, err := ReadAFM(strings.NewReader(in))
		if err == nil {
			t.Errorf("%q: no error for invalid input", in)
		}
	}

	_, err := ReadAFM(strings.NewReader("this is not an AFM file"))
	if !errors.Is(err, ErrNotAFM) {
		t.Errorf("got %v, want %v", err, ErrNotAFM)
	}
}

func TestDefault(t *testing.T) {
	m := Default()
	if m != Default() {
		t.Error("Default() is not cached")
	}
	if m.StringWidth("", 12) != 0 {
		t.Error("empty string has non-zero width")
	}

	i := m.StringWidth("i", 12)
	if d := cmp.Diff(2*i, m.StringWidth("ii", 12), approx); d != "" {
		t.Errorf("width is not additive (-want +got):\n%s", d)
	}
	if m.StringWidth("W", 12) <= i {
		t.Error("W is not wider than i")
	}
	if d := cmp.Diff(2*i, m.StringWidth("i", 24), approx); d != "" {
		t.Errorf("width does not scale (-want +got):\n%s", d)
	}

	asc, desc := m.Ascent(10), m.Descent(10)
	if asc <= 0 || desc <= 0 {
		t.Errorf("ascent %g, descent %g", asc, desc)
	}
	if m.LineHeight(10) < asc+desc {
		t.Errorf("line height %g smaller than %g", m.LineHeight(10), asc+desc)
	}
}
