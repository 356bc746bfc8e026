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
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/reportpaint/graphics"
)

func TestBasicXML(t *testing.T) {
	f := NewBasic()
	f.SetAlignment(AlignRight)
	f.SetFont(graphics.Font{Name: "Helvetica", Size: 11.5, Bold: true})
	f.SetColor(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})
	f.SetBackground(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80})
	f.SetRotation(90)
	f.SetPattern("#,##0.00")

	buf := &bytes.Buffer{}
	err := f.WriteXML(buf)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`align="right"`, `color="#123456"`, `background="#ffffff80"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("%s missing from %s", want, buf.String())
		}
	}

	g, err := ReadXML(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(f, g, cmp.AllowUnexported(Basic{})); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestReadXMLErrors(t *testing.T) {
	cases := []string{
		`<format align="middle"/>`,
		`<format color="red"/>`,
		`<format size="big"/>`,
		`<notaformat/>`,
	}
	for _, c := range cases {
		if _, err := ReadXML(strings.NewReader(c)); err == nil {
			t.Errorf("%s: no error", c)
		}
	}
}

func TestAll(t *testing.T) {
	a, b := NewBasic(), NewBasic()
	b.SetRotation(45)
	all := NewAll(a, b)

	if all.Rotation() != 0 {
		t.Errorf("getter did not use the first member: %g", all.Rotation())
	}

	all.SetAlignment(AlignCenter)
	all.SetColor(color.Black)
	all.SetPattern("0%")
	for i, f := range []*Basic{a, b} {
		if f.Alignment() != AlignCenter || f.Color() != color.Black || f.Pattern() != "0%" {
			t.Errorf("member %d not updated", i)
		}
	}

	empty := NewAll()
	empty.SetRotation(10)
	if empty.Rotation() != 0 || empty.Color() != nil || empty.Font() != (graphics.Font{}) {
		t.Error("empty group returned non-zero values")
	}
}

func TestAllWriteXMLPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WriteXML did not panic")
		}
	}()
	NewAll(NewBasic()).WriteXML(&bytes.Buffer{})
}
