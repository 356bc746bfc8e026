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


package numfmt

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestPlain(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{-12, "-12"},
		{1.5, "1.5"},
		{0.125, "0.125"},
		{1e20, "100000000000000000000"},
		{math.Inf(1), "+Inf"},
	}
	f := New(nil)
	for _, c := range cases {
		t.Run(fmt.Sprint(c.in), func(t *testing.T) {
			if got := f.Format(c.in); got != c.want {
				t.Errorf("Format(%g) = %q, want %q", c.in, got, c.want)
			}
			if got := Format(c.in); got != c.want {
				t.Errorf("package Format(%g) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestLocale(t *testing.T) {
	cases := []struct {
		opt  Options
		in   float64
		want string
	}{
		{Options{Language: language.English}, 1234.5, "1234.5"},
		{Options{Language: language.English, Grouping: true}, 1234.5, "1,234.5"},
		{Options{Language: language.German}, 1234.5, "1234,5"},
		{Options{Language: language.English, MaxFractionDigits: 2}, 3.14159, "3.14"},
		{Options{Language: language.English}, 7, "7"},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			f := New(&c.opt)
			if got := f.Format(c.in); got != c.want {
				t.Errorf("Format(%g) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCached(t *testing.T) {
	f := New(nil)
	f.Format(2.5)
	f.Format(2.5)
	f.Format(math.NaN())
	if n := f.cache.Len(); n != 1 {
		t.Errorf("cache holds %d entries, want 1", n)
	}
}
