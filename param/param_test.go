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


package param

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSubstitute(t *testing.T) {
	values := Values{
		"id":    7,
		"name":  "north",
		"price": 12.5,
		"count": 3.0,
		"day":   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"list":  []any{"a", 2.0},
		"empty": nil,
	}
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"no params", "no params"},
		{"id=$(id)", "id=7"},
		{"$(name)/$(name)", "north/north"},
		{"$(price) $(count)", "12.5 3"},
		{"d=$(day)", "d=2024-03-01T00:00:00Z"},
		{"l=$(list)", "l=a,2"},
		{"e=$(empty)!", "e=!"},
		{"x=$(unknown)", "x=$(unknown)"},
		{"$( id )", "7"},
		{"$()$(id)", "$()7"},
		{"open $(id", "open $(id"},
		{"$$(id)", "$7"},
	}
	for _, c := range cases {
		if got := Substitute(c.in, values); got != c.want {
			t.Errorf("Substitute(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if got := Substitute("$(id)", nil); got != "$(id)" {
		t.Errorf("nil lookup: got %q", got)
	}
}

func TestLookupFunc(t *testing.T) {
	f := LookupFunc(func(name string) (any, bool) {
		return "<" + name + ">", true
	})
	if got := Substitute("a$(b)c", f); got != "a<b>c" {
		t.Errorf("got %q", got)
	}
}

func TestNames(t *testing.T) {
	got := Names("$(b) and $(a), again $(b), $() $(c")
	if d := cmp.Diff([]string{"b", "a"}, got); d != "" {
		t.Errorf("Names (-want +got):\n%s", d)
	}
	if got := Names("plain"); got != nil {
		t.Errorf("Names(plain) = %v, want nil", got)
	}
}
