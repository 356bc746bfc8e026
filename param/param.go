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


// Package param substitutes named parameters into strings.
//
// A parameter reference has the form "$(name)".  References to unknown
// parameters are left unchanged.
package param

import (
	"fmt"
	"strings"
	"time"

	"seehuhn.de/go/reportpaint/numfmt"
)

// Lookup provides parameter values.
type Lookup interface {
	Lookup(name string) (any, bool)
}

// Values is a [Lookup] backed by a map.
type Values map[string]any

// Lookup implements the [Lookup] interface.
func (v Values) Lookup(name string) (any, bool) {
	val, ok := v[name]
	return val, ok
}

// LookupFunc adapts a function to the [Lookup] interface.
type LookupFunc func(name string) (any, bool)

// Lookup implements the [Lookup] interface.
func (f LookupFunc) Lookup(name string) (any, bool) {
	return f(name)
}

// Getter is implemented by lookups which can fail, for example because
// values are fetched from a data source.
type Getter interface {
	Lookup
	Get(name string) (any, bool, error)
}

// GetterFunc adapts a function to the [Getter] interface.
type GetterFunc func(name string) (any, bool, error)

// Get implements the [Getter] interface.
func (f GetterFunc) Get(name string) (any, bool, error) {
	return f(name)
}

// Lookup implements the [Lookup] interface.
// Failed lookups report the value as missing.
func (f GetterFunc) Lookup(name string) (any, bool) {
	val, ok, err := f(name)
	if err != nil {
		return nil, false
	}
	return val, ok
}

// Substitute replaces all parameter references in s by the corresponding
// values.  If values is nil, s is returned unchanged.
func Substitute(s string, values Lookup) string {
	if values == nil || !strings.Contains(s, "$(") {
		return s
	}

	var b strings.Builder
	for {
		start, end, name := next(s)
		if start < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:start])
		if val, ok := values.Lookup(name); ok {
			b.WriteString(Format(val))
		} else {
			b.WriteString(s[start:end])
		}
		s = s[end:]
	}
	return b.String()
}

// Names returns the names of all parameters referenced in s, in order of
// first occurrence.
func Names(s string) []string {
	var res []string
	seen := make(map[string]bool)
	for {
		start, end, name := next(s)
		if start < 0 {
			return res
		}
		if !seen[name] {
			seen[name] = true
			res = append(res, name)
		}
		s = s[end:]
	}
}

// next finds the first parameter reference in s.
// If there is none, start is -1.
func next(s string) (start, end int, name string) {
	offs := 0
	for {
		i := strings.Index(s[offs:], "$(")
		if i < 0 {
			return -1, -1, ""
		}
		i += offs
		j := strings.IndexByte(s[i+2:], ')')
		if j < 0 {
			return -1, -1, ""
		}
		j += i + 2
		name = strings.TrimSpace(s[i+2 : j])
		if name != "" {
			return i, j + 1, name
		}
		offs = j + 1
	}
}

// Format converts a parameter value to a string.
func Format(val any) string {
	switch val := val.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return numfmt.Format(val)
	case float32:
		return numfmt.Format(float64(val))
	case time.Time:
		return val.Format(time.RFC3339)
	case []any:
		parts := make([]string, len(val))
		for i, v := range val {
			parts[i] = Format(v)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(val)
	}
}
