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


// Package numfmt converts floating point numbers into strings, for use in
// hyperlink parameters, tooltips and labels.
//
// Integral values are written without a fractional part.  Formatted
// strings are remembered in an [objcache.Cache], since reports tend to
// format the same values many times.
package numfmt

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"seehuhn.de/go/reportpaint/objcache"
)

// Options control the output of a [Formatter].
type Options struct {
	// Language selects the decimal separator and digit grouping.
	// If this is the zero value, the locale independent format of
	// [strconv.FormatFloat] is used.
	Language language.Tag

	// MaxFractionDigits limits the number of digits after the decimal
	// separator.  Only used together with Language.  If zero,
	// DefaultFractionDigits is used.
	MaxFractionDigits int

	// Grouping enables digit grouping, for example "1,234" in English.
	// Only used together with Language.
	Grouping bool
}

// DefaultFractionDigits is the default value for
// [Options.MaxFractionDigits].
const DefaultFractionDigits = 6

// Formatter converts numbers to strings.
// A Formatter is not safe for concurrent use.
type Formatter struct {
	opt     Options
	printer *message.Printer
	cache   *objcache.Cache[float64, string]
}

// New returns a new formatter.  If opt is nil, default options are used.
func New(opt *Options) *Formatter {
	f := &Formatter{
		cache: objcache.New[float64, string](),
	}
	if opt != nil {
		f.opt = *opt
	}
	if f.opt.MaxFractionDigits <= 0 {
		f.opt.MaxFractionDigits = DefaultFractionDigits
	}
	if f.opt.Language != language.Und {
		f.printer = message.NewPrinter(f.opt.Language)
	}
	return f
}

// Format returns the string representation of x.
func (f *Formatter) Format(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return f.cache.GetOrCompute(x, func() string {
		return f.format(x)
	})
}

func (f *Formatter) format(x float64) string {
	if f.printer == nil {
		return plain(x)
	}

	opts := []number.Option{number.MaxFractionDigits(f.opt.MaxFractionDigits)}
	if !f.opt.Grouping {
		opts = append(opts, number.NoSeparator())
	}
	return f.printer.Sprint(number.Decimal(x, opts...))
}

// Format formats x in the locale independent format, without caching.
func Format(x float64) string {
	return plain(x)
}

func plain(x float64) string {
	if x == math.Trunc(x) && math.Abs(x) < 1e15 {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
