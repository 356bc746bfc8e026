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


// Package hyperlink implements hyperlink references attached to report
// elements and to sub-areas of rendered content.
//
// A [Ref] names a link target, together with an ordered list of
// parameters which are passed to the target.  Charts and images often
// carry a primary hyperlink together with several "drill" hyperlinks,
// which are combined using [Merge].
package hyperlink

import (
	"fmt"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/reportpaint/param"
)

// Type describes what kind of resource a hyperlink points to.
type Type int

// These are the supported hyperlink types.
const (
	// TypeWeb links to a URL.
	TypeWeb Type = iota

	// TypeReport links to another report in the repository.
	TypeReport

	// TypeBookmark links to a bookmark within the current report.
	TypeBookmark
)

func (t Type) String() string {
	switch t {
	case TypeWeb:
		return "web"
	case TypeReport:
		return "report"
	case TypeBookmark:
		return "bookmark"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Param is a named hyperlink parameter.
type Param struct {
	Name  string
	Value any
}

// Ref is a hyperlink reference.
type Ref struct {
	// Name identifies the hyperlink.  When hyperlinks are merged, refs
	// with the same name are considered duplicates.  If Name is empty,
	// Link is used instead.
	Name string

	// Link is the link target.  It may contain parameter references of the
	// form "$(name)".
	Link string

	Type Type

	// TargetFrame is the name of the browser frame to open the link in.
	TargetFrame string

	// Tooltip is shown when the pointer hovers over the link area.
	Tooltip string

	// SendReportParams indicates that the parameters of the current report
	// are passed on to the link target.
	SendReportParams bool

	// DisablePrompting suppresses parameter prompts of the target report.
	DisablePrompting bool

	params []Param
}

// Key returns the name used to detect duplicate hyperlinks.
func (r *Ref) Key() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Link
}

// SetParameter sets the value of a parameter.  New parameters are added
// after all existing ones; existing parameters keep their position.
func (r *Ref) SetParameter(name string, value any) {
	idx := r.index(name)
	if idx >= 0 {
		r.params[idx].Value = value
		return
	}
	r.params = append(r.params, Param{Name: name, Value: value})
}

// RemoveParameter removes a parameter.
func (r *Ref) RemoveParameter(name string) {
	idx := r.index(name)
	if idx >= 0 {
		r.params = slices.Delete(r.params, idx, idx+1)
	}
}

// Parameter returns the value of a parameter.
func (r *Ref) Parameter(name string) (any, bool) {
	idx := r.index(name)
	if idx < 0 {
		return nil, false
	}
	return r.params[idx].Value, true
}

// ParameterNames returns the parameter names in order.
func (r *Ref) ParameterNames() []string {
	if r == nil {
		return nil
	}
	res := make([]string, len(r.params))
	for i, p := range r.params {
		res[i] = p.Name
	}
	return res
}

// Params returns a copy of the parameter list.
func (r *Ref) Params() []Param {
	if r == nil {
		return nil
	}
	return slices.Clone(r.params)
}

func (r *Ref) index(name string) int {
	if r == nil {
		return -1
	}
	return slices.IndexFunc(r.params, func(p Param) bool { return p.Name == name })
}

// Lookup implements the [param.Lookup] interface.
func (r *Ref) Lookup(name string) (any, bool) {
	return r.Parameter(name)
}

// Clone returns a copy of r.  Parameter values are shared between
// the copies.
func (r *Ref) Clone() *Ref {
	if r == nil {
		return nil
	}
	res := *r
	res.params = slices.Clone(r.params)
	return &res
}

// Snapshot returns a copy of r, suitable for storing in a paintable.
// Later changes to r do not affect the snapshot.  If r is nil, nil is
// returned.
func Snapshot(r *Ref) *Ref {
	return r.Clone()
}

// MergeParameters returns a copy of r, with all values added as
// parameters.  Parameters already present in r keep their values.
// New parameters are added in the order given by names, or in the order
// of param.Names(r.Link) if names is nil.
// Values which cannot be looked up are left out.
func (r *Ref) MergeParameters(values param.Lookup, names []string) *Ref {
	res, _ := r.mergeParameters(values, names, false)
	return res
}

// TryMergeParameters is like [Ref.MergeParameters], but stops at the
// first value which cannot be looked up.  Errors are only reported for
// values implementing [param.Getter].
func (r *Ref) TryMergeParameters(values param.Lookup, names []string) (*Ref, error) {
	return r.mergeParameters(values, names, true)
}

func (r *Ref) mergeParameters(values param.Lookup, names []string, strict bool) (*Ref, error) {
	if r == nil {
		return nil, nil
	}
	res := r.Clone()
	if values == nil {
		return res, nil
	}
	getter, _ := values.(param.Getter)
	if names == nil {
		names = param.Names(r.Link)
	}
	for _, name := range names {
		if res.index(name) >= 0 {
			continue
		}
		var val any
		var ok bool
		if getter != nil {
			var err error
			val, ok, err = getter.Get(name)
			if err != nil {
				if strict {
					return nil, fmt.Errorf("parameter %q: %w", name, err)
				}
				continue
			}
		} else {
			val, ok = values.Lookup(name)
		}
		if ok {
			res.params = append(res.params, Param{Name: name, Value: val})
		}
	}
	return res, nil
}

// Resolve returns the link and tooltip of r, with parameter references
// substituted.  The parameters of r take precedence over values.
func (r *Ref) Resolve(values param.Lookup) (link, tooltip string) {
	lookup := param.LookupFunc(func(name string) (any, bool) {
		if val, ok := r.Parameter(name); ok {
			return val, true
		}
		if values != nil {
			return values.Lookup(name)
		}
		return nil, false
	})
	return param.Substitute(r.Link, lookup), param.Substitute(r.Tooltip, lookup)
}

// Equal reports whether two refs describe the same hyperlink.
func (r *Ref) Equal(other *Ref) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Name != other.Name || r.Link != other.Link || r.Type != other.Type ||
		r.TargetFrame != other.TargetFrame || r.Tooltip != other.Tooltip ||
		r.SendReportParams != other.SendReportParams ||
		r.DisablePrompting != other.DisablePrompting {
		return false
	}
	return slices.EqualFunc(r.params, other.params, func(a, b Param) bool {
		return a.Name == b.Name && fmt.Sprint(a.Value) == fmt.Sprint(b.Value)
	})
}

func (r *Ref) String() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s link %q (%s)", r.Type, r.Link, r.Key())
}

// Merge combines a primary hyperlink with a list of drill hyperlinks.
// The result is ordered with the primary hyperlink first, and contains at
// most one hyperlink for each key: the primary hyperlink wins ties, and
// among drill hyperlinks the first one wins.  Nil entries are skipped.
// If the result would be empty, nil is returned.
func Merge(primary *Ref, drills []*Ref) []*Ref {
	var res []*Ref
	seen := make(map[string]bool)
	add := func(r *Ref) {
		if r == nil {
			return
		}
		key := r.Key()
		if seen[key] {
			return
		}
		seen[key] = true
		res = append(res, r)
	}
	add(primary)
	for _, d := range drills {
		add(d)
	}
	return res
}
