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


package paintable

import (
	"iter"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/shape"
)

// LinkedPaintable is a [PainterPaintable] where parts of the content carry
// their own hyperlinks.
//
// Each part is described by a shape, given in coordinates relative to the
// top-left corner of the paintable.  A shape can have one hyperlink and
// any number of drill hyperlinks.  When shapes overlap, the shape
// registered first takes precedence.
type LinkedPaintable struct {
	PainterPaintable

	links  []shapeLink
	drills []shapeDrills
}

type shapeLink struct {
	shape shape.Shape
	ref   *hyperlink.Ref
}

type shapeDrills struct {
	shape shape.Shape
	refs  []*hyperlink.Ref
}

// NewLinkedPaintable creates a new paintable without any shape links.
func NewLinkedPaintable(elem Element, painter Painter, bounds shape.Rect, opt *Options) *LinkedPaintable {
	p := &LinkedPaintable{}
	p.init(elem, painter, bounds, opt)
	return p
}

// SetHyperlink sets the hyperlink for the given shape.
// If ref is nil, the hyperlink is removed.
// Replacing the hyperlink of a shape keeps its position in the lookup
// order.
func (p *LinkedPaintable) SetHyperlink(s shape.Shape, ref *hyperlink.Ref) {
	idx := slices.IndexFunc(p.links, func(l shapeLink) bool {
		return shape.Equal(l.shape, s)
	})
	switch {
	case ref == nil && idx >= 0:
		p.links = slices.Delete(p.links, idx, idx+1)
	case ref == nil:
		// nothing to remove
	case idx >= 0:
		p.links[idx].ref = ref
	default:
		p.links = append(p.links, shapeLink{shape: s, ref: ref})
	}
}

// HyperlinkFor returns the hyperlink of the given shape, or nil.
func (p *LinkedPaintable) HyperlinkFor(s shape.Shape) *hyperlink.Ref {
	for _, l := range p.links {
		if shape.Equal(l.shape, s) {
			return l.ref
		}
	}
	return nil
}

// SetDrillHyperlinks sets the drill hyperlinks for the given shape.
// If refs is empty, the drill hyperlinks are removed.
func (p *LinkedPaintable) SetDrillHyperlinks(s shape.Shape, refs []*hyperlink.Ref) {
	idx := slices.IndexFunc(p.drills, func(d shapeDrills) bool {
		return shape.Equal(d.shape, s)
	})
	switch {
	case len(refs) == 0 && idx >= 0:
		p.drills = slices.Delete(p.drills, idx, idx+1)
	case len(refs) == 0:
		// nothing to remove
	case idx >= 0:
		p.drills[idx].refs = refs
	default:
		p.drills = append(p.drills, shapeDrills{shape: s, refs: refs})
	}
}

// DrillHyperlinksFor returns the drill hyperlinks of the given shape.
func (p *LinkedPaintable) DrillHyperlinksFor(s shape.Shape) []*hyperlink.Ref {
	for _, d := range p.drills {
		if shape.Equal(d.shape, s) {
			return d.refs
		}
	}
	return nil
}

// HyperlinksFor returns the hyperlink of the given shape, followed by its
// drill hyperlinks.  Each hyperlink key occurs at most once; see
// [hyperlink.Merge].
func (p *LinkedPaintable) HyperlinksFor(s shape.Shape) []*hyperlink.Ref {
	return hyperlink.Merge(p.HyperlinkFor(s), p.DrillHyperlinksFor(s))
}

// HyperlinkAreas iterates over all shapes which have a hyperlink or drill
// hyperlinks.  Shapes with a hyperlink come first, in the order they
// were added, followed by shapes which only have drill hyperlinks.
//
// The paintable must not be modified during iteration.
func (p *LinkedPaintable) HyperlinkAreas() iter.Seq[shape.Shape] {
	return func(yield func(shape.Shape) bool) {
		for _, l := range p.links {
			if !yield(l.shape) {
				return
			}
		}
		for _, d := range p.drills {
			if p.HyperlinkFor(d.shape) != nil {
				continue
			}
			if !yield(d.shape) {
				return
			}
		}
	}
}

// areaAt returns the first hyperlink area containing the point.
func (p *LinkedPaintable) areaAt(x, y float64) (shape.Shape, bool) {
	for s := range p.HyperlinkAreas() {
		if s.Contains(x, y) {
			return s, true
		}
	}
	return nil, false
}

// HyperlinkAt returns the hyperlink at the given point, or nil.
// The point is given relative to the top-left corner of the paintable.
func (p *LinkedPaintable) HyperlinkAt(x, y float64) *hyperlink.Ref {
	s, ok := p.areaAt(x, y)
	if !ok {
		return nil
	}
	return p.HyperlinkFor(s)
}

// HyperlinksAt returns all hyperlinks at the given point, or nil.
// The point is given relative to the top-left corner of the paintable.
func (p *LinkedPaintable) HyperlinksAt(x, y float64) []*hyperlink.Ref {
	s, ok := p.areaAt(x, y)
	if !ok {
		return nil
	}
	return p.HyperlinksFor(s)
}
