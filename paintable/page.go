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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/reportpaint/graphics"
	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/shape"
)

// Page is a list of paintables forming one page of a report.
// Paintables are painted in the order they were added, so that later
// paintables are on top.
type Page struct {
	Width, Height float64

	items []Paintable
}

// NewPage creates an empty page of the given size.
func NewPage(width, height float64) *Page {
	return &Page{Width: width, Height: height}
}

// Add appends paintables to the page.
func (pg *Page) Add(items ...Paintable) {
	for _, item := range items {
		if item != nil {
			pg.items = append(pg.items, item)
		}
	}
}

// Paintables returns the paintables on the page, bottom first.
func (pg *Page) Paintables() []Paintable {
	return pg.items
}

// Paint paints all paintables onto g.
func (pg *Page) Paint(g graphics.Graphics) {
	for _, item := range pg.items {
		item.Paint(g)
	}
}

// hitTester is implemented by paintables with hyperlinks attached to parts
// of their content.  Points are relative to the top-left corner of the
// paintable.
type hitTester interface {
	HyperlinkAt(x, y float64) *hyperlink.Ref
	HyperlinksAt(x, y float64) []*hyperlink.Ref
}

// elementLinks is implemented by paintables with a hyperlink for the
// whole element.
type elementLinks interface {
	Hyperlink() *hyperlink.Ref
	DrillHyperlinks() []*hyperlink.Ref
}

// at returns the top-most paintable containing the point.
func (pg *Page) at(x, y float64) (Paintable, bool) {
	for i := len(pg.items) - 1; i >= 0; i-- {
		item := pg.items[i]
		if item.Bounds().Contains(x, y) {
			return item, true
		}
	}
	return nil, false
}

// HyperlinkAt returns the hyperlink at the given page position, or nil.
//
// The top-most paintable containing the point is asked first.  If it has
// no link for this point, the hyperlink of its element is used.
func (pg *Page) HyperlinkAt(x, y float64) *hyperlink.Ref {
	item, ok := pg.at(x, y)
	if !ok {
		return nil
	}
	if ht, ok := item.(hitTester); ok {
		b := item.Bounds()
		if ref := ht.HyperlinkAt(x-b.X, y-b.Y); ref != nil {
			return ref
		}
	}
	if el, ok := item.(elementLinks); ok {
		return el.Hyperlink()
	}
	return nil
}

// HyperlinksAt returns all hyperlinks at the given page position, or nil.
// The rules of [Page.HyperlinkAt] apply.
func (pg *Page) HyperlinksAt(x, y float64) []*hyperlink.Ref {
	item, ok := pg.at(x, y)
	if !ok {
		return nil
	}
	if ht, ok := item.(hitTester); ok {
		b := item.Bounds()
		if refs := ht.HyperlinksAt(x-b.X, y-b.Y); refs != nil {
			return refs
		}
	}
	if el, ok := item.(elementLinks); ok {
		return hyperlink.Merge(el.Hyperlink(), el.DrillHyperlinks())
	}
	return nil
}

// areaLister is implemented by paintables with link shapes.  The
// returned matrix maps the shapes to page coordinates.
type areaLister interface {
	linkAreas() (matrix.Matrix, iter.Seq[shape.Shape])
	HyperlinksFor(s shape.Shape) []*hyperlink.Ref
}

func (p *LinkedPaintable) linkAreas() (matrix.Matrix, iter.Seq[shape.Shape]) {
	return matrix.Translate(p.x, p.y), p.HyperlinkAreas()
}

func (p *ChartPaintable) linkAreas() (matrix.Matrix, iter.Seq[shape.Shape]) {
	return p.pageMatrix(), p.HyperlinkAreas()
}

// HyperlinkAreas iterates over all hyperlink areas on the page, in page
// coordinates, together with the hyperlinks of each area.
//
// Paintables with a hyperlink for the whole element contribute their
// bounds.  Areas are listed in hit testing order within each paintable,
// starting with the bottom-most paintable.
func (pg *Page) HyperlinkAreas() iter.Seq2[shape.Shape, []*hyperlink.Ref] {
	return func(yield func(shape.Shape, []*hyperlink.Ref) bool) {
		for _, item := range pg.items {
			if al, ok := item.(areaLister); ok {
				m, areas := al.linkAreas()
				for s := range areas {
					if !yield(shape.Transform(s, m), al.HyperlinksFor(s)) {
						return
					}
				}
			}
			if el, ok := item.(elementLinks); ok {
				refs := hyperlink.Merge(el.Hyperlink(), el.DrillHyperlinks())
				if refs != nil && !yield(item.Bounds(), refs) {
					return
				}
			}
		}
	}
}

// PageBreak marks the end of a page.  It has no size and paints nothing.
type PageBreak struct {
	elem Element
	x, y float64
}

var _ Paintable = (*PageBreak)(nil)

// NewPageBreak creates a page break for the given element.
func NewPageBreak(elem Element) *PageBreak {
	return &PageBreak{elem: elem}
}

// Paint implements the [Paintable] interface.
func (pb *PageBreak) Paint(graphics.Graphics) {}

// Bounds implements the [Paintable] interface.
func (pb *PageBreak) Bounds() shape.Rect {
	return shape.R(pb.x, pb.y, 0, 0)
}

// SetLocation implements the [Paintable] interface.
func (pb *PageBreak) SetLocation(x, y float64) {
	pb.x, pb.y = x, y
}

// Element implements the [Paintable] interface.
func (pb *PageBreak) Element() Element {
	return pb.elem
}
