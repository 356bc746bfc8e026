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
	"image/color"
	"log"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/reportpaint/graphics"
	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/shape"
)

// Paintable is a renderable unit on a report page.
type Paintable interface {
	// Paint paints the paintable onto g.  The graphics state of g is
	// unchanged when Paint returns.
	Paint(g graphics.Graphics)

	// Bounds returns the area of the page covered by the paintable.
	Bounds() shape.Rect

	// SetLocation moves the paintable on the page.
	SetLocation(x, y float64)

	// Element returns the report element shown by the paintable, or nil.
	Element() Element
}

// Options control the construction of a [PainterPaintable].
// The zero value gives an unrotated, directly painted paintable.
type Options struct {
	// Rotation is the clockwise rotation of the content, in degrees.
	// Multiples of 90 degrees are supported for all painters, other
	// angles only for painters implementing [RotatablePainter].
	Rotation float64

	// OffsetX and OffsetY select the part of the content which is shown.
	// These are used when the content is split across several pages.
	OffsetX, OffsetY float64

	// PreferredW and PreferredH give the full size of the content.
	// Zero values mean that the content fills the paintable.
	PreferredW, PreferredH float64

	// BufferW and BufferH give the resolution at which non-scalable
	// content is painted before being scaled to its final size.
	// Zero values mean that all content is painted directly.
	BufferW, BufferH float64

	// BorderWidth extends the clipping rectangle to the right and bottom,
	// so that borders drawn at the edge of the paintable remain visible.
	BorderWidth float64

	// Background and Foreground override the colours of the element.
	Background, Foreground color.Color

	// Logger receives messages about problems which are not reported as
	// errors.  If nil, [log.Default] is used.
	Logger *log.Logger
}

// PainterPaintable paints the content provided by a [Painter] into a
// rectangle on the page.
type PainterPaintable struct {
	elem    Element
	painter Painter

	x, y, w, h float64

	rotation     float64
	offX, offY   float64
	prefW, prefH float64
	bufW, bufH   float64
	border       float64

	bg, fg color.Color
	bgSet  bool

	link   *hyperlink.Ref
	drills []*hyperlink.Ref

	logger *log.Logger
}

var _ Paintable = (*PainterPaintable)(nil)

// NewPainterPaintable creates a new paintable showing elem in the given
// rectangle of the page.
//
// If elem carries hyperlinks, copies of these are taken now.  Later
// changes to the element do not affect the paintable.
func NewPainterPaintable(elem Element, painter Painter, bounds shape.Rect, opt *Options) *PainterPaintable {
	p := &PainterPaintable{}
	p.init(elem, painter, bounds, opt)
	return p
}

func (p *PainterPaintable) init(elem Element, painter Painter, bounds shape.Rect, opt *Options) {
	if opt == nil {
		opt = &Options{}
	}

	p.elem = elem
	p.painter = painter
	p.x, p.y, p.w, p.h = bounds.X, bounds.Y, bounds.W, bounds.H
	p.rotation = normalizeAngle(opt.Rotation)
	p.offX, p.offY = opt.OffsetX, opt.OffsetY
	p.prefW, p.prefH = opt.PreferredW, opt.PreferredH
	p.bufW, p.bufH = opt.BufferW, opt.BufferH
	p.border = opt.BorderWidth
	p.fg = opt.Foreground
	p.logger = opt.Logger

	if opt.Background != nil {
		p.bg = opt.Background
		p.bgSet = true
	} else {
		p.bg = inheritedBackground(elem)
	}

	if e, ok := elem.(LinkedElement); ok {
		p.link = hyperlink.Snapshot(e.Hyperlink())
	}
	if e, ok := elem.(DrillElement); ok {
		for _, ref := range e.DrillHyperlinks() {
			if ref != nil {
				p.drills = append(p.drills, hyperlink.Snapshot(ref))
			}
		}
	}
}

// normalizeAngle maps deg into the range [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func (p *PainterPaintable) log() *log.Logger {
	if p.logger != nil {
		return p.logger
	}
	return log.Default()
}

// Element implements the [Paintable] interface.
func (p *PainterPaintable) Element() Element {
	return p.elem
}

// Painter returns the painter which produces the content.
func (p *PainterPaintable) Painter() Painter {
	return p.painter
}

// Bounds implements the [Paintable] interface.
// The border width is not included.
func (p *PainterPaintable) Bounds() shape.Rect {
	return shape.R(p.x, p.y, p.w, p.h)
}

// SetLocation implements the [Paintable] interface.
func (p *PainterPaintable) SetLocation(x, y float64) {
	p.x, p.y = x, y
}

// Rotation returns the clockwise rotation of the content, in degrees.
func (p *PainterPaintable) Rotation() float64 {
	return p.rotation
}

// Offset returns the position of the visible part within the content.
func (p *PainterPaintable) Offset() (x, y float64) {
	return p.offX, p.offY
}

// IsFragment reports whether the paintable shows only a vertical slice of
// content which was split across pages.
func (p *PainterPaintable) IsFragment() bool {
	prefH := p.prefH
	if prefH <= 0 {
		prefH = p.h
	}
	return p.offY > 0 || p.offY+p.h < prefH
}

// Hyperlink returns the hyperlink of the element, as captured when the
// paintable was created, or nil.
func (p *PainterPaintable) Hyperlink() *hyperlink.Ref {
	return p.link
}

// DrillHyperlinks returns the drill hyperlinks of the element, as
// captured when the paintable was created, or nil.
func (p *PainterPaintable) DrillHyperlinks() []*hyperlink.Ref {
	return p.drills
}

// Background returns the background colour, or nil for a transparent
// background.
func (p *PainterPaintable) Background() color.Color {
	return p.bg
}

// Foreground returns the colour used to paint the content.
func (p *PainterPaintable) Foreground() color.Color {
	if p.fg != nil {
		return p.fg
	}
	if p.elem != nil {
		if fg := p.elem.Foreground(); fg != nil {
			return fg
		}
	}
	return color.Black
}

// Transformer returns the mapping between content coordinates and
// coordinates relative to the top-left corner of the paintable.
// Offsets of fragments are not included.
//
// For angles which are not quarter turns, the rotation is carried out by
// the painter.  The returned transformer then describes the rotation
// around the centre of the paint rectangle.
func (p *PainterPaintable) Transformer() RotationTransformer {
	t, delegated := p.layout()
	if delegated {
		return RotationTransformer{
			Angle:    p.rotation,
			ContentW: t.ContentW,
			ContentH: t.ContentH,
			BoxW:     t.ContentW,
			BoxH:     t.ContentH,
		}
	}
	return t
}

// layout computes how the content is placed inside the paintable.
// The second return value is true if the rotation must be carried out by
// the painter.
func (p *PainterPaintable) layout() (RotationTransformer, bool) {
	t := RotationTransformer{BoxW: p.w, BoxH: p.h}
	delegated := false
	switch angle := p.rotation; {
	case angle == 0:
		// nothing to do
	case angle == 90 || angle == 180 || angle == 270:
		t.Angle = angle
	default:
		_, delegated = p.painter.(RotatablePainter)
	}

	t.ContentW, t.ContentH = p.w, p.h
	if t.Angle == 90 || t.Angle == 270 {
		t.ContentW, t.ContentH = p.h, p.w
	}
	if p.prefW > 0 {
		t.ContentW = p.prefW
	}
	if p.prefH > 0 {
		t.ContentH = p.prefH
	}
	return t, delegated
}

// prepared returns the painter to use, and how its content is placed.
//
// For quarter turns, the content is rotated as a whole.  Other angles are
// delegated to the painter, if it supports rotation.
func (p *PainterPaintable) prepared() (Painter, RotationTransformer) {
	t, delegated := p.layout()
	painter := p.painter
	if delegated {
		painter = painter.(RotatablePainter).Rotated(p.rotation)
	} else if p.rotation != 0 && t.Angle == 0 {
		p.log().Printf("paintable %s: painter %T cannot be rotated by %g degrees",
			p.id(), painter, p.rotation)
	}
	return painter, t
}

func (p *PainterPaintable) id() string {
	if p.elem == nil {
		return "<nil>"
	}
	return p.elem.ID()
}

// contentMatrix maps content coordinates to coordinates relative to the
// top-left corner of the paintable.
func contentMatrix(t RotationTransformer, offX, offY float64) matrix.Matrix {
	return matrix.Translate(-offX, -offY).Mul(t.Matrix())
}

// ContentToPage maps a point in content coordinates to page coordinates.
func (p *PainterPaintable) ContentToPage(x, y float64) (float64, float64) {
	return p.pageMatrix().Apply(x, y)
}

// PageToContent maps a point on the page into content coordinates.
func (p *PainterPaintable) PageToContent(x, y float64) (float64, float64) {
	return p.localToContent(x-p.x, y-p.y)
}

// localToContent maps a point relative to the paintable into content
// coordinates.
func (p *PainterPaintable) localToContent(x, y float64) (float64, float64) {
	u, v := p.Transformer().Inverse(x, y)
	return u + p.offX, v + p.offY
}

func (p *PainterPaintable) pageMatrix() matrix.Matrix {
	return contentMatrix(p.Transformer(), p.offX, p.offY).Mul(matrix.Translate(p.x, p.y))
}

// Paint implements the [Paintable] interface.
//
// The content is clipped to the bounds of the paintable, extended by the
// border width.  The background is painted first, if set, followed by the
// content.
func (p *PainterPaintable) Paint(g graphics.Graphics) {
	if p.painter == nil {
		return
	}

	g.Push()
	defer g.Pop()

	g.ClipRect(shape.R(p.x, p.y, p.w+p.border, p.h+p.border))

	if p.bg != nil {
		g.SetColor(p.bg)
		g.Fill(p.Bounds())
	}

	g.SetColor(p.Foreground())
	if p.elem != nil {
		if font := p.elem.Font(); font.Size > 0 {
			g.SetFont(font)
		}
	}

	painter, t := p.prepared()
	graphics.Concat(g, contentMatrix(t, p.offX, p.offY).Mul(matrix.Translate(p.x, p.y)))
	if p.paintsDirect(painter, t.ContentW, t.ContentH) {
		painter.Paint(g, 0, 0, t.ContentW, t.ContentH)
		return
	}
	p.paintBuffered(g, painter, t.ContentW, t.ContentH)
}

// paintsDirect reports whether the painter can paint straight onto the
// target surface.
func (p *PainterPaintable) paintsDirect(painter Painter, w, h float64) bool {
	if painter.IsScalable() || p.bufW <= 0 || p.bufH <= 0 {
		return true
	}
	return p.bufW == w && p.bufH == h
}

// paintBuffered paints the content at buffer resolution into an
// off-screen image, which is then scaled to the content size.
func (p *PainterPaintable) paintBuffered(g graphics.Graphics, painter Painter, w, h float64) {
	bw, bh := int(math.Ceil(p.bufW)), int(math.Ceil(p.bufH))
	buf := graphics.NewRaster(bw, bh)
	buf.SetColor(g.Color())
	buf.SetFont(g.Font())
	painter.Paint(buf, 0, 0, float64(bw), float64(bh))
	g.DrawImage(buf.Image, shape.R(0, 0, w, h))
}
