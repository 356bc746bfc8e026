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


package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/reportpaint/shape"
)

// Raster is a [Graphics] implementation which paints into an RGBA image.
// One unit in device space corresponds to one pixel.
type Raster struct {
	stateStack

	Image *image.RGBA

	raster *vector.Rasterizer
	faces  map[faceKey]font.Face
}

type faceKey struct {
	style int
	size  float64
}

// NewRaster allocates a new, transparent image of the given size and
// returns a surface which paints into it.
func NewRaster(width, height int) *Raster {
	return NewRasterFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRasterFor returns a surface which paints into img.
// The clipping rectangle is initialised to the bounds of img.
func NewRasterFor(img *image.RGBA) *Raster {
	b := img.Bounds()
	g := &Raster{
		stateStack: newStateStack(),
		Image:      img,
		raster:     vector.NewRasterizer(b.Dx(), b.Dy()),
		faces:      make(map[faceKey]font.Face),
	}
	g.SetClip(shape.Rect{
		X: float64(b.Min.X),
		Y: float64(b.Min.Y),
		W: float64(b.Dx()),
		H: float64(b.Dy()),
	})
	return g
}

// Clear fills the whole image with c, ignoring the clipping rectangle.
func (g *Raster) Clear(c color.Color) {
	draw.Draw(g.Image, g.Image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// clipBounds returns the pixels which may be painted.
func (g *Raster) clipBounds() image.Rectangle {
	b := g.Image.Bounds()
	if clip, ok := g.Clip(); ok {
		b = b.Intersect(clip.Image())
	}
	return b
}

// scale returns the factor by which the current transformation scales
// lengths, on average.
func (g *Raster) scale() float64 {
	m := g.cur.ctm
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// Fill implements the [Graphics] interface.
// The non-zero winding rule is used.
func (g *Raster) Fill(s shape.Shape) {
	cb := g.clipBounds()
	if cb.Empty() {
		return
	}
	polys := s.Path().Transform(g.cur.ctm).Flatten(0.25)
	g.raster.Reset(cb.Dx(), cb.Dy())
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		g.moveTo(poly[0], cb)
		for _, p := range poly[1:] {
			g.lineTo(p, cb)
		}
		g.raster.ClosePath()
	}
	g.raster.Draw(g.Image, cb, image.NewUniform(g.cur.color), image.Point{})
}

// Stroke implements the [Graphics] interface.
// Each line segment is painted as a rectangle, extended by half the line
// width at both ends.
func (g *Raster) Stroke(s shape.Shape, width float64) {
	cb := g.clipBounds()
	if cb.Empty() {
		return
	}
	w := max(width*g.scale(), 1) / 2

	g.raster.Reset(cb.Dx(), cb.Dy())
	for _, line := range s.Path().Transform(g.cur.ctm).Polylines(0.25) {
		pts := line.Points
		if line.Closed && len(pts) > 2 {
			pts = append(pts, pts[0])
		}
		for i := 1; i < len(pts); i++ {
			g.segment(pts[i-1], pts[i], w, cb)
		}
	}
	g.raster.Draw(g.Image, cb, image.NewUniform(g.cur.color), image.Point{})
}

func (g *Raster) segment(a, b vec.Vec2, w float64, cb image.Rectangle) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	d = d.Mul(w / l)
	n := vec.Vec2{X: -d.Y, Y: d.X}
	a = a.Sub(d)
	b = b.Add(d)

	g.moveTo(a.Add(n), cb)
	g.lineTo(b.Add(n), cb)
	g.lineTo(b.Sub(n), cb)
	g.lineTo(a.Sub(n), cb)
	g.raster.ClosePath()
}

func (g *Raster) moveTo(p vec.Vec2, cb image.Rectangle) {
	g.raster.MoveTo(float32(p.X-float64(cb.Min.X)), float32(p.Y-float64(cb.Min.Y)))
}

func (g *Raster) lineTo(p vec.Vec2, cb image.Rectangle) {
	g.raster.LineTo(float32(p.X-float64(cb.Min.X)), float32(p.Y-float64(cb.Min.Y)))
}

// DrawImage implements the [Graphics] interface.
func (g *Raster) DrawImage(img image.Image, dst shape.Rect) {
	sb := img.Bounds()
	if sb.Empty() || dst.IsEmpty() {
		return
	}
	cb := g.clipBounds()
	if cb.Empty() {
		return
	}

	m := matrix.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)).
		Mul(matrix.Scale(dst.W/float64(sb.Dx()), dst.H/float64(sb.Dy()))).
		Mul(matrix.Translate(dst.X, dst.Y)).
		Mul(g.cur.ctm)
	xdraw.BiLinear.Transform(g.Image.SubImage(cb).(*image.RGBA), aff3(m), img, sb, xdraw.Over, nil)
}

// DrawString implements the [Graphics] interface.
//
// Text is set in one of the Go fonts.  If the current transformation
// includes a rotation or shear, the text is rendered into an off-screen
// buffer first, which is then transformed onto the image.
func (g *Raster) DrawString(s string, x, y float64) {
	cb := g.clipBounds()
	if s == "" || cb.Empty() {
		return
	}
	scale := g.scale()
	if scale == 0 {
		return
	}
	face := g.face(g.cur.font, scale)
	src := image.NewUniform(g.cur.color)

	m := g.cur.ctm
	if m[1] == 0 && m[2] == 0 && m[0] > 0 && m[3] > 0 {
		dx, dy := m.Apply(x, y)
		d := &font.Drawer{
			Dst:  g.Image.SubImage(cb).(*image.RGBA),
			Src:  src,
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.Int26_6(dx * 64), Y: fixed.Int26_6(dy * 64)},
		}
		d.DrawString(s)
		return
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	width := font.MeasureString(face, s).Ceil()
	if width <= 0 || height <= 0 {
		return
	}
	buf := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  buf,
		Src:  src,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	toUser := matrix.Scale(1/scale, 1/scale).
		Mul(matrix.Translate(x, y-float64(ascent)/scale)).
		Mul(m)
	xdraw.BiLinear.Transform(g.Image.SubImage(cb).(*image.RGBA), aff3(toUser), buf, buf.Bounds(), xdraw.Over, nil)
}

// face returns a font face for f, scaled to device pixels.
func (g *Raster) face(f Font, scale float64) font.Face {
	style := 0
	if f.Bold {
		style |= 1
	}
	if f.Italic {
		style |= 2
	}
	size := f.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	key := faceKey{style: style, size: size * scale}
	if face, ok := g.faces[key]; ok {
		return face
	}

	var face font.Face = basicfont.Face7x13
	if otf := goFonts()[style]; otf != nil {
		nf, err := opentype.NewFace(otf, &opentype.FaceOptions{
			Size:    key.size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err == nil {
			face = nf
		}
	}
	g.faces[key] = face
	return face
}

// goFonts holds the parsed Go fonts, indexed by style.  Bit 0 selects
// bold, bit 1 italic.
var goFonts = sync.OnceValue(func() [4]*opentype.Font {
	var res [4]*opentype.Font
	for i, data := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
		f, err := opentype.Parse(data)
		if err == nil {
			res[i] = f
		}
	}
	return res
})

func aff3(m matrix.Matrix) f64.Aff3 {
	return f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
}
