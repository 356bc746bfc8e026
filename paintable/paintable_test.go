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
	"bytes"
	"image"
	"image/color"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/reportpaint/graphics"
	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/shape"
)

func keys(refs []*hyperlink.Ref) []string {
	var res []string
	for _, r := range refs {
		res = append(res, r.Key())
	}
	return res
}

func TestHyperlinksFor(t *testing.T) {
	p := NewLinkedPaintable(nil, nil, shape.R(0, 0, 100, 100), nil)
	s := shape.R(10, 10, 20, 20)
	p.SetHyperlink(s, &hyperlink.Ref{Name: "A", Link: "primary"})
	p.SetDrillHyperlinks(s, []*hyperlink.Ref{
		{Name: "A", Link: "drill"},
		{Name: "B"},
	})

	got := p.HyperlinksFor(s)
	if d := cmp.Diff([]string{"A", "B"}, keys(got)); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
	if got[0].Link != "primary" {
		t.Errorf("primary hyperlink lost: %s", got[0].Link)
	}

	if refs := p.HyperlinksFor(shape.R(0, 0, 1, 1)); refs != nil {
		t.Errorf("unexpected hyperlinks %v", refs)
	}
}

func TestHyperlinkAt(t *testing.T) {
	p := NewLinkedPaintable(nil, nil, shape.R(0, 0, 100, 100), nil)
	p.SetHyperlink(shape.R(0, 0, 50, 50), &hyperlink.Ref{Name: "first"})
	p.SetHyperlink(shape.Ellipse{X: 25, Y: 25, W: 50, H: 50}, &hyperlink.Ref{Name: "second"})
	p.SetDrillHyperlinks(shape.R(80, 80, 10, 10), []*hyperlink.Ref{{Name: "drill"}})

	cases := []struct {
		x, y  float64
		link  string
		links []string
	}{
		{x: 95, y: 5},
		{x: 10, y: 10, link: "first", links: []string{"first"}},
		{x: 40, y: 40, link: "first", links: []string{"first"}},
		{x: 60, y: 60, link: "second", links: []string{"second"}},
		{x: 85, y: 85, links: []string{"drill"}},
	}
	for _, c := range cases {
		var got string
		if ref := p.HyperlinkAt(c.x, c.y); ref != nil {
			got = ref.Key()
		}
		if got != c.link {
			t.Errorf("HyperlinkAt(%g, %g) = %q, want %q", c.x, c.y, got, c.link)
		}
		if d := cmp.Diff(c.links, keys(p.HyperlinksAt(c.x, c.y))); d != "" {
			t.Errorf("HyperlinksAt(%g, %g) (-want +got):\n%s", c.x, c.y, d)
		}
	}
}

func TestHyperlinkAreas(t *testing.T) {
	a := shape.R(0, 0, 10, 10)
	b := shape.R(20, 0, 10, 10)
	c := &shape.Polygon{Points: []vec.Vec2{{X: 40, Y: 0}, {X: 50, Y: 0}, {X: 45, Y: 10}}}

	p := NewLinkedPaintable(nil, nil, shape.R(0, 0, 100, 100), nil)
	p.SetDrillHyperlinks(c, []*hyperlink.Ref{{Name: "c"}})
	p.SetDrillHyperlinks(a, []*hyperlink.Ref{{Name: "a2"}})
	p.SetHyperlink(a, &hyperlink.Ref{Name: "a"})
	p.SetHyperlink(b, &hyperlink.Ref{Name: "b"})

	var got []shape.Shape
	for s := range p.HyperlinkAreas() {
		got = append(got, s)
	}
	want := []shape.Shape{a, b, c}
	if len(got) != len(want) {
		t.Fatalf("got %d areas, want %d", len(got), len(want))
	}
	for i := range want {
		if !shape.Equal(got[i], want[i]) {
			t.Errorf("area %d: got %v, want %v", i, got[i], want[i])
		}
	}

	// replacing keeps the position, removing deletes the entry
	p.SetHyperlink(a, &hyperlink.Ref{Name: "a-new"})
	p.SetHyperlink(b, nil)
	p.SetDrillHyperlinks(c, nil)
	got = got[:0]
	for s := range p.HyperlinkAreas() {
		got = append(got, s)
	}
	if len(got) != 1 || !shape.Equal(got[0], a) {
		t.Errorf("unexpected areas %v", got)
	}
	if ref := p.HyperlinkFor(a); ref == nil || ref.Name != "a-new" {
		t.Errorf("unexpected hyperlink %v", ref)
	}

	// iteration can be stopped early
	n := 0
	p.SetHyperlink(b, &hyperlink.Ref{Name: "b"})
	for range p.HyperlinkAreas() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d times", n)
	}
}

func TestElementSnapshot(t *testing.T) {
	elem := &BasicElement{
		Name:   "text1",
		Link:   &hyperlink.Ref{Name: "L", Link: "http://example.com/"},
		Drills: []*hyperlink.Ref{{Name: "D"}},
	}
	p := NewPainterPaintable(elem, &TextPainter{Text: "x"}, shape.R(0, 0, 10, 10), nil)
	elem.Link.Link = "http://changed/"

	if p.Hyperlink().Link != "http://example.com/" {
		t.Errorf("hyperlink not copied: %s", p.Hyperlink().Link)
	}
	if d := cmp.Diff([]string{"D"}, keys(p.DrillHyperlinks())); d != "" {
		t.Errorf("drills (-want +got):\n%s", d)
	}

	q := NewPainterPaintable(&BasicElement{Name: "plain"}, nil, shape.R(0, 0, 10, 10), nil)
	if q.Hyperlink() != nil || q.DrillHyperlinks() != nil {
		t.Error("unexpected hyperlinks")
	}
}

func TestBackground(t *testing.T) {
	green := color.RGBA{G: 0xff, A: 0xff}
	red := color.RGBA{R: 0xff, A: 0xff}
	section := &BasicElement{Name: "section", Bg: green}
	elem := &BasicElement{Name: "child", Container: section}

	p := NewPainterPaintable(elem, nil, shape.R(0, 0, 10, 10), nil)
	if p.Background() != color.Color(green) {
		t.Errorf("background %v, want %v", p.Background(), green)
	}

	p = NewPainterPaintable(elem, nil, shape.R(0, 0, 10, 10), &Options{Background: red})
	if p.Background() != color.Color(red) {
		t.Errorf("background %v, want %v", p.Background(), red)
	}

	p = NewPainterPaintable(&BasicElement{Name: "alone"}, nil, shape.R(0, 0, 10, 10), nil)
	if p.Background() != nil {
		t.Errorf("unexpected background %v", p.Background())
	}
	if p.Foreground() != color.Color(color.Black) {
		t.Errorf("foreground %v", p.Foreground())
	}
}

func TestIsFragment(t *testing.T) {
	cases := []struct {
		opt  *Options
		want bool
	}{
		{opt: nil, want: false},
		{opt: &Options{PreferredH: 50}, want: false},
		{opt: &Options{PreferredH: 120}, want: true},
		{opt: &Options{PreferredH: 120, OffsetY: 70}, want: true},
		{opt: &Options{OffsetY: 10}, want: true},
	}
	for i, c := range cases {
		p := NewPainterPaintable(nil, nil, shape.R(0, 0, 100, 50), c.opt)
		if got := p.IsFragment(); got != c.want {
			t.Errorf("%d: IsFragment() = %t, want %t", i, got, c.want)
		}
	}
}

func TestPaint(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	painter := &ShapePainter{Shape: shape.R(0, 0, 1, 1), Fill: blue}
	p := NewPainterPaintable(nil, painter, shape.R(10, 20, 30, 40), &Options{
		Background:  red,
		BorderWidth: 2,
	})

	g := graphics.NewRecorder()
	p.Paint(g)

	if len(g.Ops) != 2 {
		t.Fatalf("got %d operations, want 2", len(g.Ops))
	}
	bg, fg := g.Ops[0], g.Ops[1]

	clip := shape.R(10, 20, 32, 42)
	if !bg.Clipped || bg.Clip != clip || !fg.Clipped || fg.Clip != clip {
		t.Errorf("wrong clip %v / %v", bg.Clip, fg.Clip)
	}
	if bg.Kind != graphics.OpFill || bg.Shape != shape.Shape(shape.R(10, 20, 30, 40)) {
		t.Errorf("wrong background operation %v %v", bg.Kind, bg.Shape)
	}
	if bg.Color != color.Color(red) || fg.Color != color.Color(blue) {
		t.Errorf("wrong colours %v / %v", bg.Color, fg.Color)
	}
	if fg.Shape != shape.Shape(shape.R(0, 0, 30, 40)) {
		t.Errorf("wrong content shape %v", fg.Shape)
	}
	if d := cmp.Diff(matrix.Translate(10, 20), fg.Transform); d != "" {
		t.Errorf("content transform (-want +got):\n%s", d)
	}

	// the graphics state is restored
	if _, clipped := g.Clip(); clipped {
		t.Error("clip not restored")
	}
	if g.Transform() != matrix.Identity {
		t.Error("transform not restored")
	}
}

func TestPaintBuffered(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	painter := &ImagePainter{Image: img}
	bounds := shape.R(0, 0, 8, 8)

	cases := []struct {
		opt      *Options
		buffered bool
	}{
		{opt: nil, buffered: false},
		{opt: &Options{BufferW: 8, BufferH: 8}, buffered: false},
		{opt: &Options{BufferW: 4, BufferH: 4}, buffered: true},
	}
	for i, c := range cases {
		p := NewPainterPaintable(nil, painter, bounds, c.opt)
		g := graphics.NewRecorder()
		p.Paint(g)

		if len(g.Ops) != 1 || g.Ops[0].Kind != graphics.OpDrawImage {
			t.Fatalf("%d: unexpected operations %v", i, g.Ops)
		}
		op := g.Ops[0]
		if op.Dst != bounds {
			t.Errorf("%d: image drawn to %v", i, op.Dst)
		}
		buffered := op.Image != image.Image(img)
		if buffered != c.buffered {
			t.Errorf("%d: buffered = %t, want %t", i, buffered, c.buffered)
		}
		if buffered && op.Image.Bounds() != image.Rect(0, 0, 4, 4) {
			t.Errorf("%d: buffer size %v", i, op.Image.Bounds())
		}
	}
}

func TestRotationTransformer(t *testing.T) {
	p := NewPainterPaintable(nil, nil, shape.R(0, 0, 100, 50), &Options{Rotation: 90})
	tr := p.Transformer()
	if tr.ContentW != 50 || tr.ContentH != 100 {
		t.Fatalf("content size %gx%g", tr.ContentW, tr.ContentH)
	}

	// the top-left corner of the content ends up at the top-right corner
	// of the box
	x, y := tr.Apply(0, 0)
	if x != 100 || y != 0 {
		t.Errorf("Apply(0, 0) = (%g, %g)", x, y)
	}

	for _, pt := range [][2]float64{{0, 0}, {5, 95}, {50, 100}, {12.5, 3}} {
		x, y := tr.Apply(pt[0], pt[1])
		u, v := tr.Inverse(x, y)
		if u != pt[0] || v != pt[1] {
			t.Errorf("round trip of %v gave (%g, %g)", pt, u, v)
		}
	}

	tr = NewPainterPaintable(nil, nil, shape.R(0, 0, 100, 50), nil).Transformer()
	if tr.Matrix() != matrix.Identity {
		t.Errorf("unrotated matrix %v", tr.Matrix())
	}
}

func TestRotationUnsupported(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPainterPaintable(&BasicElement{Name: "box"},
		&ShapePainter{Shape: shape.R(0, 0, 1, 1), Fill: color.Black},
		shape.R(0, 0, 10, 10),
		&Options{Rotation: 45, Logger: log.New(buf, "", 0)})
	p.Paint(graphics.NewNop())

	if !strings.Contains(buf.String(), "cannot be rotated") {
		t.Errorf("missing log message, got %q", buf.String())
	}
	if p.Rotation() != 45 {
		t.Errorf("rotation %g", p.Rotation())
	}

	// text can be rotated by any angle
	buf.Reset()
	q := NewPainterPaintable(&BasicElement{Name: "label"}, &TextPainter{Text: "hello"},
		shape.R(0, 0, 10, 10),
		&Options{Rotation: -45, Logger: log.New(buf, "", 0)})
	q.Paint(graphics.NewNop())
	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}
	if q.Rotation() != 315 {
		t.Errorf("rotation %g", q.Rotation())
	}
}

func TestPage(t *testing.T) {
	elemLink := &hyperlink.Ref{Name: "element"}
	linked := NewLinkedPaintable(&BasicElement{Name: "img", Link: elemLink}, nil,
		shape.R(100, 100, 50, 50), nil)
	linked.SetHyperlink(shape.R(0, 0, 10, 10), &hyperlink.Ref{Name: "corner"})

	plain := NewPainterPaintable(&BasicElement{Name: "text"}, nil, shape.R(0, 0, 50, 50), nil)

	page := NewPage(600, 800)
	page.Add(plain, linked, NewPageBreak(nil))

	cases := []struct {
		x, y float64
		want string
	}{
		{x: 10, y: 10},
		{x: 300, y: 300},
		{x: 105, y: 105, want: "corner"},
		{x: 120, y: 120, want: "element"},
	}
	for _, c := range cases {
		var got string
		if ref := page.HyperlinkAt(c.x, c.y); ref != nil {
			got = ref.Key()
		}
		if got != c.want {
			t.Errorf("HyperlinkAt(%g, %g) = %q, want %q", c.x, c.y, got, c.want)
		}
	}

	type area struct {
		Shape shape.Shape
		Keys  []string
	}
	var got []area
	for s, refs := range page.HyperlinkAreas() {
		got = append(got, area{s, keys(refs)})
	}
	want := []area{
		{shape.R(100, 100, 10, 10), []string{"corner"}},
		{shape.R(100, 100, 50, 50), []string{"element"}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("areas (-want +got):\n%s", d)
	}

	linked.SetLocation(0, 200)
	if ref := page.HyperlinkAt(5, 205); ref == nil || ref.Key() != "corner" {
		t.Errorf("after move: %v", ref)
	}
}

func TestPageBreak(t *testing.T) {
	pb := NewPageBreak(&BasicElement{Name: "pb"})
	pb.SetLocation(10, 20)
	if pb.Bounds() != shape.R(10, 20, 0, 0) {
		t.Errorf("bounds %v", pb.Bounds())
	}
	g := graphics.NewRecorder()
	pb.Paint(g)
	if len(g.Ops) != 0 {
		t.Errorf("page break painted %d operations", len(g.Ops))
	}
}
