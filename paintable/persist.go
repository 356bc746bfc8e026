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
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"seehuhn.de/go/reportpaint/chart"
	"seehuhn.de/go/reportpaint/format"
	"seehuhn.de/go/reportpaint/graphics"
	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/shape"
)

// formatVersion is the version of the document written by [Encode].
const formatVersion = 1

// Paintable kinds in the encoded representation.
const (
	kindPainter   = "painter"
	kindLinked    = "linked"
	kindChart     = "chart"
	kindPageBreak = "pagebreak"
)

var (
	// ErrUnknownKind is returned by [Decode] for documents describing an
	// unknown type of paintable.
	ErrUnknownKind = errors.New("unknown paintable kind")

	// ErrUnknownPainter is returned by [Encode] and [Decode] for painters
	// which have no registered codec.
	ErrUnknownPainter = errors.New("unknown painter kind")
)

// VersionError is returned by [Decode] for documents written by an
// incompatible version of this package.
type VersionError struct {
	Version int
}

func (err *VersionError) Error() string {
	return fmt.Sprintf("unsupported paintable format version %d", err.Version)
}

// ShapeIndexError is returned by [Decode] if a link refers to a shape
// which is not present in the document.
type ShapeIndexError struct {
	Index, N int
}

func (err *ShapeIndexError) Error() string {
	return fmt.Sprintf("link shape %d out of range (%d shapes)", err.Index, err.N)
}

// KindedPainter is implemented by painters which can be persisted.
type KindedPainter interface {
	Painter

	// PainterKind returns the name under which the codec for the
	// painter is registered.
	PainterKind() string
}

// PainterCodec converts painters of one kind to and from JSON.
type PainterCodec struct {
	Encode func(Painter) ([]byte, error)
	Decode func([]byte) (Painter, error)
}

var (
	codecMu sync.RWMutex
	codecs  = map[string]PainterCodec{}
)

// RegisterPainter registers the codec for painters of the given kind.
// Registering a kind twice replaces the earlier codec.
func RegisterPainter(kind string, codec PainterCodec) {
	codecMu.Lock()
	defer codecMu.Unlock()
	codecs[kind] = codec
}

func lookupCodec(kind string) (PainterCodec, bool) {
	codecMu.RLock()
	defer codecMu.RUnlock()
	c, ok := codecs[kind]
	return c, ok
}

type document struct {
	Version int    `json:"version"`
	Kind    string `json:"kind"`
	Element string `json:"element,omitempty"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`

	Rotation    float64 `json:"rotation,omitempty"`
	OffsetX     float64 `json:"offsetX,omitempty"`
	OffsetY     float64 `json:"offsetY,omitempty"`
	PreferredW  float64 `json:"preferredW,omitempty"`
	PreferredH  float64 `json:"preferredH,omitempty"`
	BufferW     float64 `json:"bufferW,omitempty"`
	BufferH     float64 `json:"bufferH,omitempty"`
	BorderWidth float64 `json:"borderWidth,omitempty"`

	Background string `json:"background,omitempty"`
	Foreground string `json:"foreground,omitempty"`

	Hyperlink *hyperlink.Ref   `json:"hyperlink,omitempty"`
	Drills    []*hyperlink.Ref `json:"drills,omitempty"`

	// Shapes holds every distinct link area once.  Links and DrillLinks
	// refer to it by index, so that an area carrying both a hyperlink and
	// drill hyperlinks is restored as a single key.
	Shapes     []*shape.Encoded `json:"shapes,omitempty"`
	Links      []linkJSON       `json:"links,omitempty"`
	DrillLinks []drillJSON      `json:"drillLinks,omitempty"`

	Painter *painterJSON `json:"painter,omitempty"`
}

type linkJSON struct {
	Shape int            `json:"shape"`
	Ref   *hyperlink.Ref `json:"ref"`
}

type drillJSON struct {
	Shape int              `json:"shape"`
	Refs  []*hyperlink.Ref `json:"refs"`
}

type painterJSON struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Encode writes p to w.
//
// The element of the paintable is stored by its ID only, and must be
// supplied again when decoding.  Colours are only written if they were
// set explicitly.
func Encode(w io.Writer, p Paintable) error {
	doc := &document{Version: formatVersion}
	if elem := p.Element(); elem != nil {
		doc.Element = elem.ID()
	}

	var base *PainterPaintable
	var linked *LinkedPaintable
	switch p := p.(type) {
	case *PageBreak:
		doc.Kind = kindPageBreak
		doc.X, doc.Y = p.x, p.y
	case *PainterPaintable:
		doc.Kind = kindPainter
		base = p
	case *LinkedPaintable:
		doc.Kind = kindLinked
		base, linked = &p.PainterPaintable, p
	case *ChartPaintable:
		doc.Kind = kindChart
		base, linked = &p.PainterPaintable, &p.LinkedPaintable
	default:
		return fmt.Errorf("%w: %T", ErrUnknownKind, p)
	}

	if base != nil {
		err := encodeBase(doc, base)
		if err != nil {
			return err
		}
	}
	if linked != nil {
		err := encodeLinks(doc, linked)
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(w)
	return enc.Encode(doc)
}

func encodeBase(doc *document, p *PainterPaintable) error {
	doc.X, doc.Y, doc.W, doc.H = p.x, p.y, p.w, p.h
	doc.Rotation = p.rotation
	doc.OffsetX, doc.OffsetY = p.offX, p.offY
	doc.PreferredW, doc.PreferredH = p.prefW, p.prefH
	doc.BufferW, doc.BufferH = p.bufW, p.bufH
	doc.BorderWidth = p.border
	if p.bgSet {
		doc.Background = format.ColorString(p.bg)
	}
	doc.Foreground = format.ColorString(p.fg)
	doc.Hyperlink = p.link
	doc.Drills = p.drills

	if p.painter == nil {
		return nil
	}
	kp, ok := p.painter.(KindedPainter)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnknownPainter, p.painter)
	}
	kind := kp.PainterKind()
	codec, ok := lookupCodec(kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPainter, kind)
	}
	data, err := codec.Encode(p.painter)
	if err != nil {
		return fmt.Errorf("painter %q: %w", kind, err)
	}
	doc.Painter = &painterJSON{Kind: kind, Data: data}
	return nil
}

func encodeLinks(doc *document, p *LinkedPaintable) error {
	var keys []shape.Shape
	index := func(s shape.Shape) (int, error) {
		for i, k := range keys {
			if shape.Equal(k, s) {
				return i, nil
			}
		}
		enc, err := shape.Encode(s)
		if err != nil {
			return 0, err
		}
		keys = append(keys, s)
		doc.Shapes = append(doc.Shapes, enc)
		return len(keys) - 1, nil
	}

	for _, l := range p.links {
		i, err := index(l.shape)
		if err != nil {
			return err
		}
		doc.Links = append(doc.Links, linkJSON{Shape: i, Ref: l.ref})
	}
	for _, d := range p.drills {
		i, err := index(d.shape)
		if err != nil {
			return err
		}
		doc.DrillLinks = append(doc.DrillLinks, drillJSON{Shape: i, Refs: d.refs})
	}
	return nil
}

// Decode reads a paintable written by [Encode].
//
// The element is looked up by calling resolve with the stored element ID.
// If resolve is nil, or if no element ID was stored, the paintable has no
// element.  Backgrounds which were not set explicitly are derived again
// from the element and its enclosing elements.
func Decode(r io.Reader, resolve func(id string) (Element, error)) (Paintable, error) {
	doc := &document{}
	err := json.NewDecoder(r).Decode(doc)
	if err != nil {
		return nil, err
	}
	if doc.Version != formatVersion {
		return nil, &VersionError{Version: doc.Version}
	}

	var elem Element
	if doc.Element != "" && resolve != nil {
		elem, err = resolve(doc.Element)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", doc.Element, err)
		}
	}

	if doc.Kind == kindPageBreak {
		return &PageBreak{elem: elem, x: doc.X, y: doc.Y}, nil
	}

	var painter Painter
	if doc.Painter != nil {
		codec, ok := lookupCodec(doc.Painter.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPainter, doc.Painter.Kind)
		}
		painter, err = codec.Decode(doc.Painter.Data)
		if err != nil {
			return nil, fmt.Errorf("painter %q: %w", doc.Painter.Kind, err)
		}
	}

	opt := &Options{
		Rotation:    doc.Rotation,
		OffsetX:     doc.OffsetX,
		OffsetY:     doc.OffsetY,
		PreferredW:  doc.PreferredW,
		PreferredH:  doc.PreferredH,
		BufferW:     doc.BufferW,
		BufferH:     doc.BufferH,
		BorderWidth: doc.BorderWidth,
	}
	opt.Background, err = format.ParseColor(doc.Background)
	if err != nil {
		return nil, err
	}
	opt.Foreground, err = format.ParseColor(doc.Foreground)
	if err != nil {
		return nil, err
	}
	bounds := shape.R(doc.X, doc.Y, doc.W, doc.H)

	var res Paintable
	var base *PainterPaintable
	var linked *LinkedPaintable
	switch doc.Kind {
	case kindPainter:
		base = &PainterPaintable{}
		res = base
	case kindLinked:
		p := &LinkedPaintable{}
		base, linked, res = &p.PainterPaintable, p, p
	case kindChart:
		cp, ok := painter.(chart.Painter)
		if painter != nil && !ok {
			return nil, fmt.Errorf("painter %T cannot paint charts", painter)
		}
		p := &ChartPaintable{chart: cp}
		base, linked, res = &p.PainterPaintable, &p.LinkedPaintable, p
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, doc.Kind)
	}

	base.init(elem, painter, bounds, opt)
	base.link = doc.Hyperlink
	base.drills = doc.Drills

	if linked != nil {
		keys := make([]shape.Shape, len(doc.Shapes))
		for i, enc := range doc.Shapes {
			keys[i], err = shape.Decode(enc)
			if err != nil {
				return nil, err
			}
		}
		key := func(i int) (shape.Shape, error) {
			if i < 0 || i >= len(keys) {
				return nil, &ShapeIndexError{Index: i, N: len(keys)}
			}
			return keys[i], nil
		}
		for _, l := range doc.Links {
			s, err := key(l.Shape)
			if err != nil {
				return nil, err
			}
			linked.SetHyperlink(s, l.Ref)
		}
		for _, d := range doc.DrillLinks {
			s, err := key(d.Shape)
			if err != nil {
				return nil, err
			}
			linked.SetDrillHyperlinks(s, d.Refs)
		}
	}
	return res, nil
}

// PainterKind implements the [KindedPainter] interface.
func (obj *TextPainter) PainterKind() string { return "text" }

// PainterKind implements the [KindedPainter] interface.
func (obj *ImagePainter) PainterKind() string { return "image" }

// PainterKind implements the [KindedPainter] interface.
func (obj *ShapePainter) PainterKind() string { return "shape" }

type textJSON struct {
	Text  string           `json:"text"`
	Font  fontJSON         `json:"font"`
	Align format.Alignment `json:"align,omitempty"`
}

type fontJSON struct {
	Name   string  `json:"name,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Bold   bool    `json:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty"`
}

type imageJSON struct {
	PNG []byte `json:"png,omitempty"`
}

type shapeJSON struct {
	Shape     *shape.Encoded `json:"shape,omitempty"`
	Fill      string         `json:"fill,omitempty"`
	Stroke    string         `json:"stroke,omitempty"`
	LineWidth float64        `json:"lineWidth,omitempty"`
}

type staticChartJSON struct {
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Bounds  [4]float64   `json:"bounds"`
	Visuals []visualJSON `json:"visuals,omitempty"`
	Colors  []string     `json:"colors,omitempty"`
}

type visualJSON struct {
	Row   int            `json:"row"`
	Col   int            `json:"col"`
	Kind  chart.Kind     `json:"kind"`
	Shape *shape.Encoded `json:"shape"`
}

func init() {
	RegisterPainter("text", PainterCodec{Encode: encodeText, Decode: decodeText})
	RegisterPainter("image", PainterCodec{Encode: encodeImage, Decode: decodeImage})
	RegisterPainter("shape", PainterCodec{Encode: encodeShape, Decode: decodeShape})
	RegisterPainter((*chart.StaticPainter)(nil).PainterKind(),
		PainterCodec{Encode: encodeStaticChart, Decode: decodeStaticChart})
}

func encodeText(p Painter) ([]byte, error) {
	obj := p.(*TextPainter)
	return json.Marshal(&textJSON{
		Text:  obj.Text,
		Font:  fontJSON(obj.Font),
		Align: obj.Align,
	})
}

func decodeText(data []byte) (Painter, error) {
	var dec textJSON
	err := json.Unmarshal(data, &dec)
	if err != nil {
		return nil, err
	}
	return &TextPainter{
		Text:  dec.Text,
		Font:  graphics.Font(dec.Font),
		Align: dec.Align,
	}, nil
}

func encodeImage(p Painter) ([]byte, error) {
	obj := p.(*ImagePainter)
	enc := &imageJSON{}
	if obj.Image != nil {
		buf := &bytes.Buffer{}
		err := png.Encode(buf, obj.Image)
		if err != nil {
			return nil, err
		}
		enc.PNG = buf.Bytes()
	}
	return json.Marshal(enc)
}

func decodeImage(data []byte) (Painter, error) {
	var dec imageJSON
	err := json.Unmarshal(data, &dec)
	if err != nil {
		return nil, err
	}
	res := &ImagePainter{}
	if len(dec.PNG) > 0 {
		var img image.Image
		img, err = png.Decode(bytes.NewReader(dec.PNG))
		if err != nil {
			return nil, err
		}
		res.Image = img
	}
	return res, nil
}

func encodeShape(p Painter) ([]byte, error) {
	obj := p.(*ShapePainter)
	enc := &shapeJSON{
		Fill:      format.ColorString(obj.Fill),
		Stroke:    format.ColorString(obj.Stroke),
		LineWidth: obj.LineWidth,
	}
	if obj.Shape != nil {
		s, err := shape.Encode(obj.Shape)
		if err != nil {
			return nil, err
		}
		enc.Shape = s
	}
	return json.Marshal(enc)
}

func decodeShape(data []byte) (Painter, error) {
	var dec shapeJSON
	err := json.Unmarshal(data, &dec)
	if err != nil {
		return nil, err
	}
	res := &ShapePainter{LineWidth: dec.LineWidth}
	if dec.Shape != nil {
		res.Shape, err = shape.Decode(dec.Shape)
		if err != nil {
			return nil, err
		}
	}
	res.Fill, err = format.ParseColor(dec.Fill)
	if err != nil {
		return nil, err
	}
	res.Stroke, err = format.ParseColor(dec.Stroke)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func encodeStaticChart(p Painter) ([]byte, error) {
	obj := p.(*chart.StaticPainter)
	b := obj.Layout.Bounds
	enc := &staticChartJSON{
		Width:  obj.Width,
		Height: obj.Height,
		Bounds: [4]float64{b.X, b.Y, b.W, b.H},
	}
	for _, v := range obj.Layout.Visuals {
		s, err := shape.Encode(v.Shape)
		if err != nil {
			return nil, err
		}
		enc.Visuals = append(enc.Visuals, visualJSON{Row: v.Row, Col: v.Col, Kind: v.Kind, Shape: s})
	}
	for _, c := range obj.Colors {
		enc.Colors = append(enc.Colors, format.ColorString(c))
	}
	return json.Marshal(enc)
}

func decodeStaticChart(data []byte) (Painter, error) {
	var dec staticChartJSON
	err := json.Unmarshal(data, &dec)
	if err != nil {
		return nil, err
	}
	res := &chart.StaticPainter{
		Width:  dec.Width,
		Height: dec.Height,
	}
	res.Layout.Bounds = shape.R(dec.Bounds[0], dec.Bounds[1], dec.Bounds[2], dec.Bounds[3])
	for _, v := range dec.Visuals {
		s, err := shape.Decode(v.Shape)
		if err != nil {
			return nil, err
		}
		res.Layout.Visuals = append(res.Layout.Visuals, chart.Visual{Row: v.Row, Col: v.Col, Kind: v.Kind, Shape: s})
	}
	for _, s := range dec.Colors {
		var c color.Color
		c, err = format.ParseColor(s)
		if err != nil {
			return nil, err
		}
		res.Colors = append(res.Colors, c)
	}
	return res, nil
}
