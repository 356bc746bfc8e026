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

package region

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Class names used in the "class" attribute.
const (
	classRectangle = "rectangle"
	classEllipse   = "ellipse"
	classPolygon   = "polygon"
	classLine      = "line"
)

// MalformedError is returned when a region element cannot be parsed.
type MalformedError struct {
	Attr  string
	Value string
	Err   error
}

func (err *MalformedError) Error() string {
	msg := "malformed region"
	if err.Attr != "" {
		msg += fmt.Sprintf(" attribute %s=%q", err.Attr, err.Value)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}

// ErrNoRegion is returned by [ReadXML] if the input contains no region
// element.
var ErrNoRegion = errors.New("no region element found")

// WriteXML writes r as a single "region" element.
//
// Coordinates of polygons are written as comma-separated lists, so that
// very large polygons do not run into limits on attribute counts.
// Areas are not persisted and produce no output.
func WriteXML(w io.Writer, r Region) error {
	enc := xml.NewEncoder(w)
	err := encodeRegion(enc, r)
	if err != nil {
		return err
	}
	return enc.Flush()
}

// WriteAll writes all regions, wrapped in a "regions" element.
func WriteAll(w io.Writer, regions []Region) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	start := xml.StartElement{Name: xml.Name{Local: "regions"}}
	err := enc.EncodeToken(start)
	if err != nil {
		return err
	}
	for _, r := range regions {
		err = encodeRegion(enc, r)
		if err != nil {
			return err
		}
	}
	err = enc.EncodeToken(start.End())
	if err != nil {
		return err
	}
	return enc.Flush()
}

func encodeRegion(enc *xml.Encoder, r Region) error {
	var attrs []xml.Attr
	add := func(name, value string) {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	}

	add("name", r.Name())
	switch r := r.(type) {
	case *Rectangle:
		add("class", classRectangle)
		add("x", formatFloat(r.X))
		add("y", formatFloat(r.Y))
		add("width", formatFloat(r.W))
		add("height", formatFloat(r.H))
	case *Ellipse:
		add("class", classEllipse)
		add("x", formatFloat(r.X))
		add("y", formatFloat(r.Y))
		add("width", formatFloat(r.W))
		add("height", formatFloat(r.H))
	case *Polygon:
		n := r.N()
		add("class", classPolygon)
		add("xs", joinInts(r.Xs[:n]))
		add("ys", joinInts(r.Ys[:n]))
		add("n", strconv.Itoa(n))
		if r.ScaleFactor > 1 {
			add("scale", strconv.Itoa(r.ScaleFactor))
		}
		if r.Arc {
			add("arc", "true")
		}
	case *Line:
		add("class", classLine)
		add("x1", formatFloat(r.X1))
		add("y1", formatFloat(r.Y1))
		add("x2", formatFloat(r.X2))
		add("y2", formatFloat(r.Y2))
	default:
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: "region"}, Attr: attrs}
	err := enc.EncodeToken(start)
	if err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

// ReadXML reads the first "region" element from r.
func ReadXML(r io.Reader) (Region, error) {
	var res Region
	err := scan(r, func(reg Region) bool {
		res = reg
		return false
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNoRegion
	}
	return res, nil
}

// ReadAll reads all "region" elements from r, at any nesting depth.
func ReadAll(r io.Reader) ([]Region, error) {
	var res []Region
	err := scan(r, func(reg Region) bool {
		res = append(res, reg)
		return true
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func scan(r io.Reader, yield func(Region) bool) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "region" {
			continue
		}
		var elem regionElement
		err = dec.DecodeElement(&elem, &start)
		if err != nil {
			return err
		}
		reg, err := elem.region()
		if err != nil {
			return err
		}
		if !yield(reg) {
			return nil
		}
	}
}

type regionElement struct {
	Name   string `xml:"name,attr"`
	Class  string `xml:"class,attr"`
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	X1     string `xml:"x1,attr"`
	Y1     string `xml:"y1,attr"`
	X2     string `xml:"x2,attr"`
	Y2     string `xml:"y2,attr"`
	Xs     string `xml:"xs,attr"`
	Ys     string `xml:"ys,attr"`
	N      string `xml:"n,attr"`
	Scale  string `xml:"scale,attr"`
	Arc    string `xml:"arc,attr"`
}

func (e *regionElement) region() (Region, error) {
	p := &attrParser{}
	switch e.Class {
	case classRectangle:
		r := NewRectangle(e.Name,
			p.float("x", e.X), p.float("y", e.Y),
			p.float("width", e.Width), p.float("height", e.Height))
		return r, p.err
	case classEllipse:
		r := NewEllipse(e.Name,
			p.float("x", e.X), p.float("y", e.Y),
			p.float("width", e.Width), p.float("height", e.Height))
		return r, p.err
	case classLine:
		r := NewLine(e.Name,
			p.float("x1", e.X1), p.float("y1", e.Y1),
			p.float("x2", e.X2), p.float("y2", e.Y2))
		return r, p.err
	case classPolygon:
		xs := p.ints("xs", e.Xs)
		ys := p.ints("ys", e.Ys)
		n := p.int("n", e.N)
		scale := 1
		if e.Scale != "" {
			scale = p.int("scale", e.Scale)
		}
		if p.err != nil {
			return nil, p.err
		}
		if n < 0 || n > len(xs) || n > len(ys) {
			return nil, &MalformedError{
				Attr:  "n",
				Value: e.N,
				Err:   fmt.Errorf("only %d/%d coordinates given", len(xs), len(ys)),
			}
		}
		poly := NewScaledPolygon(e.Name, xs[:n], ys[:n], scale)
		poly.Arc = e.Arc == "true"
		return poly, nil
	default:
		return nil, &MalformedError{Attr: "class", Value: e.Class, Err: errors.New("unknown region class")}
	}
}

// attrParser converts attribute values, remembering the first error.
type attrParser struct {
	err error
}

func (p *attrParser) float(name, value string) float64 {
	if p.err != nil {
		return 0
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		p.err = &MalformedError{Attr: name, Value: value, Err: err}
	}
	return x
}

func (p *attrParser) int(name, value string) int {
	if p.err != nil {
		return 0
	}
	x, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		p.err = &MalformedError{Attr: name, Value: value, Err: err}
	}
	return x
}

func (p *attrParser) ints(name, value string) []int {
	if p.err != nil || strings.TrimSpace(value) == "" {
		return nil
	}
	fields := strings.Split(value, ",")
	res := make([]int, len(fields))
	for i, f := range fields {
		x, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			p.err = &MalformedError{Attr: name, Value: value, Err: err}
			return nil
		}
		res[i] = x
	}
	return res
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func joinInts(xs []int) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
	return b.String()
}
