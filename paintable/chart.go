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
	"seehuhn.de/go/reportpaint/chart"
	"seehuhn.de/go/reportpaint/graphics"
	"seehuhn.de/go/reportpaint/hyperlink"
	"seehuhn.de/go/reportpaint/param"
	"seehuhn.de/go/reportpaint/shape"
)

// ChartPaintable shows a chart, with hyperlinks attached to the visual
// elements of the plot.
//
// Link shapes are stored in content coordinates, i.e. in the coordinate
// system of the unrotated chart.  Hit testing maps points back through
// the rotation of the paintable.
type ChartPaintable struct {
	LinkedPaintable

	chart  chart.Painter
	data   chart.DataSet
	info   *chart.Info
	params param.Lookup
}

// NewChartPaintable creates a paintable for a chart and attaches the
// hyperlinks found in data to the visual elements of the chart.
//
// If any cell of data carries a hyperlink, the chart is painted once onto
// a [graphics.Nop] surface, in order to obtain the geometry of the plot.
// The values in params are merged into all hyperlinks.
func NewChartPaintable(elem Element, painter chart.Painter, data chart.DataSet, info *chart.Info,
	bounds shape.Rect, params param.Lookup, opt *Options) *ChartPaintable {
	p := &ChartPaintable{
		chart:  painter,
		data:   data,
		info:   info,
		params: params,
	}
	p.init(elem, painter, bounds, opt)
	p.attachLinks()
	return p
}

// Chart returns the chart painter.
func (p *ChartPaintable) Chart() chart.Painter {
	return p.chart
}

// DataSet returns the data shown in the chart.
func (p *ChartPaintable) DataSet() chart.DataSet {
	return p.data
}

// containsLink reports whether any hyperlink is attached to the chart or
// any of its cells.
func (p *ChartPaintable) containsLink() bool {
	if p.info != nil && p.info.Hyperlink != nil {
		return true
	}
	if p.data == nil {
		return false
	}
	for col := range p.data.ColCount() {
		for row := range p.data.RowCount() {
			if p.data.Hyperlink(row, col) != nil || len(p.data.DrillHyperlinks(row, col)) > 0 {
				return true
			}
		}
	}
	return false
}

func (p *ChartPaintable) attachLinks() {
	if p.chart == nil || !p.containsLink() {
		return
	}

	t, _ := p.layout()
	p.chart.Paint(graphics.NewNop(), 0, 0, t.ContentW, t.ContentH)
	plot := p.chart.Plot()
	if plot == nil {
		return
	}

	if p.data != nil {
		for _, v := range plot.Visuals {
			if v.Shape == nil {
				continue
			}
			link, drills := p.cellLinks(v)
			if link != nil {
				p.SetHyperlink(v.Shape, p.merged(link))
			}
			var merged []*hyperlink.Ref
			for _, d := range drills {
				if m := p.merged(d); m != nil {
					merged = append(merged, m)
				}
			}
			p.SetDrillHyperlinks(v.Shape, merged)
		}
	}

	// The plot area is registered last, so that the visual elements inside
	// it take precedence.
	if p.info != nil && p.info.Hyperlink != nil && !plot.Bounds.IsEmpty() {
		p.SetHyperlink(plot.Bounds, p.merged(p.info.Hyperlink))
	}
}

// cellLinks finds the hyperlinks for a visual element.
//
// Derived columns without links of their own use the links of the column
// they were computed from.  Visual elements of map charts fall back to
// the geographic column of their kind.
func (p *ChartPaintable) cellLinks(v chart.Visual) (*hyperlink.Ref, []*hyperlink.Ref) {
	if v.Row < 0 || v.Row >= p.data.RowCount() || v.Col < 0 || v.Col >= p.data.ColCount() {
		return nil, nil
	}
	if p.ignored(v) {
		return nil, nil
	}

	link, drills := p.links(v.Row, v.Col)
	if link != nil || len(drills) > 0 {
		return link, drills
	}

	if base, ok := chart.BaseName(p.data.Header(v.Col)); ok {
		if col := chart.ColumnIndex(p.data, base); col >= 0 {
			link, drills = p.links(v.Row, col)
			if link != nil || len(drills) > 0 {
				return link, drills
			}
		}
	}

	if field := p.geoField(v.Kind); field != "" {
		if col := chart.ColumnIndex(p.data, field); col >= 0 && col != v.Col {
			return p.links(v.Row, col)
		}
	}
	return nil, nil
}

func (p *ChartPaintable) links(row, col int) (*hyperlink.Ref, []*hyperlink.Ref) {
	return p.data.Hyperlink(row, col), p.data.DrillHyperlinks(row, col)
}

// bothGeoFields reports whether a map chart has both point and polygon
// fields bound.
func (p *ChartPaintable) bothGeoFields() bool {
	return p.info != nil && p.info.GeoPointField != "" && p.info.GeoPolygonField != ""
}

// ignored reports whether a visual element must not receive links from its
// column.  This is the case for polygons tied to the point field of a map
// chart, and vice versa, when both fields are bound.
func (p *ChartPaintable) ignored(v chart.Visual) bool {
	if !p.bothGeoFields() {
		return false
	}
	header := p.data.Header(v.Col)
	switch v.Kind {
	case chart.KindGeoPolygon:
		return header == p.info.GeoPointField
	case chart.KindGeoPoint:
		return header == p.info.GeoPolygonField
	}
	return false
}

// geoField returns the name of the geographic column which provides
// links for visual elements of the given kind.
func (p *ChartPaintable) geoField(kind chart.Kind) string {
	if p.info == nil {
		return ""
	}
	own, other := "", ""
	switch kind {
	case chart.KindGeoPoint:
		own, other = p.info.GeoPointField, p.info.GeoPolygonField
	case chart.KindGeoPolygon:
		own, other = p.info.GeoPolygonField, p.info.GeoPointField
	default:
		return ""
	}
	if own != "" {
		return own
	}
	if p.bothGeoFields() {
		return ""
	}
	return other
}

// merged returns a copy of ref with the chart parameters merged in.
// Lookup errors are logged, and result in a nil hyperlink.
func (p *ChartPaintable) merged(ref *hyperlink.Ref) *hyperlink.Ref {
	res, err := ref.TryMergeParameters(p.params, nil)
	if err != nil {
		p.log().Printf("chart %s: cannot merge parameters into %s: %v", p.id(), ref, err)
		return nil
	}
	return res
}

// HyperlinkAt returns the hyperlink at the given point, or nil.
// The point is given relative to the top-left corner of the paintable,
// and is mapped into content coordinates before the link shapes are
// searched.
func (p *ChartPaintable) HyperlinkAt(x, y float64) *hyperlink.Ref {
	u, v := p.localToContent(x, y)
	return p.LinkedPaintable.HyperlinkAt(u, v)
}

// HyperlinksAt returns all hyperlinks at the given point, or nil.
// The point is mapped as for [ChartPaintable.HyperlinkAt].
func (p *ChartPaintable) HyperlinksAt(x, y float64) []*hyperlink.Ref {
	u, v := p.localToContent(x, y)
	return p.LinkedPaintable.HyperlinksAt(u, v)
}
