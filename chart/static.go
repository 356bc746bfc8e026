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


package chart

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/reportpaint/graphics"
	"seehuhn.de/go/reportpaint/shape"
)

// StaticPainter paints a chart whose geometry was computed in advance.
//
// The geometry is given for the preferred size of the chart.  When the
// chart is painted at a different size or position, the geometry is
// scaled and moved accordingly.
type StaticPainter struct {
	Width, Height float64
	Layout        Plot

	// Colors are used to fill the visual elements, cycling through the
	// list by column.  If the list is empty, black is used.
	Colors []color.Color

	plot  *Plot
	paint int
}

// PreferredSize implements the [Painter] interface.
func (obj *StaticPainter) PreferredSize() (w, h float64) {
	return obj.Width, obj.Height
}

// IsScalable implements the [Painter] interface.
func (obj *StaticPainter) IsScalable() bool {
	return true
}

// Paint implements the [Painter] interface.
func (obj *StaticPainter) Paint(g graphics.Graphics, x, y, w, h float64) {
	obj.paint++

	sx, sy := 1.0, 1.0
	if obj.Width > 0 {
		sx = w / obj.Width
	}
	if obj.Height > 0 {
		sy = h / obj.Height
	}
	m := matrix.Scale(sx, sy).Mul(matrix.Translate(x, y))

	plot := &Plot{
		Bounds:  shape.Transform(obj.Layout.Bounds, m).Bounds(),
		Visuals: make([]Visual, len(obj.Layout.Visuals)),
	}
	for i, v := range obj.Layout.Visuals {
		v.Shape = shape.Transform(v.Shape, m)
		plot.Visuals[i] = v

		g.SetColor(obj.color(v.Col))
		switch v.Kind {
		case KindLine:
			g.Stroke(v.Shape, 1)
		default:
			g.Fill(v.Shape)
		}
	}
	obj.plot = plot
}

func (obj *StaticPainter) color(col int) color.Color {
	if len(obj.Colors) == 0 || col < 0 {
		return color.Black
	}
	return obj.Colors[col%len(obj.Colors)]
}

// Plot implements the [Painter] interface.
// The result describes the most recent call to Paint.
func (obj *StaticPainter) Plot() *Plot {
	return obj.plot
}

// PaintCount returns the number of calls to Paint so far.
func (obj *StaticPainter) PaintCount() int {
	return obj.paint
}

// PainterKind returns the name under which static charts are persisted.
func (obj *StaticPainter) PainterKind() string {
	return "chart.static"
}
