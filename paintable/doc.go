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


// Package paintable implements the renderable units of a report page.
//
// A paintable binds a report element to a rectangle on the page and knows
// how to paint the element's content onto a [graphics.Graphics] surface.
// The content itself is produced by a [Painter].
//
// Besides painting, paintables map points on the page to hyperlinks.
// [PainterPaintable] carries the hyperlink of the whole element.
// [LinkedShapePainterPaintable] adds hyperlinks for sub-areas of the
// content, as used by image maps, and [ChartPainterPaintable] derives such
// sub-area hyperlinks from the data behind a chart.
//
// Paintables can be written to and read from a JSON representation, see
// [Encode] and [Decode].
package paintable
