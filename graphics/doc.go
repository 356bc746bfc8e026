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


// Package graphics provides the drawing surfaces used to paint report
// content.
//
// All surfaces implement the [Graphics] interface.  [Raster] paints into
// an in-memory image, [Nop] only tracks the graphics state, and
// [Recorder] remembers all drawing operations so that they can be
// inspected or replayed using [Recorder.ApplyTo].
//
// Coordinates use a y axis which points downwards.  The current
// transformation matrix maps user coordinates to device coordinates.
package graphics
