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

// Package shape implements the geometric primitives used for hit-testing
// on rendered report pages.
//
// All coordinates are screen coordinates: the x axis points to the right
// and the y axis points down.  Every shape reports an axis-aligned bounding
// box ([Shape.Bounds]), a containment test for points ([Shape.Contains]),
// an intersection test for rectangles ([Shape.Intersects]) and an outline
// for painting ([Shape.Path]).
//
// Intersection tests never fail: a query rectangle with non-positive width
// or height intersects nothing.
package shape
