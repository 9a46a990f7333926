/*
 * Nuts docket
 * Copyright (C) 2026. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package capture

import (
	"encoding/base64"
	"errors"
)

// Point is a position on the surface in logical (unscaled) coordinates
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Stroke is a single pen movement, from pen down to pen up
type Stroke []Point

// Capture is a drawing surface on which an approver places a signature. Implementations wrap a concrete
// canvas; the signing session only depends on this contract.
type Capture interface {
	// Clear erases all strokes. After Clear, IsEmpty returns true.
	Clear()
	// IsEmpty is true when no strokes were drawn since construction or the last Clear.
	IsEmpty() bool
	// Lock stops the surface from accepting new strokes. Drawn strokes stay visible.
	Lock()
	// Unlock accepts new strokes again.
	Unlock()
	// ExportImage returns the drawn content as a PNG. The result for an empty surface is implementation specific.
	ExportImage() ([]byte, error)
}

// Drawer is implemented by surfaces which take strokes from a remote pointer device
type Drawer interface {
	AddStroke(stroke Stroke) error
}

// Resizer is implemented by surfaces which keep a resolution. Resizing re-initializes the surface and
// clears everything drawn on it.
type Resizer interface {
	Resize(width, height int, ratio float64) error
}

// ErrLocked is returned when strokes are added to a locked surface
var ErrLocked = errors.New("signature surface is locked")

// ErrEmpty is returned when content is requested from a surface without strokes
var ErrEmpty = errors.New("signature surface is empty")

// ErrInvalidSurface is returned for non-positive or oversized surface dimensions
var ErrInvalidSurface = errors.New("invalid surface dimensions")

// ErrSurfaceFull is returned when a stroke exceeds the amount of points a surface holds
var ErrSurfaceFull = errors.New("signature surface is full")

// DataURL encodes a PNG as a data URL, the format browsers use for canvas exports
func DataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
