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
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/vector"
)

// MaxSurfacePixels bounds the raster of a Pad, width and height multiplied by the squared pixel ratio
const MaxSurfacePixels = 4096 * 4096

// DefaultMaxPoints is the amount of points a Pad holds when PadConfig.MaxPoints is not set
const DefaultMaxPoints = 20000

// PadConfig holds the drawing properties of a Pad
type PadConfig struct {
	Width    int
	Height   int
	Ratio    float64
	PenWidth float32
	// MaxPoints caps the points of all strokes together
	MaxPoints int
}

// DefaultPadConfig returns the surface properties used when nothing is configured
func DefaultPadConfig() PadConfig {
	return PadConfig{
		Width:     600,
		Height:    200,
		Ratio:     1,
		PenWidth:  2.5,
		MaxPoints: DefaultMaxPoints,
	}
}

// Pad is a raster signature surface. Strokes are kept as vectors and rasterized on export, on a white
// background like the browser signature pad.
type Pad struct {
	mu      sync.Mutex
	config  PadConfig
	strokes []Stroke
	points  int
	locked  bool
}

var _ Capture = (*Pad)(nil)
var _ Resizer = (*Pad)(nil)
var _ Drawer = (*Pad)(nil)

var (
	background = color.White
	ink        = color.Black
)

// NewPad creates an empty, unlocked Pad. Invalid dimensions fall back to the defaults.
func NewPad(config PadConfig) *Pad {
	defaults := DefaultPadConfig()
	if config.Ratio < 1 {
		config.Ratio = 1
	}
	if !fits(config.Width, config.Height, config.Ratio) {
		config.Width, config.Height, config.Ratio = defaults.Width, defaults.Height, defaults.Ratio
	}
	if config.MaxPoints <= 0 {
		config.MaxPoints = defaults.MaxPoints
	}
	if config.PenWidth <= 0 {
		config.PenWidth = defaults.PenWidth
	}
	return &Pad{config: config}
}

// AddStroke draws a stroke. Points outside the surface are clamped to its border, a stroke without points is ignored.
// A stroke that would take the pad over its point budget is rejected with ErrSurfaceFull.
func (p *Pad) AddStroke(stroke Stroke) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.locked {
		return ErrLocked
	}
	if len(stroke) == 0 {
		return nil
	}
	if p.points+len(stroke) > p.config.MaxPoints {
		return errors.Wrapf(ErrSurfaceFull, "%d points drawn, stroke has %d", p.points, len(stroke))
	}
	clamped := make(Stroke, len(stroke))
	for i, pt := range stroke {
		clamped[i] = Point{
			X: clamp(pt.X, float32(p.config.Width)),
			Y: clamp(pt.Y, float32(p.config.Height)),
		}
	}
	p.strokes = append(p.strokes, clamped)
	p.points += len(clamped)
	return nil
}

func (p *Pad) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.strokes = nil
	p.points = 0
}

func (p *Pad) IsEmpty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.strokes) == 0
}

func (p *Pad) Lock() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked = true
}

func (p *Pad) Unlock() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked = false
}

// Locked tells if the surface currently rejects strokes
func (p *Pad) Locked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locked
}

// Resize changes the logical size and pixel ratio of the surface. Like the browser pad it re-initializes the
// backing raster, which erases all strokes.
func (p *Pad) Resize(width, height int, ratio float64) error {
	if width <= 0 || height <= 0 || ratio <= 0 || !fits(width, height, math.Max(ratio, 1)) {
		return errors.Wrapf(ErrInvalidSurface, "%dx%d@%v", width, height, ratio)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.config.Width = width
	p.config.Height = height
	p.config.Ratio = math.Max(ratio, 1)
	p.strokes = nil
	p.points = 0
	return nil
}

// Bounds returns the size of the exported raster in pixels
func (p *Pad) Bounds() image.Rectangle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bounds()
}

func (p *Pad) bounds() image.Rectangle {
	return image.Rect(0, 0,
		int(math.Round(float64(p.config.Width)*p.config.Ratio)),
		int(math.Round(float64(p.config.Height)*p.config.Ratio)))
}

// ExportImage renders all strokes and encodes them as PNG. An empty pad exports a blank image.
func (p *Pad) ExportImage() ([]byte, error) {
	img := p.snapshot()
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, errors.Wrap(err, "could not encode signature")
	}
	return buf.Bytes(), nil
}

func (p *Pad) snapshot() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.render()
}

func (p *Pad) render() *image.RGBA {
	r := p.bounds()
	img := image.NewRGBA(r)
	draw.Draw(img, r, image.NewUniform(background), image.Point{}, draw.Src)

	scale := float32(p.config.Ratio)
	half := p.config.PenWidth * scale / 2
	pen := image.NewUniform(ink)
	rast := vector.NewRasterizer(r.Dx(), r.Dy())

	for _, stroke := range p.strokes {
		for i, pt := range stroke {
			x, y := pt.X*scale, pt.Y*scale
			// every point gets a square nib, which also fills the joints between segments
			rast.Reset(r.Dx(), r.Dy())
			rast.MoveTo(x-half, y-half)
			rast.LineTo(x+half, y-half)
			rast.LineTo(x+half, y+half)
			rast.LineTo(x-half, y+half)
			rast.ClosePath()
			rast.Draw(img, r, pen, image.Point{})

			if i == 0 {
				continue
			}
			px, py := stroke[i-1].X*scale, stroke[i-1].Y*scale
			dx, dy := x-px, y-py
			length := float32(math.Hypot(float64(dx), float64(dy)))
			if length == 0 {
				continue
			}
			nx, ny := -dy/length*half, dx/length*half
			rast.Reset(r.Dx(), r.Dy())
			rast.MoveTo(px+nx, py+ny)
			rast.LineTo(x+nx, y+ny)
			rast.LineTo(x-nx, y-ny)
			rast.LineTo(px-nx, py-ny)
			rast.ClosePath()
			rast.Draw(img, r, pen, image.Point{})
		}
	}
	return img
}

// fits tells if a surface is non-empty and within MaxSurfacePixels
func fits(width, height int, ratio float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	w := math.Round(float64(width) * ratio)
	h := math.Round(float64(height) * ratio)
	return w >= 1 && h >= 1 && w*h <= MaxSurfacePixels
}

func clamp(v, limit float32) float32 {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
