// seehuhn.de/go/paint - a scene-description language and rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package raster turns a parsed [scene.Scene] into a pixel image, painting
// fills in reverse declaration order behind a per-pixel coverage mask so
// that the topmost fill at each pixel wins without re-testing containment
// once a pixel is claimed.
package raster

import (
	"image"
	"math"
	"runtime"
	"sync"

	"seehuhn.de/go/paint/geo"
	"seehuhn.de/go/paint/scene"
)

// Rasterizer renders scenes to *image.RGBA buffers. Create one instance and
// reuse it across renders of differently-sized scenes; its coverage buffer
// grows as needed but never shrinks.
//
// A Rasterizer is not safe for concurrent Render calls, though a single
// Render call may itself use multiple goroutines (see Workers).
type Rasterizer struct {
	// Workers is the number of goroutines to partition canvas rows across.
	// Values below 2 render single-threaded. Partitioning is always exact:
	// every worker owns a disjoint, contiguous range of rows, so no
	// synchronization beyond a single WaitGroup is needed.
	Workers int

	covered []bool
}

// New returns a Rasterizer configured to render single-threaded.
func New() *Rasterizer {
	return &Rasterizer{}
}

// NewParallel returns a Rasterizer that partitions each render across
// runtime.NumCPU() goroutines.
func NewParallel() *Rasterizer {
	return &Rasterizer{Workers: runtime.NumCPU()}
}

// Render rasterizes sc into a freshly allocated W×H image. Pixels not
// covered by any fill retain scene.Black.
func (r *Rasterizer) Render(sc *scene.Scene) *image.RGBA {
	w, h := sc.Width, sc.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillBlack(img)
	covered := r.resetCovered(w * h)

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		paintRows(img, covered, sc, 0, h)
		return img
	}

	rowsPerWorker := (h + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += rowsPerWorker {
		y1 := y0 + rowsPerWorker
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			paintRows(img, covered, sc, y0, y1)
		}(y0, y1)
	}
	wg.Wait()

	return img
}

// fillBlack sets every pixel of img to scene.Black. image.NewRGBA zeroes its
// buffer, which is transparent black (alpha 0), not opaque black -- the
// default color a pixel with no covering fill must retain.
func fillBlack(img *image.RGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
}

// resetCovered returns r.covered resized to n elements and zeroed, reusing
// the backing array when it is already large enough.
func (r *Rasterizer) resetCovered(n int) []bool {
	if cap(r.covered) < n {
		r.covered = make([]bool, n)
		return r.covered
	}
	r.covered = r.covered[:n]
	clear(r.covered)
	return r.covered
}

// paintRows runs the reverse-fill-order coverage-mask algorithm restricted
// to rows [yMin, yMax). Every fill is still examined in full; only the
// pixel loop is bounded, so callers can partition a render by row range
// without the partitions ever touching one another's pixels.
func paintRows(img *image.RGBA, covered []bool, sc *scene.Scene, yMin, yMax int) {
	w, h := sc.Width, sc.Height

	for i := len(sc.Fills) - 1; i >= 0; i-- {
		fill := sc.Fills[i]
		d := fill.Shape.Domain()
		lo, hi := geo.Min(d), geo.Max(d)

		// The inclusive high end is floor(max)+1, so when the domain's max
		// coordinate is an integer one extra column (or row) beyond the
		// domain is sampled. This is deliberate and kept as is.
		x0 := max(int(math.Floor(lo.X)), 0)
		y0 := max(int(math.Floor(lo.Y)), yMin)
		x1 := min(int(math.Floor(hi.X))+1, w-1)
		y1 := min(int(math.Floor(hi.Y))+1, h-1)
		if y1 >= yMax {
			y1 = yMax - 1
		}
		if x0 > x1 || y0 > y1 {
			continue
		}

		color := fill.Color
		for y := y0; y <= y1; y++ {
			row := y * w
			for x := x0; x <= x1; x++ {
				idx := row + x
				if covered[idx] {
					continue
				}
				p := geo.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
				if fill.Shape.Contains(p) {
					img.SetRGBA(x, y, color)
					covered[idx] = true
				}
			}
		}
	}
}
