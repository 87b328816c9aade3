package main

import (
	"image"
	"math"
)

// Locate finds the display whose bounds contain p and maps p into that
// display's native pixel space. Containment is half-open on the far edges;
// when enumeration order ever yields overlapping displays, the first match
// wins. The boolean is false when no display contains p.
func Locate(p image.Point, displays []Display) (Display, image.Point, bool) {
	for _, d := range displays {
		if !p.In(d.Bounds) {
			continue
		}
		lx := p.X - d.Bounds.Min.X
		ly := p.Y - d.Bounds.Min.Y
		// Scale each axis independently; fractional UI scaling is not
		// necessarily uniform. math.Round rounds half away from zero,
		// which keeps the mapping deterministic at .5 boundaries.
		nx := int(math.Round(float64(lx) * d.ScaleX()))
		ny := int(math.Round(float64(ly) * d.ScaleY()))
		// Rounding can push a far-edge pixel out by one.
		nx = clamp(nx, 0, d.PixelWidth-1)
		ny = clamp(ny, 0, d.PixelHeight-1)
		return d, image.Pt(nx, ny), true
	}
	return Display{}, image.Point{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
