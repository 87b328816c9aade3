package main

import "image"

// Sample is one immutable captured neighborhood of colors. Grid holds
// Window*Window entries in row-major order, top to bottom; Focus is the
// grid cell backed by the pixel under the originating Point. Samples are
// replaced wholesale, never mutated.
//
// A sample picked from the color history carries only Color: Window is 0
// and Grid is nil.
type Sample struct {
	Point  image.Point
	Color  RGB
	Window int
	Grid   []RGB
	Focus  image.Point
}

// captureWindow computes the capture rectangle for a window-sized
// neighborhood around local, clamped into the display's framebuffer, and
// the distance clamping pushed the rectangle from its ideal position.
// The rectangle shrinks below window*window only when the display itself
// is smaller than the window; it never has zero area.
func captureWindow(d Display, local image.Point, window int) (image.Rectangle, image.Point) {
	w := min(window, d.PixelWidth)
	h := min(window, d.PixelHeight)
	ideal := local.Sub(image.Pt(window/2, window/2))
	rx := clamp(ideal.X, 0, d.PixelWidth-w)
	ry := clamp(ideal.Y, 0, d.PixelHeight-h)
	return image.Rect(rx, ry, rx+w, ry+h), image.Pt(rx-ideal.X, ry-ideal.Y)
}

// takeSample captures the neighborhood around local on d and decodes it
// into a Sample originating at the virtual-desktop point at. The backend
// is invoked once for the whole rectangle, never per pixel. Grid cells
// with no backing framebuffer pixel stay opaque black.
func takeSample(b Backend, d Display, local, at image.Point, window int) (Sample, error) {
	rect, _ := captureWindow(d, local, window)
	img, err := b.CaptureRegion(d, rect)
	if err != nil {
		return Sample{}, err
	}

	grid := make([]RGB, window*window)
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			c := img.RGBAAt(img.Rect.Min.X+x, img.Rect.Min.Y+y)
			grid[y*window+x] = RGB{c.R, c.G, c.B}
		}
	}

	// Clamping shifts the window but not the query pixel, so the cell of
	// interest moves opposite to the shift.
	focus := local.Sub(rect.Min)
	return Sample{
		Point:  at,
		Color:  grid[focus.Y*window+focus.X],
		Window: window,
		Grid:   grid,
		Focus:  focus,
	}, nil
}

// pick runs one full capture cycle: enumerate displays, locate the display
// under p, and sample the neighborhood around it. Enumeration is redone
// every cycle; the arrangement can change under hot-plug, and capture
// dominates the cost anyway.
func pick(b Backend, p image.Point, window int) (Sample, error) {
	displays, err := b.Displays()
	if err != nil {
		return Sample{}, err
	}
	d, local, ok := Locate(p, displays)
	if !ok {
		return Sample{}, ErrOffscreen
	}
	return takeSample(b, d, local, p, window)
}
