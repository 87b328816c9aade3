package main

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// RGB holds an 8-bit color value.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Display describes one attached monitor: where it sits in the virtual
// desktop (logical coordinates) and how many framebuffer pixels back it.
// Native size is at least the logical size; they differ under fractional
// UI scaling.
type Display struct {
	ID          int
	Bounds      image.Rectangle
	PixelWidth  int
	PixelHeight int
}

// ScaleX returns the horizontal native-pixels-per-logical-unit factor.
func (d Display) ScaleX() float64 {
	return float64(d.PixelWidth) / float64(d.Bounds.Dx())
}

// ScaleY returns the vertical native-pixels-per-logical-unit factor.
func (d Display) ScaleY() float64 {
	return float64(d.PixelHeight) / float64(d.Bounds.Dy())
}

var (
	// ErrNoDisplays means the capture backend could not enumerate any
	// outputs. Treated as "no sample available", never as fatal.
	ErrNoDisplays = errors.New("no active displays")

	// ErrCaptureUnavailable wraps a failed framebuffer readback
	// (permissions, disconnected display, transient driver error).
	ErrCaptureUnavailable = errors.New("screen capture unavailable")

	// ErrOffscreen means the cursor is outside every enumerated display,
	// which happens briefly during display-configuration changes.
	ErrOffscreen = errors.New("cursor outside all displays")
)

// Backend provides display enumeration and framebuffer region readback.
type Backend interface {
	// Displays lists the attached displays. Results are enumerated fresh
	// on every call and never overlap in virtual-desktop space.
	Displays() ([]Display, error)

	// CaptureRegion reads back one rectangle of a display's framebuffer.
	// The rectangle is in the display's native pixel space and must lie
	// within [0, PixelWidth) x [0, PixelHeight).
	CaptureRegion(d Display, r image.Rectangle) (*image.RGBA, error)
}

// x11Backend captures via kbinani/screenshot.
type x11Backend struct{}

// NewBackend returns the platform capture backend.
func NewBackend() Backend { return x11Backend{} }

func (x11Backend) Displays() ([]Display, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, ErrNoDisplays
	}
	displays := make([]Display, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		displays[i] = Display{
			ID:     i,
			Bounds: b,
			// kbinani/screenshot reports bounds in framebuffer pixels,
			// so logical and native sizes coincide for this backend.
			PixelWidth:  b.Dx(),
			PixelHeight: b.Dy(),
		}
	}
	return displays, nil
}

func (x11Backend) CaptureRegion(d Display, r image.Rectangle) (*image.RGBA, error) {
	// screenshot.CaptureRect takes virtual-desktop coordinates; this
	// backend has scale 1, so translating by the display origin is enough.
	img, err := screenshot.CaptureRect(r.Add(d.Bounds.Min))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureUnavailable, err)
	}
	return img, nil
}
