package main

import (
	"image"
	"testing"
)

func TestLocate_InsideSingleDisplay(t *testing.T) {
	displays := []Display{singleDisplay(1920, 1080)}

	for _, p := range []image.Point{{0, 0}, {1919, 1079}, {960, 540}} {
		d, local, ok := Locate(p, displays)
		if !ok {
			t.Fatalf("point %v: expected a hit", p)
		}
		if d.ID != 0 {
			t.Errorf("point %v: expected display 0, got %d", p, d.ID)
		}
		if local.X < 0 || local.X >= d.PixelWidth || local.Y < 0 || local.Y >= d.PixelHeight {
			t.Errorf("point %v: local %v outside framebuffer", p, local)
		}
		// At scale 1 the mapping is the identity.
		if local != p {
			t.Errorf("point %v: expected local %v, got %v", p, p, local)
		}
	}
}

func TestLocate_Miss(t *testing.T) {
	displays := []Display{
		{ID: 0, Bounds: image.Rect(0, 0, 1920, 1080), PixelWidth: 1920, PixelHeight: 1080},
		{ID: 1, Bounds: image.Rect(1920, 0, 3840, 1080), PixelWidth: 1920, PixelHeight: 1080},
	}

	for _, p := range []image.Point{{-1, 0}, {3840, 0}, {0, 1080}, {0, -1}, {5000, 5000}} {
		if _, _, ok := Locate(p, displays); ok {
			t.Errorf("point %v: expected a miss", p)
		}
	}
}

func TestLocate_EmptyEnumeration(t *testing.T) {
	if _, _, ok := Locate(image.Pt(0, 0), nil); ok {
		t.Error("expected a miss with no displays")
	}
}

func TestLocate_ScaledDisplay(t *testing.T) {
	displays := []Display{
		{ID: 0, Bounds: image.Rect(0, 0, 1920, 1080), PixelWidth: 1920, PixelHeight: 1080},
		{ID: 1, Bounds: image.Rect(1920, 0, 3840, 1080), PixelWidth: 3840, PixelHeight: 2160},
	}

	d, local, ok := Locate(image.Pt(1930, 10), displays)
	if !ok {
		t.Fatal("expected a hit on the scaled display")
	}
	if d.ID != 1 {
		t.Fatalf("expected display 1, got %d", d.ID)
	}
	if local != image.Pt(20, 20) {
		t.Errorf("expected native (20,20) at 2x scale, got %v", local)
	}
}

func TestLocate_FirstMatchWins(t *testing.T) {
	// Overlapping bounds should not come out of a well-formed enumeration,
	// but the tie must still resolve deterministically.
	overlapping := []Display{
		{ID: 7, Bounds: image.Rect(0, 0, 100, 100), PixelWidth: 100, PixelHeight: 100},
		{ID: 8, Bounds: image.Rect(0, 0, 100, 100), PixelWidth: 100, PixelHeight: 100},
	}

	d, _, ok := Locate(image.Pt(50, 50), overlapping)
	if !ok {
		t.Fatal("expected a hit")
	}
	if d.ID != 7 {
		t.Errorf("expected the first enumerated display, got %d", d.ID)
	}
}

func TestLocate_FractionalScaleStaysInBounds(t *testing.T) {
	// 1.5x fractional scale; every boundary point must map inside the
	// framebuffer even where rounding lands on a half.
	d := Display{ID: 0, Bounds: image.Rect(0, 0, 1280, 720), PixelWidth: 1920, PixelHeight: 1080}
	displays := []Display{d}

	for _, p := range []image.Point{{0, 0}, {1279, 719}, {1279, 0}, {0, 719}, {853, 479}} {
		_, local, ok := Locate(p, displays)
		if !ok {
			t.Fatalf("point %v: expected a hit", p)
		}
		if local.X < 0 || local.X >= d.PixelWidth || local.Y < 0 || local.Y >= d.PixelHeight {
			t.Errorf("point %v: local %v outside framebuffer", p, local)
		}
	}
}

func TestLocate_RoundsHalfAwayFromZero(t *testing.T) {
	// Scale 1.5 puts odd logical coordinates on a .5 boundary: logical 1
	// is native 1.5 and must round up to 2.
	displays := []Display{
		{ID: 0, Bounds: image.Rect(0, 0, 100, 100), PixelWidth: 150, PixelHeight: 150},
	}

	_, local, ok := Locate(image.Pt(1, 3), displays)
	if !ok {
		t.Fatal("expected a hit")
	}
	if local != image.Pt(2, 5) {
		t.Errorf("expected native (2,5), got %v", local)
	}
}
