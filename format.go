package main

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Format selects the text encoding used for display and clipboard copy.
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSV
	FormatHSL
	FormatOKLCH
	formatCount
)

func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatHSV:
		return "HSV"
	case FormatHSL:
		return "HSL"
	case FormatOKLCH:
		return "OKLCH"
	default:
		return "HEX"
	}
}

// Next cycles to the following format.
func (f Format) Next() Format {
	return (f + 1) % formatCount
}

// ParseFormat maps a stored format name back to its Format. Unknown names
// fall back to hex.
func ParseFormat(s string) Format {
	for f := Format(0); f < formatCount; f++ {
		if f.String() == s {
			return f
		}
	}
	return FormatHex
}

// Encode renders c in the given format.
func (c RGB) Encode(f Format) string {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	switch f {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case FormatHSV:
		h, s, v := col.Hsv()
		return fmt.Sprintf("hsv(%.0f, %.0f%%, %.0f%%)", h, s*100, v*100)
	case FormatHSL:
		h, s, l := col.Hsl()
		return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
	case FormatOKLCH:
		l, ch, h := oklch(col)
		return fmt.Sprintf("oklch(%.1f%% %.3f %.1f)", l*100, ch, h)
	default:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
}

// oklch converts through OKLab using Ottosson's published sRGB matrices.
func oklch(col colorful.Color) (l, c, h float64) {
	r, g, b := col.LinearRgb()

	lm := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	mm := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	sm := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	l = 0.2104542553*lm + 0.7936177850*mm - 0.0040720468*sm
	a := 1.9779984951*lm - 2.4285922050*mm + 0.4505937099*sm
	bb := 0.0259040371*lm + 0.7827717662*mm - 0.8086757660*sm

	c = math.Hypot(a, bb)
	h = math.Atan2(bb, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return l, c, h
}
