package qrcode

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) nrgba() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ColorPair holds the dark (module) and light (background) colors of a
// rendered code. Callers should pick contrasting pairs; this is not
// enforced.
type ColorPair struct {
	Dark  RGB
	Light RGB
}

// DefaultColors returns the standard black-on-white pair.
func DefaultColors() ColorPair {
	return ColorPair{Dark: RGB{0, 0, 0}, Light: RGB{255, 255, 255}}
}

var namedColors = map[string]RGB{
	"black": {0, 0, 0},
	"white": {255, 255, 255},
	"red":   {255, 0, 0},
	"green": {0, 255, 0},
	"blue":  {0, 0, 255},
}

// ParseColor resolves a color expressed as a known name or a hex triplet
// with an optional leading '#'. Any parse failure yields ErrInvalidColor
// carrying the original input.
func ParseColor(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)

	if c, ok := namedColors[strings.ToLower(trimmed)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(trimmed, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		channels[i] = uint8(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
