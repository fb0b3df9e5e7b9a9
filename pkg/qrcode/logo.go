package qrcode

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// Decoders for the formats the compositors accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// Logo size bounds as a percentage of the rendered code's width. Below 5%
// the logo is unreadable; above 30% the overlay destroys more modules than
// even High error correction can recover.
const (
	MinLogoPercent     = 5
	MaxLogoPercent     = 30
	DefaultLogoPercent = 20
)

// LogoOptions locates the logo image and bounds its size relative to the
// rendered code.
type LogoOptions struct {
	Path        string
	SizePercent int
}

// OverlayLogo resizes the logo at opts.Path to fit within a square of
// floor(width*SizePercent/100) pixels, preserving aspect ratio, and draws
// it centered over img in place. SizePercent is validated before any file
// I/O. The overlay is not re-checked for scannability; callers are
// expected to request a High error-correction matrix when embedding logos.
func OverlayLogo(img *image.NRGBA, opts LogoOptions) error {
	if opts.SizePercent < MinLogoPercent || opts.SizePercent > MaxLogoPercent {
		return fmt.Errorf("%w: got %d%%", ErrLogoTooLarge, opts.SizePercent)
	}

	f, err := os.Open(opts.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidLogoPath, opts.Path, err.Error())
	}
	defer f.Close()

	logo, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidLogoPath, opts.Path, err.Error())
	}

	maxEdge := img.Bounds().Dx() * opts.SizePercent / 100
	w, h := fitWithin(logo.Bounds().Dx(), logo.Bounds().Dy(), maxEdge)

	resized := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), logo, logo.Bounds(), xdraw.Src, nil)

	offset := image.Pt(
		(img.Bounds().Dx()-w)/2,
		(img.Bounds().Dy()-h)/2,
	)
	draw.Draw(img, resized.Bounds().Add(offset), resized, image.Point{}, draw.Over)
	return nil
}

// fitWithin scales (w, h) down (or up) to the largest size that fits a
// square of edge pixels while preserving aspect ratio.
func fitWithin(w, h, edge int) (int, int) {
	if w <= 0 || h <= 0 || edge <= 0 {
		return 1, 1
	}
	if w >= h {
		return edge, max(h*edge/w, 1)
	}
	return max(w*edge/h, 1), edge
}
