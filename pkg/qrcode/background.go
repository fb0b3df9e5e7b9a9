package qrcode

import (
	"fmt"
	"image"
	"image/draw"
	"os"
)

const (
	// backgroundMargin is the minimum distance in pixels between the code
	// and the background's edge.
	backgroundMargin = 20
	// minModuleScale is the smallest pixels-per-module factor considered
	// reliably scannable.
	minModuleScale = 2
)

// ComposeBackground renders the matrix onto the image at backgroundPath.
// The per-module scale is the largest that fits within the background's
// shorter edge minus a 20-pixel margin on each side; if that scale drops
// below 2 the result would not scan reliably and ErrBackgroundTooSmall is
// returned. The code is centered and overwrites background pixels.
func ComposeBackground(m *Matrix, backgroundPath string, colors ColorPair) (*image.NRGBA, error) {
	f, err := os.Open(backgroundPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidLogoPath, backgroundPath, err.Error())
	}
	defer f.Close()

	background, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidLogoPath, backgroundPath, err.Error())
	}

	bw, bh := background.Bounds().Dx(), background.Bounds().Dy()
	available := min(bw, bh) - 2*backgroundMargin
	if available < 0 {
		available = 0
	}
	scale := available / m.Size()
	if scale < minModuleScale {
		return nil, fmt.Errorf("%w: %dx%d background leaves %d pixels per module", ErrBackgroundTooSmall, bw, bh, scale)
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, bw, bh))
	draw.Draw(canvas, canvas.Bounds(), background, background.Bounds().Min, draw.Src)

	code := RenderImage(m, scale, colors)
	offset := image.Pt((bw-code.Bounds().Dx())/2, (bh-code.Bounds().Dy())/2)
	draw.Draw(canvas, code.Bounds().Add(offset), code, image.Point{}, draw.Src)
	return canvas, nil
}
