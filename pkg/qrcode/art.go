package qrcode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
)

// artMargin is the total pixel margin reserved when fitting the code onto
// a generated background. Unlike ComposeBackground there is no minimum
// scale check here: generated backgrounds come back square at
// service-controlled sizes, large enough for any matrix.
const artMargin = 40

// Generator obtains an encoded background image for a text prompt. It is
// the seam for the external art-generation capability; pkg/artgen provides
// implementations.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// RenderArt obtains a generated background for the prompt, augmented with
// an instruction to keep the code scannable, and composites the matrix
// over it centered. Generation, base64/transport, and image-decode
// failures all surface as ErrImageProcessingFailed.
func RenderArt(ctx context.Context, m *Matrix, gen Generator, prompt string, colors ColorPair) (*image.NRGBA, error) {
	fullPrompt := fmt.Sprintf(
		"A QR code with artistic styling: %s. The QR code pattern should remain scannable.",
		prompt,
	)

	raw, err := gen.Generate(ctx, fullPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageProcessingFailed, err.Error())
	}

	background, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode generated image: %s", ErrImageProcessingFailed, err.Error())
	}

	bw, bh := background.Bounds().Dx(), background.Bounds().Dy()
	scale := (min(bw, bh) - artMargin) / m.Size()

	canvas := image.NewNRGBA(image.Rect(0, 0, bw, bh))
	draw.Draw(canvas, canvas.Bounds(), background, background.Bounds().Min, draw.Src)

	code := RenderImage(m, scale, colors)
	offset := image.Pt((bw-code.Bounds().Dx())/2, (bh-code.Bounds().Dy())/2)
	draw.Draw(canvas, code.Bounds().Add(offset), code, image.Point{}, draw.Src)
	return canvas, nil
}
