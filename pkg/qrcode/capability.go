package qrcode

import (
	"context"
	"fmt"
	"image"
)

// Capability identifies an optional render path. The set of available
// capabilities is decided at runtime (for example, art generation is only
// available when an API key is configured), not at build time.
type Capability uint8

const (
	CapTerminal Capability = 1 << iota
	CapRaster
	CapVector
	CapArt
)

// AllCapabilities enables every render path.
const AllCapabilities = CapTerminal | CapRaster | CapVector | CapArt

// Has reports whether every capability in want is present in c.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

func (c Capability) String() string {
	switch c {
	case CapTerminal:
		return "terminal rendering"
	case CapRaster:
		return "raster rendering"
	case CapVector:
		return "vector rendering"
	case CapArt:
		return "art generation"
	default:
		return fmt.Sprintf("capability(%#x)", uint8(c))
	}
}

// Pipeline gates the render and composite operations behind a capability
// set. Operations for absent capabilities fail with
// ErrCapabilityUnavailable instead of being compiled out.
type Pipeline struct {
	caps Capability
}

// NewPipeline creates a pipeline restricted to the given capabilities.
func NewPipeline(caps Capability) *Pipeline {
	return &Pipeline{caps: caps}
}

func (p *Pipeline) require(c Capability) error {
	if !p.caps.Has(c) {
		return fmt.Errorf("%w: %s", ErrCapabilityUnavailable, c)
	}
	return nil
}

// Terminal renders the matrix as Unicode block glyphs.
func (p *Pipeline) Terminal(m *Matrix, style Style) (string, error) {
	if err := p.require(CapTerminal); err != nil {
		return "", err
	}
	return RenderTerminal(m, style), nil
}

// Image renders the matrix as a pixel buffer.
func (p *Pipeline) Image(m *Matrix, scale int, colors ColorPair) (*image.NRGBA, error) {
	if err := p.require(CapRaster); err != nil {
		return nil, err
	}
	return RenderImage(m, scale, colors), nil
}

// SVG renders the matrix as vector markup.
func (p *Pipeline) SVG(m *Matrix, colors ColorPair) (string, error) {
	if err := p.require(CapVector); err != nil {
		return "", err
	}
	return RenderSVG(m, colors), nil
}

// Logo overlays a logo onto a rendered raster in place.
func (p *Pipeline) Logo(img *image.NRGBA, opts LogoOptions) error {
	if err := p.require(CapRaster); err != nil {
		return err
	}
	return OverlayLogo(img, opts)
}

// Background fits the matrix onto the background image at path.
func (p *Pipeline) Background(m *Matrix, path string, colors ColorPair) (*image.NRGBA, error) {
	if err := p.require(CapRaster); err != nil {
		return nil, err
	}
	return ComposeBackground(m, path, colors)
}

// Art composites the matrix over a generated background.
func (p *Pipeline) Art(ctx context.Context, m *Matrix, gen Generator, prompt string, colors ColorPair) (*image.NRGBA, error) {
	if err := p.require(CapArt); err != nil {
		return nil, err
	}
	return RenderArt(ctx, m, gen, prompt, colors)
}
