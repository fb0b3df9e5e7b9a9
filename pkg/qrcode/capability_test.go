package qrcode_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devswiss/pkg/qrcode"
)

func TestCapabilityHas(t *testing.T) {
	t.Parallel()

	caps := qrcode.CapTerminal | qrcode.CapRaster
	assert.True(t, caps.Has(qrcode.CapTerminal))
	assert.True(t, caps.Has(qrcode.CapRaster))
	assert.False(t, caps.Has(qrcode.CapVector))
	assert.False(t, caps.Has(qrcode.CapArt))
	assert.True(t, qrcode.AllCapabilities.Has(qrcode.CapArt|qrcode.CapVector))
}

func TestPipelineGatesCapabilities(t *testing.T) {
	t.Parallel()

	m, err := qrcode.Generate("test", qrcode.Medium)
	require.NoError(t, err)

	p := qrcode.NewPipeline(qrcode.CapTerminal)

	out, err := p.Terminal(m, qrcode.Style{QuietZone: true})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = p.Image(m, 8, qrcode.DefaultColors())
	assert.ErrorIs(t, err, qrcode.ErrCapabilityUnavailable)

	_, err = p.SVG(m, qrcode.DefaultColors())
	assert.ErrorIs(t, err, qrcode.ErrCapabilityUnavailable)

	_, err = p.Background(m, "irrelevant.png", qrcode.DefaultColors())
	assert.ErrorIs(t, err, qrcode.ErrCapabilityUnavailable)

	// A nil generator is never touched when the capability is absent.
	_, err = p.Art(context.Background(), m, nil, "prompt", qrcode.DefaultColors())
	assert.ErrorIs(t, err, qrcode.ErrCapabilityUnavailable)
}

func TestPipelineAllCapabilities(t *testing.T) {
	t.Parallel()

	m, err := qrcode.Generate("test", qrcode.Medium)
	require.NoError(t, err)

	p := qrcode.NewPipeline(qrcode.AllCapabilities)

	img, err := p.Image(m, 4, qrcode.DefaultColors())
	require.NoError(t, err)
	assert.Equal(t, (m.Size()+2)*4, img.Bounds().Dx())

	svg, err := p.SVG(m, qrcode.DefaultColors())
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
}
