package qrcode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devswiss/pkg/qrcode"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	m, err := qrcode.Generate("https://example.com", qrcode.Medium)
	require.NoError(t, err)

	// QR symbol sides follow the version steps 21, 25, 29, ...
	assert.GreaterOrEqual(t, m.Size(), 21)
	assert.Equal(t, 0, (m.Size()-17)%4)

	// The finder pattern corner module is always dark.
	assert.True(t, m.Dark(0, 0))
	// Out-of-bounds positions read as light.
	assert.False(t, m.Dark(-1, 0))
	assert.False(t, m.Dark(0, m.Size()))
}

func TestGenerateEmptyContent(t *testing.T) {
	t.Parallel()

	for _, level := range []qrcode.Level{qrcode.Low, qrcode.Medium, qrcode.Quartile, qrcode.High} {
		_, err := qrcode.Generate("", level)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent, "level %s", level)
	}
}

func TestGenerateContentTooLarge(t *testing.T) {
	t.Parallel()

	// Byte-mode capacity tops out below 3000 characters even at Low.
	_, err := qrcode.Generate(strings.Repeat("a", 8000), qrcode.Low)
	assert.ErrorIs(t, err, qrcode.ErrContentTooLarge)
}

func TestGenerateAllLevels(t *testing.T) {
	t.Parallel()

	for _, level := range []qrcode.Level{qrcode.Low, qrcode.Medium, qrcode.Quartile, qrcode.High} {
		m, err := qrcode.Generate("test", level)
		require.NoError(t, err, "level %s", level)
		assert.Greater(t, m.Size(), 0)
	}
}

func TestHigherLevelsDenser(t *testing.T) {
	t.Parallel()

	// Enough content that the version differs between redundancy tiers.
	content := strings.Repeat("https://example.com/", 10)
	low, err := qrcode.Generate(content, qrcode.Low)
	require.NoError(t, err)
	high, err := qrcode.Generate(content, qrcode.High)
	require.NoError(t, err)

	assert.Greater(t, high.Size(), low.Size())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]qrcode.Level{
		"low": qrcode.Low, "l": qrcode.Low,
		"medium": qrcode.Medium, "M": qrcode.Medium, "": qrcode.Medium,
		"Quartile": qrcode.Quartile, "q": qrcode.Quartile,
		" high ": qrcode.High, "h": qrcode.High,
	} {
		got, err := qrcode.ParseLevel(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, err := qrcode.ParseLevel("ultra")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "medium", qrcode.Medium.String())
	assert.Equal(t, "high", qrcode.High.String())
}
