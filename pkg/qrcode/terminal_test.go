package qrcode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devswiss/pkg/qrcode"
)

func TestRenderTerminal(t *testing.T) {
	t.Parallel()

	m, err := qrcode.Generate("test", qrcode.Medium)
	require.NoError(t, err)

	out := qrcode.RenderTerminal(m, qrcode.Style{QuietZone: true})
	require.NotEmpty(t, out)

	// Two module rows per printed line, two quiet-zone modules per side.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, (m.Size()+4+1)/2)
}

func TestRenderTerminalNoQuietZone(t *testing.T) {
	t.Parallel()

	m, err := qrcode.Generate("test", qrcode.Medium)
	require.NoError(t, err)

	with := qrcode.RenderTerminal(m, qrcode.Style{QuietZone: true})
	without := qrcode.RenderTerminal(m, qrcode.Style{QuietZone: false})

	assert.NotEqual(t, with, without)
	lines := strings.Split(strings.TrimRight(without, "\n"), "\n")
	assert.Len(t, lines, (m.Size()+1)/2)
	// The top-left finder pattern starts at the first character when no
	// border is added.
	assert.Equal(t, '█', []rune(lines[0])[0])
}

func TestRenderTerminalInvert(t *testing.T) {
	t.Parallel()

	m, err := qrcode.Generate("test", qrcode.Medium)
	require.NoError(t, err)

	normal := qrcode.RenderTerminal(m, qrcode.Style{QuietZone: true})
	inverted := qrcode.RenderTerminal(m, qrcode.Style{QuietZone: true, Invert: true})

	assert.NotEqual(t, normal, inverted)
	// The quiet zone is light normally, dark when inverted.
	assert.Equal(t, ' ', []rune(normal)[0])
	assert.Equal(t, '█', []rune(inverted)[0])
}
