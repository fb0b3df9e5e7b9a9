package qrcode

import "strings"

// Style controls terminal rendering.
type Style struct {
	// QuietZone adds a light border around the matrix. Scanners need it;
	// disable only when the surrounding terminal is already light.
	QuietZone bool
	// Invert swaps the dark/light glyph assignment for dark terminal
	// themes.
	Invert bool
}

// terminalQuietZone is the quiet-zone width in modules on each side.
const terminalQuietZone = 2

// Half-height block glyphs; one printed character covers two module rows
// so the output keeps a roughly square aspect ratio in terminal cells.
const (
	glyphFull   = '█'
	glyphTop    = '▀'
	glyphBottom = '▄'
	glyphNone   = ' '
)

// RenderTerminal maps the matrix to Unicode block glyphs. It is a pure
// function and always succeeds.
func RenderTerminal(m *Matrix, style Style) string {
	border := 0
	if style.QuietZone {
		border = terminalQuietZone
	}

	darkAt := func(x, y int) bool {
		return m.Dark(x, y) != style.Invert
	}

	var b strings.Builder
	for y := -border; y < m.Size()+border; y += 2 {
		for x := -border; x < m.Size()+border; x++ {
			top, bottom := darkAt(x, y), darkAt(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune(glyphFull)
			case top:
				b.WriteRune(glyphTop)
			case bottom:
				b.WriteRune(glyphBottom)
			default:
				b.WriteRune(glyphNone)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
