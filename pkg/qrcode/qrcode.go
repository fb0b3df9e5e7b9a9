package qrcode

import (
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

// Level is a QR error-correction level, ordered by redundancy. Higher
// levels tolerate more visual damage (such as a logo overlay) at the cost
// of matrix capacity.
type Level int

const (
	Low      Level = iota // recovers ~7% damage
	Medium                // recovers ~15% damage
	Quartile              // recovers ~25% damage
	High                  // recovers ~30% damage
)

// DefaultLevel is used when callers do not specify an error-correction level.
const DefaultLevel = Medium

// String implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case Quartile:
		return "quartile"
	case High:
		return "high"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel resolves a level name as used on the command line.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return Low, nil
	case "medium", "m", "":
		return Medium, nil
	case "quartile", "q":
		return Quartile, nil
	case "high", "h":
		return High, nil
	default:
		return DefaultLevel, fmt.Errorf("unknown error correction level %q", s)
	}
}

func (l Level) recoveryLevel() qr.RecoveryLevel {
	switch l {
	case Low:
		return qr.Low
	case Quartile:
		return qr.High
	case High:
		return qr.Highest
	default:
		return qr.Medium
	}
}

// Matrix is a square grid of dark/light modules. It is immutable once
// produced by Generate.
type Matrix struct {
	size    int
	modules [][]bool
}

// Size returns the number of modules per side, excluding any quiet zone.
func (m *Matrix) Size() int { return m.size }

// Dark reports whether the module at (x, y) is dark. Coordinates outside
// the matrix are light, so renderers can sample quiet-zone positions
// without bounds checks.
func (m *Matrix) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		return false
	}
	return m.modules[y][x]
}

// Generate encodes content into a QR module matrix at the given
// error-correction level. It fails with ErrEmptyContent before invoking
// the encoder, with ErrContentTooLarge when the content exceeds the
// level's capacity, and with ErrEncodingFailed otherwise.
func Generate(content string, level Level) (*Matrix, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	code, err := qr.New(content, level.recoveryLevel())
	if err != nil {
		return nil, classifyEncodeError(err)
	}

	// The encoder's bitmap includes its own quiet zone; renderers manage
	// quiet zones themselves, so request the bare symbol.
	code.DisableBorder = true
	bitmap := code.Bitmap()

	m := &Matrix{size: len(bitmap), modules: make([][]bool, len(bitmap))}
	for y, row := range bitmap {
		m.modules[y] = make([]bool, len(row))
		copy(m.modules[y], row)
	}
	return m, nil
}

// classifyEncodeError is the single seam for the string-based capacity
// heuristic: go-qrcode reports overflow as "content too long to encode"
// and exposes no structured error kind.
func classifyEncodeError(err error) error {
	if strings.Contains(err.Error(), "too long") {
		return ErrContentTooLarge
	}
	return fmt.Errorf("%w: %s", ErrEncodingFailed, err.Error())
}
