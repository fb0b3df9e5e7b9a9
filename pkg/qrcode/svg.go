package qrcode

import (
	"fmt"
	"strings"
)

// RenderSVG maps the matrix to resolution-independent SVG markup. One SVG
// unit corresponds to one module, the quiet zone is always included, and
// colors are serialized as #rrggbb hex strings.
func RenderSVG(m *Matrix, colors ColorPair) string {
	side := m.Size() + 2*rasterQuietZone

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+"\n", side, side)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`+"\n", side, side, colors.Light.Hex())

	for y := 0; y < m.Size(); y++ {
		for x := 0; x < m.Size(); x++ {
			if m.Dark(x, y) {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`+"\n",
					x+rasterQuietZone, y+rasterQuietZone, colors.Dark.Hex())
			}
		}
	}

	b.WriteString("</svg>\n")
	return b.String()
}
