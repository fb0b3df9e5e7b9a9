// Package qrcode turns text content into a QR module matrix and renders it
// into one of several artifacts: Unicode terminal output, a raster image,
// SVG markup, or a raster image composited with a logo or background.
//
// The matrix encoding itself is delegated to github.com/skip2/go-qrcode;
// this package owns color resolution, pixel-grid rasterization, logo
// overlay with scannability-preserving size constraints, and background
// fitting (including AI-generated backgrounds via an art Generator).
//
// # Basic Usage
//
// Render a QR code to the terminal:
//
//	m, err := qrcode.Generate("https://example.com", qrcode.Medium)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(qrcode.RenderTerminal(m, qrcode.Style{QuietZone: true}))
//
// Render to a PNG file with custom colors:
//
//	dark, _ := qrcode.ParseColor("#1a1a2e")
//	light, _ := qrcode.ParseColor("white")
//	img := qrcode.RenderImage(m, 8, qrcode.ColorPair{Dark: dark, Light: light})
//	if err := qrcode.SaveImage(img, "code.png"); err != nil {
//		log.Fatal(err)
//	}
//
// Embed a centered logo (callers should raise the error-correction level
// to High when overlaying a logo; this package does not do it for them):
//
//	m, _ := qrcode.Generate("https://example.com", qrcode.High)
//	img := qrcode.RenderImage(m, 8, qrcode.DefaultColors())
//	err := qrcode.OverlayLogo(img, qrcode.LogoOptions{Path: "logo.png", SizePercent: 20})
//
// # Capability Gating
//
// Optional render paths can be disabled at runtime through a Pipeline,
// which fails with ErrCapabilityUnavailable instead of requiring
// conditional builds:
//
//	p := qrcode.NewPipeline(qrcode.CapTerminal | qrcode.CapRaster)
//	_, err := p.SVG(m, qrcode.DefaultColors()) // ErrCapabilityUnavailable
//
// # Error Handling
//
// All failures are terminal and wrap package-level sentinel errors, so
// callers can branch with errors.Is:
//
//	if errors.Is(err, qrcode.ErrContentTooLarge) {
//		// shorten the content or lower the error-correction level
//	}
package qrcode
