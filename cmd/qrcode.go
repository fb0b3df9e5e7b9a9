package cmd

import (
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devswiss/pkg/artgen"
	"github.com/dmitrymomot/devswiss/pkg/logger"
	"github.com/dmitrymomot/devswiss/pkg/qrcode"
)

var (
	qrFormat      string
	qrOutput      string
	qrLevel       string
	qrScale       int
	qrInvert      bool
	qrNoQuietZone bool
	qrLogo        string
	qrLogoSize    int
	qrBackground  string
	qrDarkColor   string
	qrLightColor  string
	qrAIPrompt    string
	qrAPIKey      string
)

var qrcodeCmd = &cobra.Command{
	Use:   "qrcode <content>",
	Short: "Generate QR codes from URLs or text",
	Args:  cobra.ExactArgs(1),
	RunE:  runQrcode,
}

func init() {
	f := qrcodeCmd.Flags()
	f.StringVarP(&qrFormat, "format", "f", "terminal", "output format (terminal, png, svg)")
	f.StringVarP(&qrOutput, "output", "o", "", "output file path (required for png/svg)")
	f.StringVarP(&qrLevel, "error-correction", "e", "medium", "error correction level (low, medium, quartile, high)")
	f.IntVarP(&qrScale, "scale", "s", qrcode.DefaultScale, "scale factor for image output (pixels per module)")
	f.BoolVar(&qrInvert, "invert", false, "invert colors (dark <-> light)")
	f.BoolVar(&qrNoQuietZone, "no-quiet-zone", false, "hide quiet zone (border around QR code)")
	f.StringVar(&qrLogo, "logo", "", "path to logo image to embed in center")
	f.IntVar(&qrLogoSize, "logo-size", qrcode.DefaultLogoPercent, "logo size as percentage of QR code (5-30)")
	f.StringVar(&qrBackground, "background", "", "path to background image")
	f.StringVar(&qrDarkColor, "dark-color", "black", "dark module color (hex: #000000 or name: black)")
	f.StringVar(&qrLightColor, "light-color", "white", "light module color (hex: #FFFFFF or name: white)")
	f.StringVar(&qrAIPrompt, "ai-prompt", "", "prompt for AI-styled background generation")
	f.StringVar(&qrAPIKey, "api-key", "", "art provider API key (defaults to the provider's env var)")
	rootCmd.AddCommand(qrcodeCmd)
}

// effectiveLevel applies the logo overlay policy: a logo destroys modules,
// so Low/Medium matrices are upgraded to High. Returns the level to use
// and whether it was upgraded.
func effectiveLevel(level qrcode.Level, hasLogo bool) (qrcode.Level, bool) {
	if hasLogo && (level == qrcode.Low || level == qrcode.Medium) {
		return qrcode.High, true
	}
	return level, false
}

func runQrcode(cmd *cobra.Command, args []string) error {
	level, err := qrcode.ParseLevel(qrLevel)
	if err != nil {
		return err
	}
	level, upgraded := effectiveLevel(level, qrLogo != "")
	if upgraded {
		fmt.Fprintln(cmd.ErrOrStderr(), "Note: using high error correction for logo overlay")
	}

	start := time.Now()
	m, err := qrcode.Generate(args[0], level)
	if err != nil {
		return err
	}
	log.Debug("matrix generated",
		logger.Component("qrcode"),
		logger.Count(m.Size()),
		logger.Duration(time.Since(start)),
	)

	caps := qrcode.CapTerminal | qrcode.CapRaster | qrcode.CapVector
	if artKey() != "" {
		caps |= qrcode.CapArt
	}
	p := qrcode.NewPipeline(caps)

	switch qrFormat {
	case "terminal":
		out, err := p.Terminal(m, qrcode.Style{QuietZone: !qrNoQuietZone, Invert: qrInvert})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	case "svg":
		return renderSVG(cmd, p, m)
	case "png":
		return renderPNG(cmd, p, m)
	default:
		return fmt.Errorf("unknown format %q (expected terminal, png or svg)", qrFormat)
	}
}

func renderSVG(cmd *cobra.Command, p *qrcode.Pipeline, m *qrcode.Matrix) error {
	if qrOutput == "" {
		return fmt.Errorf("output path required for svg format, use -o <path>")
	}
	colors, err := parseColors()
	if err != nil {
		return err
	}
	markup, err := p.SVG(m, colors)
	if err != nil {
		return err
	}
	if err := os.WriteFile(qrOutput, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved SVG to %s\n", qrOutput)
	return nil
}

func renderPNG(cmd *cobra.Command, p *qrcode.Pipeline, m *qrcode.Matrix) error {
	if qrOutput == "" {
		return fmt.Errorf("output path required for png format, use -o <path>")
	}
	colors, err := parseColors()
	if err != nil {
		return err
	}

	switch {
	case qrAIPrompt != "":
		img, err := renderArt(cmd.Context(), p, m, colors)
		if err != nil {
			return err
		}
		if err := qrcode.SaveImage(img, qrOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved AI-styled QR to %s\n", qrOutput)
	case qrBackground != "":
		img, err := p.Background(m, qrBackground, colors)
		if err != nil {
			return err
		}
		if err := qrcode.SaveImage(img, qrOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved QR with background to %s\n", qrOutput)
	default:
		img, err := p.Image(m, qrScale, colors)
		if err != nil {
			return err
		}
		if qrLogo != "" {
			if err := p.Logo(img, qrcode.LogoOptions{Path: qrLogo, SizePercent: qrLogoSize}); err != nil {
				return err
			}
		}
		if err := qrcode.SaveImage(img, qrOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved PNG to %s\n", qrOutput)
	}
	return nil
}

func renderArt(ctx context.Context, p *qrcode.Pipeline, m *qrcode.Matrix, colors qrcode.ColorPair) (*image.NRGBA, error) {
	var gen qrcode.Generator
	if key := artKey(); key != "" {
		g, err := newArtGenerator(ctx, key)
		if err != nil {
			return nil, err
		}
		gen = g
	}
	// With no API key configured the pipeline lacks CapArt and fails with
	// ErrCapabilityUnavailable before touching the nil generator.
	return p.Art(ctx, m, gen, qrAIPrompt, colors)
}

// artKey returns the API key for the configured art provider, preferring
// the --api-key flag over the environment.
func artKey() string {
	if qrAPIKey != "" {
		return qrAPIKey
	}
	return cfg.ArtAPIKey()
}

func parseColors() (qrcode.ColorPair, error) {
	dark, err := qrcode.ParseColor(qrDarkColor)
	if err != nil {
		return qrcode.ColorPair{}, err
	}
	light, err := qrcode.ParseColor(qrLightColor)
	if err != nil {
		return qrcode.ColorPair{}, err
	}
	return qrcode.ColorPair{Dark: dark, Light: light}, nil
}

// newArtGenerator builds the generator for the configured provider.
func newArtGenerator(ctx context.Context, apiKey string) (qrcode.Generator, error) {
	switch cfg.ArtProvider {
	case "stability", "":
		return artgen.NewStability(apiKey)
	case "google":
		return artgen.NewGoogle(ctx, apiKey)
	case "openai":
		return artgen.NewOpenAI(apiKey)
	default:
		return nil, fmt.Errorf("unsupported art provider %q", cfg.ArtProvider)
	}
}
