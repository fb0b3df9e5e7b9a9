// Package cmd provides the devswiss command-line interface.
//
// Configuration comes from flags first, then environment variables (with a
// .env file applied when present): STABILITY_API_KEY, GEMINI_API_KEY and
// OPENAI_API_KEY hold provider credentials, DEVSWISS_ART_PROVIDER selects
// the art backend, and DEVSWISS_LOG_LEVEL / DEVSWISS_LOG_JSON control
// diagnostic logging. Artifacts and generated values go to stdout;
// diagnostics go to stderr.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devswiss/internal/config"
	"github.com/dmitrymomot/devswiss/pkg/logger"
)

var (
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "devswiss",
	Short:         "A Swiss Army knife CLI toolkit for developers",
	Long:          "devswiss bundles small developer utilities: QR code generation with image, SVG and AI-styled output, secure password generation, and PDF to DOCX conversion.",
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log = logger.New(os.Stderr, logger.ParseLevel(cfg.LogLevel), cfg.LogJSON)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
