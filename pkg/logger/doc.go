// Package logger provides a slog constructor and typed attribute helpers
// so log call sites stay consistent across the CLI:
//
//	log := logger.New(os.Stderr, logger.ParseLevel("debug"), false)
//	log.Info("artifact saved", logger.Path(out), logger.Duration(elapsed))
//	log.Error("render failed", logger.Error(err), logger.Component("qrcode"))
package logger
