package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Component tags a log record with the subsystem that produced it.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path tags a log record with a file path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Count tags a log record with an item count.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration tags a log record with an operation duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Error wraps a single error. Returns an empty attr for nil so call sites
// don't need to branch.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple errors under one key, skipping nils. Returns an
// empty attr when no non-nil error remains.
func Errors(errs ...error) slog.Attr {
	attrs := make([]any, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		attrs = append(attrs, slog.Any(strconv.Itoa(len(attrs)), err))
	}
	if len(attrs) == 0 {
		return slog.Attr{}
	}
	return slog.Group("errors", attrs...)
}

// Group nests attributes under a common key.
func Group(key string, attrs ...slog.Attr) slog.Attr {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return slog.Group(key, args...)
}
