package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devswiss/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("render", slog.String("format", "png"), slog.Int("scale", 8))
	require.Equal(t, "render", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "format", g[0].Key)
	assert.Equal(t, "scale", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	t.Parallel()
	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestComponentAndPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "component", logger.Component("qrcode").Key)
	assert.Equal(t, "qrcode", logger.Component("qrcode").Value.String())
	assert.Equal(t, "path", logger.Path("out.png").Key)
	assert.Equal(t, "count", logger.Count(3).Key)
}

func TestNewWritesAtLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelWarn, false)

	log.Info("hidden")
	log.Warn("visible", logger.Component("test"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "component=test")
}

func TestNewJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo, true)
	log.Info("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("whatever"))
}
