package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
converter:
  unshaded_color: [1, 0.5, 0, 1]
  share_pixel_data: true
log:
  level: debug
  encoding: console
`))
	require.NoError(t, err)
	assert.Equal(t, [4]float32{1, 0.5, 0, 1}, cfg.Converter.UnshadedColor)
	assert.True(t, cfg.Converter.SharePixelData)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.False(t, cfg.Log.Development)
}

func TestParseInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"syntax":   "converter: [",
		"level":    "log: {level: loud}",
		"encoding": "log: {encoding: xml}",
		"color":    "converter: {unshaded_color: [2, 0, 0, 1]}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {level: warn}\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "warn"
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	cfg.Log.Development = true
	cfg.Log.Encoding = "console"
	cfg.Log.Level = "debug"
	logger, err = cfg.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestConverterOptions(t *testing.T) {
	cfg := Default()
	cfg.Converter.SharePixelData = true
	logger := zap.NewNop()

	opts := cfg.ConverterOptions(logger)
	assert.Same(t, logger, opts.Logger)
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 1}, opts.UnshadedColor)
	assert.True(t, opts.SharePixelData)
	assert.Nil(t, opts.Formats)
}
