package config

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/legacy_scene_loader/convert"
)

type ConverterConfig struct {
	// UnshadedColor is rgba for geometries without material state
	UnshadedColor  [4]float32 `yaml:"unshaded_color"`
	SharePixelData bool       `yaml:"share_pixel_data"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	// json or console
	Encoding string `yaml:"encoding"`
}

type Config struct {
	Converter ConverterConfig `yaml:"converter"`
	Log       LogConfig       `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Converter: ConverterConfig{
			UnshadedColor: [4]float32{0, 0, 1, 1},
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Parse overlays data on top of Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "Failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read config %q", path)
	}
	return Parse(data)
}

func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(err, "Invalid log level")
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return errors.Errorf("Invalid log encoding %q", c.Log.Encoding)
	}
	for _, v := range c.Converter.UnshadedColor {
		if v < 0 || v > 1 {
			return errors.Errorf("Unshaded color component %v out of [0,1]", v)
		}
	}
	return nil
}

func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid log level")
	}

	var zc zap.Config
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = c.Log.Encoding
	return zc.Build()
}

func (c *Config) ConverterOptions(logger *zap.Logger) convert.Options {
	opts := convert.DefaultOptions()
	opts.Logger = logger
	opts.UnshadedColor = mgl32.Vec4(c.Converter.UnshadedColor)
	opts.SharePixelData = c.Converter.SharePixelData
	return opts
}
