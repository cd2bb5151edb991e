// Package convert turns legacy scene graphs into renderer scene graphs.
//
// Conversion never fails as a whole. Parts that cannot be translated are
// logged and either dropped (unknown node kinds, unsupported textures) or
// replaced by defaults (missing bounds). The only hard requirement is that
// every geometry leaf has a position buffer.
package convert

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/mogaika/legacy_scene_loader/legacy"
	"github.com/mogaika/legacy_scene_loader/scene"
)

// AssetManager provides the shader definitions materials are built from.
type AssetManager interface {
	LoadMaterialDef(name string) (*scene.MaterialDef, error)
}

type Options struct {
	Logger *zap.Logger
	// Formats defaults to DefaultFormats().
	Formats *FormatTable
	// UnshadedColor is used for geometries without material state.
	// The zero value means scene.ColorBlue.
	UnshadedColor mgl32.Vec4
	// SharePixelData makes converted images reference the legacy pixel
	// buffers instead of copies. The legacy tree must then outlive the result.
	SharePixelData bool
}

func DefaultOptions() Options {
	return Options{
		UnshadedColor: scene.ColorBlue,
	}
}

// Converter holds only read-only state and can be shared between goroutines.
// Per call state lives in conversion.
type Converter struct {
	assets        AssetManager
	formats       *FormatTable
	log           *zap.Logger
	unshadedColor mgl32.Vec4
	sharePixels   bool
}

func New(assets AssetManager, opts Options) *Converter {
	c := &Converter{
		assets:        assets,
		formats:       opts.Formats,
		log:           opts.Logger,
		unshadedColor: opts.UnshadedColor,
		sharePixels:   opts.SharePixelData,
	}
	if c.formats == nil {
		c.formats = DefaultFormats()
	}
	if c.unshadedColor == (mgl32.Vec4{}) {
		c.unshadedColor = scene.ColorBlue
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.log = c.log.Named("convert")
	return c
}

// conversion is the state of one Convert call. Textures shared between
// geometries of the tree are resolved and converted once; the legacy tree
// itself is only read.
type conversion struct {
	*Converter
	textures map[legacy.Texture]*scene.Texture2D
}

func (c *Converter) begin() *conversion {
	return &conversion{
		Converter: c,
		textures:  make(map[legacy.Texture]*scene.Texture2D),
	}
}

func (c *Converter) Formats() *FormatTable { return c.formats }
