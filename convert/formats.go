package convert

import (
	"sort"
	"sync"

	"github.com/mogaika/legacy_scene_loader/legacy"
	"github.com/mogaika/legacy_scene_loader/scene"
)

// Both vocabularies name a format the same way when the layout is the same.
// Every legacy format missing here has no renderer counterpart.
var legacyFormatMapping = map[legacy.Format]scene.Format{
	legacy.FormatAlpha8:             scene.FormatAlpha8,
	legacy.FormatAlpha16:            scene.FormatAlpha16,
	legacy.FormatLuminance8:         scene.FormatLuminance8,
	legacy.FormatLuminance16:        scene.FormatLuminance16,
	legacy.FormatLuminance16F:       scene.FormatLuminance16F,
	legacy.FormatLuminance32F:       scene.FormatLuminance32F,
	legacy.FormatLuminance8Alpha8:   scene.FormatLuminance8Alpha8,
	legacy.FormatLuminance16Alpha16: scene.FormatLuminance16Alpha16,
	legacy.FormatIntensity8:         scene.FormatIntensity8,
	legacy.FormatIntensity16:        scene.FormatIntensity16,
	legacy.FormatRGB8:               scene.FormatRGB8,
	legacy.FormatRGB10:              scene.FormatRGB10,
	legacy.FormatRGB16:              scene.FormatRGB16,
	legacy.FormatRGB5A1:             scene.FormatRGB5A1,
	legacy.FormatRGBA8:              scene.FormatRGBA8,
	legacy.FormatRGBA16:             scene.FormatRGBA16,
	legacy.FormatRGB10A2:            scene.FormatRGB10A2,
	legacy.FormatDepth:              scene.FormatDepth,
	legacy.FormatDepth16:            scene.FormatDepth16,
	legacy.FormatDepth24:            scene.FormatDepth24,
	legacy.FormatDepth32:            scene.FormatDepth32,
	legacy.FormatDepth32F:           scene.FormatDepth32F,
	legacy.FormatRGB16F:             scene.FormatRGB16F,
	legacy.FormatRGB32F:             scene.FormatRGB32F,
	legacy.FormatRGBA16F:            scene.FormatRGBA16F,
	legacy.FormatRGBA32F:            scene.FormatRGBA32F,
}

// FormatTable translates legacy pixel formats. It is never modified after
// NewFormatTable returns, so one table can serve concurrent conversions.
type FormatTable struct {
	mapping     map[legacy.Format]scene.Format
	unsupported map[legacy.Format]struct{}
}

func NewFormatTable() *FormatTable {
	ft := &FormatTable{
		mapping:     make(map[legacy.Format]scene.Format, len(legacyFormatMapping)),
		unsupported: make(map[legacy.Format]struct{}),
	}
	for _, f := range legacy.Formats() {
		if nf, ok := legacyFormatMapping[f]; ok {
			ft.mapping[f] = nf
		} else {
			ft.unsupported[f] = struct{}{}
		}
	}
	return ft
}

var (
	defaultFormatsOnce sync.Once
	defaultFormats     *FormatTable
)

// DefaultFormats returns the process wide table, built on first call.
func DefaultFormats() *FormatTable {
	defaultFormatsOnce.Do(func() {
		defaultFormats = NewFormatTable()
	})
	return defaultFormats
}

// IsSupported reports whether f has a renderer counterpart.
// Values outside the legacy vocabulary are unsupported.
func (ft *FormatTable) IsSupported(f legacy.Format) bool {
	_, ok := ft.mapping[f]
	return ok
}

func (ft *FormatTable) Lookup(f legacy.Format) (scene.Format, bool) {
	nf, ok := ft.mapping[f]
	return nf, ok
}

func (ft *FormatTable) Unsupported() []legacy.Format {
	res := make([]legacy.Format, 0, len(ft.unsupported))
	for f := range ft.unsupported {
		res = append(res, f)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
