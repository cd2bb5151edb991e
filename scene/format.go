package scene

import "github.com/pkg/errors"

// Format is the renderer pixel format vocabulary.
type Format int

const (
	FormatAlpha8 Format = iota
	FormatAlpha16
	FormatLuminance8
	FormatLuminance16
	FormatLuminance16F
	FormatLuminance32F
	FormatLuminance8Alpha8
	FormatLuminance16Alpha16
	FormatLuminance16FAlpha16F
	FormatIntensity8
	FormatIntensity16
	FormatBGR8
	FormatRGB8
	FormatRGB10
	FormatRGB16
	FormatRGB5A1
	FormatRGBA8
	FormatABGR8
	FormatRGBA16
	FormatDXT1
	FormatDXT1A
	FormatDXT3
	FormatDXT5
	FormatLATC
	FormatLTC
	FormatDepth
	FormatDepth16
	FormatDepth24
	FormatDepth32
	FormatDepth32F
	FormatRGB111110F
	FormatRGB9E5
	FormatRGB16F
	FormatRGBA16F
	FormatRGB32F
	FormatRGBA32F
	FormatRGB10A2
	FormatRGB565
	FormatARGB4444
	FormatARGB8
	FormatBGRA8
	FormatDepth24Stencil8

	formatCount
)

var formatNames = [formatCount]string{
	"Alpha8", "Alpha16",
	"Luminance8", "Luminance16", "Luminance16F", "Luminance32F",
	"Luminance8Alpha8", "Luminance16Alpha16", "Luminance16FAlpha16F",
	"Intensity8", "Intensity16",
	"BGR8", "RGB8", "RGB10", "RGB16", "RGB5A1", "RGBA8", "ABGR8", "RGBA16",
	"DXT1", "DXT1A", "DXT3", "DXT5", "LATC", "LTC",
	"Depth", "Depth16", "Depth24", "Depth32", "Depth32F",
	"RGB111110F", "RGB9E5",
	"RGB16F", "RGBA16F", "RGB32F", "RGBA32F",
	"RGB10A2", "RGB565", "ARGB4444", "ARGB8", "BGRA8",
	"Depth24Stencil8",
}

// bits per pixel, 0 for block compressed formats
var formatBpp = [formatCount]int{
	8, 16,
	8, 16, 16, 32,
	16, 32, 32,
	8, 16,
	24, 24, 32, 48, 16, 32, 32, 64,
	0, 0, 0, 0, 0, 0,
	0, 16, 24, 32, 32,
	32, 32,
	48, 64, 96, 128,
	32, 16, 16, 32, 32,
	32,
}

func Formats() []Format {
	fs := make([]Format, formatCount)
	for i := range fs {
		fs[i] = Format(i)
	}
	return fs
}

func (f Format) String() string {
	if f < 0 || f >= formatCount {
		return "Unknown"
	}
	return formatNames[f]
}

func (f Format) BitsPerPixel() int {
	if f < 0 || f >= formatCount {
		return 0
	}
	return formatBpp[f]
}

func (f Format) IsCompressed() bool {
	switch f {
	case FormatDXT1, FormatDXT1A, FormatDXT3, FormatDXT5, FormatLATC, FormatLTC:
		return true
	}
	return false
}

func (f Format) IsDepth() bool {
	switch f {
	case FormatDepth, FormatDepth16, FormatDepth24, FormatDepth32, FormatDepth32F, FormatDepth24Stencil8:
		return true
	}
	return false
}

// ParseFormat looks a format up by its symbolic name.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, errors.Errorf("unknown image format %q", name)
}
