package legacy

// Format is the old engine pixel format vocabulary.
type Format int

const (
	FormatGuess Format = iota
	FormatGuessNoCompression
	FormatAlpha4
	FormatAlpha8
	FormatAlpha12
	FormatAlpha16
	FormatLuminance4
	FormatLuminance8
	FormatLuminance12
	FormatLuminance16
	FormatLuminance4Alpha4
	FormatLuminance6Alpha2
	FormatLuminance8Alpha8
	FormatLuminance12Alpha4
	FormatLuminance12Alpha12
	FormatLuminance16Alpha16
	FormatIntensity4
	FormatIntensity8
	FormatIntensity12
	FormatIntensity16
	FormatR3G3B2
	FormatRGB4
	FormatRGB5
	FormatRGB8
	FormatRGB10
	FormatRGB12
	FormatRGB16
	FormatRGBA2
	FormatRGBA4
	FormatRGB5A1
	FormatRGBA8
	FormatRGB10A2
	FormatRGBA12
	FormatRGBA16
	FormatRGBToDXT1
	FormatRGBAToDXT1
	FormatRGBAToDXT3
	FormatRGBAToDXT5
	FormatNativeDXT1
	FormatNativeDXT1A
	FormatNativeDXT3
	FormatNativeDXT5
	FormatDepth
	FormatDepth16
	FormatDepth24
	FormatDepth32
	FormatDepth32F
	FormatRGB16F
	FormatRGB32F
	FormatRGBA16F
	FormatRGBA32F
	FormatAlpha16F
	FormatAlpha32F
	FormatLuminance16F
	FormatLuminance32F
	FormatLuminanceAlpha16F
	FormatLuminanceAlpha32F
	FormatIntensity16F
	FormatIntensity32F

	formatCount
)

var formatNames = [formatCount]string{
	"Guess", "GuessNoCompression",
	"Alpha4", "Alpha8", "Alpha12", "Alpha16",
	"Luminance4", "Luminance8", "Luminance12", "Luminance16",
	"Luminance4Alpha4", "Luminance6Alpha2", "Luminance8Alpha8",
	"Luminance12Alpha4", "Luminance12Alpha12", "Luminance16Alpha16",
	"Intensity4", "Intensity8", "Intensity12", "Intensity16",
	"R3G3B2", "RGB4", "RGB5", "RGB8", "RGB10", "RGB12", "RGB16",
	"RGBA2", "RGBA4", "RGB5A1", "RGBA8", "RGB10A2", "RGBA12", "RGBA16",
	"RGB_TO_DXT1", "RGBA_TO_DXT1", "RGBA_TO_DXT3", "RGBA_TO_DXT5",
	"NativeDXT1", "NativeDXT1A", "NativeDXT3", "NativeDXT5",
	"Depth", "Depth16", "Depth24", "Depth32", "Depth32F",
	"RGB16F", "RGB32F", "RGBA16F", "RGBA32F",
	"Alpha16F", "Alpha32F",
	"Luminance16F", "Luminance32F",
	"LuminanceAlpha16F", "LuminanceAlpha32F",
	"Intensity16F", "Intensity32F",
}

// Formats lists every known format in declaration order.
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
