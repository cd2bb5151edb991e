package convert

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mogaika/legacy_scene_loader/legacy"
	"github.com/mogaika/legacy_scene_loader/scene"
)

// ConvertImage returns nil when the pixel format has no renderer counterpart.
func (c *Converter) ConvertImage(img *legacy.Image) *scene.Image {
	format, ok := c.formats.Lookup(img.Format)
	if !ok {
		c.log.Warn("image format is not supported", zap.Stringer("format", img.Format))
		return nil
	}

	data := img.Data
	if !c.sharePixels && data != nil {
		data = make([]byte, len(img.Data))
		copy(data, img.Data)
	}
	return scene.NewImage(format, img.Width, img.Height, img.Depth, data)
}

// ConvertTexture always produces a 2D texture, whatever the legacy dimensionality.
// Pixel data is not reshaped.
func (c *Converter) ConvertTexture(t legacy.Texture) *scene.Texture2D {
	return c.begin().texture(t)
}

func (cv *conversion) texture(t legacy.Texture) *scene.Texture2D {
	if t == nil {
		cv.log.Warn("texture state holds no texture")
		return nil
	}
	if tex, ok := cv.textures[t]; ok {
		return tex
	}
	tex := cv.convertTexture(t)
	cv.textures[t] = tex
	return tex
}

func (cv *conversion) convertTexture(t legacy.Texture) *scene.Texture2D {
	img, err := textureImage(t)
	if err != nil || img == nil {
		cv.log.Warn("texture has no image", zap.String("texture", textureKind(t)), zap.Error(err))
		return nil
	}

	switch t.(type) {
	case *legacy.Texture1D, *legacy.Texture3D:
		cv.log.Debug("texture converted as 2D",
			zap.String("texture", textureKind(t)),
			zap.Int("width", img.Width), zap.Int("height", img.Height), zap.Int("depth", img.Depth))
	case *legacy.Texture2D:
	default:
		cv.log.Warn("texture conversion failed", zap.String("texture", textureKind(t)))
		return nil
	}

	newImg := cv.ConvertImage(img)
	if newImg == nil {
		return nil
	}
	return scene.NewTexture2D(newImg)
}

// textureImage reports a nil texture pointer, or a panicking resolver, as an error.
func textureImage(t legacy.Texture) (img *legacy.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, errors.Errorf("texture image access failed: %v", r)
		}
	}()
	return t.Image()
}

func textureKind(t legacy.Texture) string {
	switch t.(type) {
	case *legacy.Texture1D:
		return "1D"
	case *legacy.Texture2D:
		return "2D"
	case *legacy.Texture3D:
		return "3D"
	case *legacy.TextureCubeMap:
		return "CubeMap"
	}
	return "unknown"
}
