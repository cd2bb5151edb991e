package legacy

import "github.com/pkg/errors"

type Texture interface {
	// Image returns the texture image, resolving it when it was loaded lazily.
	// Resolution does not modify the texture.
	Image() (*Image, error)
}

type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
	WrapEdgeClamp
	WrapMirroredRepeat
)

type TextureBase struct {
	Img *Image
	// Resolve loads the image on access when Img is nil (deferred texture keys).
	Resolve func() (*Image, error)
	Wrap    WrapMode
	// Apply mode, filters and texture matrix are not carried to the new model.
}

func (t *TextureBase) Image() (*Image, error) {
	if t == nil {
		return nil, errors.New("nil texture")
	}
	if t.Img == nil && t.Resolve != nil {
		img, err := t.Resolve()
		if err != nil {
			return nil, errors.Wrapf(err, "resolving texture image")
		}
		return img, nil
	}
	return t.Img, nil
}

type Texture1D struct {
	TextureBase
}

type Texture2D struct {
	TextureBase
}

type Texture3D struct {
	TextureBase
}

type TextureCubeMap struct {
	TextureBase
}

func NewTexture2D(img *Image) *Texture2D {
	return &Texture2D{TextureBase{Img: img}}
}
