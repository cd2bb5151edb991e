package scene

type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapEdgeClamp
	WrapMirroredRepeat
)

type Texture2D struct {
	Name  string
	image *Image
	WrapS WrapMode
	WrapT WrapMode
}

func NewTexture2D(img *Image) *Texture2D {
	return &Texture2D{image: img}
}

func (t *Texture2D) Image() *Image { return t.image }

// Image is raw pixel storage in one of the renderer formats.
type Image struct {
	Format Format
	Width  int
	Height int
	Depth  int
	Data   []byte
}

func NewImage(format Format, width, height, depth int, data []byte) *Image {
	return &Image{Format: format, Width: width, Height: height, Depth: depth, Data: data}
}
