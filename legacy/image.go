package legacy

// Image is raw pixel storage. Data holds Width*Height*Depth pixels in Format.
type Image struct {
	Format Format
	Width  int
	Height int
	Depth  int
	Data   []byte
}
