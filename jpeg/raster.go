package jpeg

// Raster is a decoded image: an interleaved 8-bit-per-channel pixel
// buffer, either 1 channel (grayscale) or 3 channels (RGB), per §4.8.
type Raster struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

func newRaster(width, height, channels int) *Raster {
	return &Raster{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]byte, width*height*channels),
	}
}

// GrayAt returns the single-channel sample at (x, y). It panics if the
// raster is not 1-channel. (x, y) is not checked against Width and
// Height: it panics only when the computed offset falls outside Pix, and
// otherwise returns whichever sample that offset lands on.
func (r *Raster) GrayAt(x, y int) uint8 {
	if r.Channels != 1 {
		panic("jpeg: GrayAt called on a non-grayscale Raster")
	}
	return r.Pix[y*r.Width+x]
}

// RGBAt returns the red, green, and blue samples at (x, y). It panics if
// the raster is not 3-channel; as with GrayAt, (x, y) is not checked
// against Width and Height, only the computed offset against Pix.
func (r *Raster) RGBAt(x, y int) (red, green, blue uint8) {
	if r.Channels != 3 {
		panic("jpeg: RGBAt called on a non-RGB Raster")
	}
	i := (y*r.Width + x) * 3
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

// At returns the samples at (x, y), one per channel, in channel order.
func (r *Raster) At(x, y int) []byte {
	i := (y*r.Width + x) * r.Channels
	return r.Pix[i : i+r.Channels]
}

func (r *Raster) setGray(x, y int, v uint8) {
	r.Pix[y*r.Width+x] = v
}

func (r *Raster) setRGB(x, y int, red, green, blue uint8) {
	i := (y*r.Width + x) * 3
	r.Pix[i] = red
	r.Pix[i+1] = green
	r.Pix[i+2] = blue
}
