package jpeg

// BT.601 YCbCr-to-RGB constants, as given directly in the spec's color
// conversion formulas. double-precision float64 arithmetic is used
// throughout, matching the IDCT's acceptable-accuracy contract.
const (
	crToR  = 1.402
	cbToG  = 0.34414
	crToG  = 0.71414
	cbToB  = 1.772
)

// ycbcrToRGB converts one YCbCr sample triple to RGB, clamping each
// channel to [0, 255].
func ycbcrToRGB(y, cb, cr uint8) (r, g, b uint8) {
	yf := float64(y)
	cbf := float64(cb) - 128
	crf := float64(cr) - 128

	rf := yf + crToR*crf
	gf := yf - cbToG*cbf - crToG*crf
	bf := yf + cbToB*cbf

	return clamp255(rf), clamp255(gf), clamp255(bf)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
