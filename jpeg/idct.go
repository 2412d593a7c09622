package jpeg

import "math"

// The scalar two-pass 1-D IDCT below follows the design notes' guidance
// (start with the scalar algorithm, introduce SIMD only if measurement
// demands it) and the AAN-style factorization the teacher corpus uses
// for inverse-DCT edge prediction: eight inverse-cosine scale factors
// (is0..is7) combined through a butterfly of half-angle sums/differences
// rather than 64 direct cosine multiplies per output sample.
const (
	is0 = 2.828427124746190097603377448419
	is1 = 3.923141121612921796504728944537
	is2 = 3.695518130045147024512732757587
	is3 = 3.325878449210180948315153510472
	is4 = 2.828427124746190097603377448419
	is5 = 2.222280932078408898971323255794
	is6 = 1.530733729460359086913839936122
	is7 = 0.780361288064513071393139473908

	ia1 = 1.414213562373095048801688724209
	ia2 = 0.541196100146196984399723205367
	ia3 = 1.414213562373095048801688724209
	ia4 = 1.306562964876376527856643173427
	ia5 = 0.382683432365089771728459984030
)

// idct1D runs one 1-D inverse DCT butterfly over 8 samples taken with
// the given stride starting at in[base], writing its 8 outputs into
// out[base] at the same stride.
func idct1D(in *[64]float64, out *[64]float64, base, stride int) {
	v15 := in[base] * is0
	v26 := in[base+stride] * is1
	v21 := in[base+2*stride] * is2
	v28 := in[base+3*stride] * is3
	v16 := in[base+4*stride] * is4
	v25 := in[base+5*stride] * is5
	v22 := in[base+6*stride] * is6
	v27 := in[base+7*stride] * is7

	v19 := (v25 - v28) * 0.5
	v20 := (v26 - v27) * 0.5
	v23 := (v26 + v27) * 0.5
	v24 := (v25 + v28) * 0.5

	v7 := (v23 + v24) * 0.5
	v11 := (v21 + v22) * 0.5
	v13 := (v23 - v24) * 0.5
	v17 := (v21 - v22) * 0.5

	v8 := (v15 + v16) * 0.5
	v9 := (v15 - v16) * 0.5

	term := (v19 - v20) * ia5
	v12 := term - v19*ia4
	v14 := v20*ia2 - term

	v6 := v14 - v7
	v5 := v13*ia3 - v6
	v4 := -v5 - v12
	v10 := v17*ia1 - v11

	v0 := (v8 + v11) * 0.5
	v1 := (v9 + v10) * 0.5
	v2 := (v9 - v10) * 0.5
	v3 := (v8 - v11) * 0.5

	out[base] = (v0 + v7) * 0.5
	out[base+stride] = (v1 + v6) * 0.5
	out[base+2*stride] = (v2 + v5) * 0.5
	out[base+3*stride] = (v3 + v4) * 0.5
	out[base+4*stride] = (v3 - v4) * 0.5
	out[base+5*stride] = (v2 - v5) * 0.5
	out[base+6*stride] = (v1 - v6) * 0.5
	out[base+7*stride] = (v0 - v7) * 0.5
}

// idct8x8 applies the spec's 2-D inverse DCT to a dequantized,
// natural-order coefficient block, level-shifts each sample by 128, and
// clamps to [0, 255]. The transform is computed as two passes of 1-D
// IDCT (columns, then rows), which is equivalent to the direct 2-D
// definition in §4.5 and within the spec's 1-LSB rounding tolerance.
func idct8x8(coeffs *block) [64]uint8 {
	var in, mid [64]float64
	for i := 0; i < 64; i++ {
		in[i] = float64(coeffs[i])
	}

	for col := 0; col < 8; col++ {
		idct1D(&in, &mid, col, 8)
	}

	var out [64]float64
	for row := 0; row < 8; row++ {
		idct1D(&mid, &out, row*8, 1)
	}

	var samples [64]uint8
	for i := 0; i < 64; i++ {
		v := int(math.Round(out[i])) + 128
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		samples[i] = uint8(v)
	}
	return samples
}
