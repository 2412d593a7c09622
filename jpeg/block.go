package jpeg

// block holds the 64 coefficients of one 8x8 data unit. During entropy
// decode and dequantization it is indexed in zig-zag (stream) order;
// dequantizeAndUnzigzag returns a new block in natural (row-major)
// order, ready for the IDCT.
type block [64]int16

// dequantizeAndUnzigzag multiplies each zig-zag-ordered coefficient by
// the matching quantization table entry (which is stored in the same
// zig-zag order the DQT segment carried it in) and then applies the
// inverse zig-zag permutation, producing an 8x8 matrix in natural,
// row-major order.
func dequantizeAndUnzigzag(zz *block, qt *quantTable) block {
	var natural block
	for i := 0; i < 64; i++ {
		natural[zigzag[i]] = int16(int32(zz[i]) * int32(qt.values[i]))
	}
	return natural
}
