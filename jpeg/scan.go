package jpeg

import "io"

// receiveAndExtend reads a size-bit value from br and sign-extends it
// per the VLI law shared by DC and AC coefficients: a size-bit value v
// whose top bit is clear encodes the negative number v-(2^size-1),
// while one whose top bit is set encodes v itself. size 0 always
// decodes to 0 with no bits consumed.
func receiveAndExtend(br *bitReader, size uint8) (value int32, ok bool, err error) {
	if size == 0 {
		return 0, true, nil
	}
	bits, ok, err := br.getNBits(uint32(size))
	if err != nil || !ok {
		return 0, ok, err
	}
	v := int32(bits)
	half := int32(1) << (size - 1)
	if v < half {
		v = v - (int32(1)<<size - 1)
	}
	return v, true, nil
}

// decodeBlock decodes one entropy-coded data unit for comp: a DC
// difference (added to comp's running predictor) followed by up to 63
// AC coefficients, terminated by an end-of-block or by filling all 64
// positions. The result is in zig-zag (stream) order, undequantized.
func decodeBlock(comp *componentInfo, fh *frameHeader, br *bitReader) (*block, error) {
	dcTable := fh.dcTables[comp.dcHuffSel]
	if dcTable == nil {
		return nil, newErr(KindInvalidHuffmanCode, "component %d has no DC table assigned", comp.id)
	}
	acTable := fh.acTables[comp.acHuffSel]
	if acTable == nil {
		return nil, newErr(KindInvalidHuffmanCode, "component %d has no AC table assigned", comp.id)
	}

	size, ok, err := dcTable.decodeSymbol(br)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, wrapErr(KindIO, io.ErrUnexpectedEOF, "scan ended while decoding a DC symbol")
	}
	if size > 11 {
		return nil, newErr(KindInvalidCoefficient, "DC coefficient size %d exceeds the 8-bit-precision limit of 11", size)
	}

	diff, ok, err := receiveAndExtend(br, size)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, wrapErr(KindIO, io.ErrUnexpectedEOF, "scan ended while decoding a DC value")
	}
	comp.dcPredictor += int16(diff)

	var zz block
	zz[0] = comp.dcPredictor

	k := 1
	for k <= 63 {
		rs, ok, err := acTable.decodeSymbol(br)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, wrapErr(KindIO, io.ErrUnexpectedEOF, "scan ended while decoding an AC symbol")
		}

		run := rs >> 4
		sz := rs & 0x0F

		if sz == 0 {
			if run == 15 {
				// ZRL: 16 zero coefficients, keep scanning.
				k += 16
				continue
			}
			// EOB: remaining coefficients are zero.
			break
		}

		k += int(run)
		if k > 63 {
			return nil, newErr(KindInvalidCoefficient, "AC coefficient run advances position past 63")
		}

		val, ok, err := receiveAndExtend(br, sz)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, wrapErr(KindIO, io.ErrUnexpectedEOF, "scan ended while decoding an AC value")
		}
		zz[k] = int16(val)
		k++
	}

	return &zz, nil
}
