package jpeg

// componentInfo holds the per-component metadata a SOF/SOS pair
// declares. The spec's 4:4:4 baseline profile requires every
// component's sampling factors to be equal (effectively unsubsampled),
// so an MCU is always exactly one 8x8 block per component.
type componentInfo struct {
	id        uint8
	hSampling uint8
	vSampling uint8
	qTableSel uint8
	dcHuffSel uint8
	acHuffSel uint8

	dcPredictor int16 // running DC predictor, reset at scan start
}

// frameHeader captures the parsed SOF0 segment plus the tables
// accumulated before it and the scan parameters read from SOS.
type frameHeader struct {
	precision  uint8
	width      uint16
	height     uint16
	components []componentInfo

	quantTables [4]*quantTable
	dcTables    [4]*huffmanTable
	acTables    [4]*huffmanTable
}

func (f *frameHeader) componentByID(id uint8) (int, bool) {
	for i := range f.components {
		if f.components[i].id == id {
			return i, true
		}
	}
	return 0, false
}

// parseSOF0Segment parses a baseline Start-Of-Frame payload into fh,
// validating the invariants the spec requires of baseline images.
func parseSOF0Segment(data []byte, fh *frameHeader) error {
	if len(data) < 6 {
		return newErr(KindMalformedSegment, "SOF0 segment too short")
	}

	fh.precision = data[0]
	if fh.precision != 8 {
		return newErr(KindUnsupportedProfile, "sample precision %d unsupported, only 8-bit baseline is", fh.precision)
	}

	fh.height = uint16(data[1])<<8 | uint16(data[2])
	fh.width = uint16(data[3])<<8 | uint16(data[4])
	if fh.width == 0 || fh.height == 0 {
		return newErr(KindMalformedSegment, "image dimensions cannot be zero")
	}

	count := int(data[5])
	if count != 1 && count != 3 {
		return newErr(KindMalformedSegment, "component count %d is neither 1 nor 3", count)
	}

	pos := 6
	fh.components = make([]componentInfo, count)
	for i := 0; i < count; i++ {
		if pos+3 > len(data) {
			return newErr(KindMalformedSegment, "SOF0 segment too short for component %d", i)
		}
		c := componentInfo{
			id:        data[pos],
			hSampling: data[pos+1] >> 4,
			vSampling: data[pos+1] & 0x0F,
			qTableSel: data[pos+2],
			dcHuffSel: 0xFF,
			acHuffSel: 0xFF,
		}
		if c.qTableSel > 3 {
			return newErr(KindMalformedSegment, "component %d quantization table selector %d out of range", i, c.qTableSel)
		}
		fh.components[i] = c
		pos += 3
	}

	h0, v0 := fh.components[0].hSampling, fh.components[0].vSampling
	for i := range fh.components {
		if fh.components[i].hSampling != h0 || fh.components[i].vSampling != v0 {
			return newErr(KindUnsupportedProfile, "chroma subsampling beyond 4:4:4 is unsupported")
		}
	}

	return nil
}

// parseSOSSegment parses a Start-Of-Scan payload, assigning DC/AC
// Huffman selectors to each component the scan declares, and validating
// that the spectral-selection and successive-approximation parameters
// are fixed at their baseline values.
func parseSOSSegment(data []byte, fh *frameHeader) error {
	if len(data) < 1 {
		return newErr(KindMalformedSegment, "SOS segment too short")
	}
	count := int(data[0])
	if count != len(fh.components) {
		return newErr(KindMalformedSegment, "SOS declares %d components, frame has %d", count, len(fh.components))
	}

	pos := 1
	for i := 0; i < count; i++ {
		if pos+2 > len(data) {
			return newErr(KindMalformedSegment, "SOS segment too short for component %d", i)
		}
		idx, ok := fh.componentByID(data[pos])
		if !ok {
			return newErr(KindMalformedSegment, "SOS references unknown component id %d", data[pos])
		}
		dcSel := data[pos+1] >> 4
		acSel := data[pos+1] & 0x0F
		if dcSel > 3 {
			return newErr(KindMalformedSegment, "component %d DC huffman selector %d out of range", data[pos], dcSel)
		}
		if acSel > 3 {
			return newErr(KindMalformedSegment, "component %d AC huffman selector %d out of range", data[pos], acSel)
		}
		fh.components[idx].dcHuffSel = dcSel
		fh.components[idx].acHuffSel = acSel
		pos += 2
	}

	if pos+3 > len(data) {
		return newErr(KindMalformedSegment, "SOS segment too short for spectral-selection parameters")
	}
	ss, se, ahal := data[pos], data[pos+1], data[pos+2]
	if ss != 0 || se != 63 || ahal != 0 {
		return newErr(KindUnsupportedProfile, "spectral selection (Ss=%d Se=%d Ah/Al=%02x) is not baseline", ss, se, ahal)
	}

	return nil
}
