package jpeg

import (
	"bufio"
	"io"
)

// jfifInfo carries the handful of APP0/JFIF fields the core validates;
// thumbnail data is read past but otherwise ignored, per the spec.
type jfifInfo struct {
	present bool
	version uint16
	units   uint8
	xDens   uint16
	yDens   uint16
}

// readMarker reads one big-endian 16-bit marker from r and returns its
// low byte. An error classifies a non-0xFF-prefixed byte as
// InvalidMarker and a short read as KindIO.
func readMarker(r *bufio.Reader) (uint8, error) {
	var hdr [2]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, wrapErr(KindIO, err, "reading marker")
	}
	if hdr[0] != 0xFF {
		return 0, newErr(KindInvalidMarker, "expected marker high byte 0xFF, got 0x%02X", hdr[0])
	}
	return hdr[1], nil
}

// readSegmentPayload reads a length-prefixed segment's payload (the
// length field itself is big-endian 16-bit and includes itself, so the
// payload is length-2 bytes).
func readSegmentPayload(r *bufio.Reader) ([]byte, error) {
	var lenBytes [2]byte
	if _, err := io.ReadFull(r, lenBytes[:]); err != nil {
		return nil, wrapErr(KindIO, err, "reading segment length")
	}
	length := int(lenBytes[0])<<8 | int(lenBytes[1])
	if length < 2 {
		return nil, newErr(KindMalformedSegment, "segment length %d is too short to include itself", length)
	}
	payload := make([]byte, length-2)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, wrapErr(KindIO, err, "reading segment payload")
	}
	return payload, nil
}

// parseAPP0 validates a JFIF/JFXX APP0 segment's identifier; thumbnail
// pixels, if present, are skipped implicitly since the whole segment was
// already read into payload.
func parseAPP0(payload []byte, jf *jfifInfo) {
	if len(payload) < 5 {
		return
	}
	isJFIF := string(payload[:5]) == string(jfifIdentifier[:])
	isJFXX := string(payload[:5]) == string(jfxxIdentifier[:])
	if !isJFIF && !isJFXX {
		return
	}
	jf.present = true
	if isJFIF && len(payload) >= 14 {
		jf.version = uint16(payload[5])<<8 | uint16(payload[6])
		jf.units = payload[7]
		jf.xDens = uint16(payload[8])<<8 | uint16(payload[9])
		jf.yDens = uint16(payload[10])<<8 | uint16(payload[11])
	}
}

// readHeaders drives the INIT -> HEADERS -> FRAME -> SCAN_READY portion
// of the decoder's state machine: it consumes marker segments following
// SOI until it reaches SOS, populating fh and jf as it goes, and returns
// once the entropy-coded scan data is about to begin.
func readHeaders(r *bufio.Reader) (*frameHeader, *jfifInfo, error) {
	fh := &frameHeader{}
	jf := &jfifInfo{}
	sofSeen := false

	for {
		marker, err := readMarker(r)
		if err != nil {
			return nil, nil, err
		}

		switch marker {
		case markerEOI:
			return nil, nil, newErr(KindInvalidMarker, "unexpected EOI before any scan")

		case markerSOF0:
			payload, err := readSegmentPayload(r)
			if err != nil {
				return nil, nil, err
			}
			if sofSeen {
				return nil, nil, newErr(KindMalformedSegment, "multiple SOF markers")
			}
			if err := parseSOF0Segment(payload, fh); err != nil {
				return nil, nil, err
			}
			sofSeen = true

		case markerDQT:
			payload, err := readSegmentPayload(r)
			if err != nil {
				return nil, nil, err
			}
			if err := parseDQTSegment(payload, &fh.quantTables); err != nil {
				return nil, nil, err
			}

		case markerDHT:
			payload, err := readSegmentPayload(r)
			if err != nil {
				return nil, nil, err
			}
			if err := parseDHTSegment(payload, &fh.dcTables, &fh.acTables); err != nil {
				return nil, nil, err
			}

		case markerAPP0:
			payload, err := readSegmentPayload(r)
			if err != nil {
				return nil, nil, err
			}
			parseAPP0(payload, jf)

		case markerSOS:
			if !sofSeen {
				return nil, nil, newErr(KindMalformedSegment, "SOS before SOF0")
			}
			payload, err := readSegmentPayload(r)
			if err != nil {
				return nil, nil, err
			}
			if err := parseSOSSegment(payload, fh); err != nil {
				return nil, nil, err
			}
			return fh, jf, nil

		default:
			if marker >= markerRST0 && marker <= markerRST7 {
				return nil, nil, newErr(KindUnsupportedProfile, "restart markers are unsupported")
			}
			if marker >= 0xC1 && marker <= 0xCF && marker != markerDHT &&
				marker != 0xC8 /* JPG reserved */ {
				return nil, nil, newErr(KindUnsupportedProfile, "non-baseline SOF marker 0x%02X", marker)
			}
			// Unknown or uninteresting length-prefixed segment: skip it.
			if _, err := readSegmentPayload(r); err != nil {
				return nil, nil, err
			}
		}
	}
}
