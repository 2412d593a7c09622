package jpeg

import (
	"bufio"
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Decoder decodes a single baseline JFIF image read from an io.Reader.
type Decoder struct {
	r   *bufio.Reader
	log *logrus.Logger
}

// NewDecoder wraps r for decoding. r is not read until Decode is called.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{
		r:   bufio.NewReader(r),
		log: nopLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode runs the full INIT -> HEADERS -> FRAME -> SCAN -> DONE pipeline
// and returns the reconstructed raster. ctx is checked once per MCU row
// so a caller can abandon a large decode early; the decoder does not
// otherwise run work concurrently.
func (d *Decoder) Decode(ctx context.Context) (*Raster, error) {
	marker, err := readMarker(d.r)
	if err != nil {
		return nil, err
	}
	if marker != markerSOI {
		return nil, newErr(KindInvalidMarker, "expected SOI, got marker 0x%02X", marker)
	}
	d.log.Debug("jpeg: SOI")

	fh, jf, err := readHeaders(d.r)
	if err != nil {
		return nil, err
	}
	d.log.WithFields(logrus.Fields{
		"width":      fh.width,
		"height":     fh.height,
		"components": len(fh.components),
		"jfif":       jf.present,
	}).Debug("jpeg: headers parsed, entering scan")

	raster, err := d.decodeScan(ctx, fh)
	if err != nil {
		return nil, err
	}

	marker, err = readMarker(d.r)
	if err != nil {
		return nil, err
	}
	if marker != markerEOI {
		return nil, newErr(KindInvalidMarker, "expected EOI, got marker 0x%02X", marker)
	}
	d.log.Debug("jpeg: EOI")

	return raster, nil
}

// decodeScan decodes the single entropy-coded scan that follows SOS.
// Because the profile is 4:4:4-only, every component shares the same
// sampling factors, so an MCU is exactly one 8x8 block per component
// and the MCU grid is simply the image dimensions rounded up to 8.
func (d *Decoder) decodeScan(ctx context.Context, fh *frameHeader) (*Raster, error) {
	mcuCols := (int(fh.width) + 7) / 8
	mcuRows := (int(fh.height) + 7) / 8

	channels := 1
	if len(fh.components) == 3 {
		channels = 3
	}
	raster := newRaster(int(fh.width), int(fh.height), channels)

	for i := range fh.components {
		fh.components[i].dcPredictor = 0
	}

	br := newBitReader(d.r)

	planes := make([][64]uint8, len(fh.components))
	for row := 0; row < mcuRows; row++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for col := 0; col < mcuCols; col++ {
			for ci := range fh.components {
				comp := &fh.components[ci]
				qt := fh.quantTables[comp.qTableSel]
				if qt == nil {
					return nil, newErr(KindMalformedSegment, "component %d references an unset quantization table", comp.id)
				}

				zz, err := decodeBlock(comp, fh, br)
				if err != nil {
					return nil, err
				}
				natural := dequantizeAndUnzigzag(zz, qt)
				planes[ci] = idct8x8(&natural)
			}

			d.writeBlock(raster, planes, col*8, row*8)
		}
	}

	return raster, nil
}

// writeBlock assembles one decoded MCU's per-component 8x8 sample
// planes into the raster at pixel origin (x0, y0), converting YCbCr to
// RGB when there are 3 components and clipping against the image edges
// (the last MCU column/row commonly overhangs the image when width or
// height is not a multiple of 8).
func (d *Decoder) writeBlock(raster *Raster, planes [][64]uint8, x0, y0 int) {
	for row := 0; row < 8; row++ {
		y := y0 + row
		if y >= raster.Height {
			break
		}
		for col := 0; col < 8; col++ {
			x := x0 + col
			if x >= raster.Width {
				break
			}
			idx := row*8 + col
			if raster.Channels == 1 {
				raster.setGray(x, y, planes[0][idx])
				continue
			}
			r, g, b := ycbcrToRGB(planes[0][idx], planes[1][idx], planes[2][idx])
			raster.setRGB(x, y, r, g, b)
		}
	}
}
