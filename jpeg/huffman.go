package jpeg

// huffmanTable is a canonical Huffman code table built from a
// length-count list (JPEG's DHT representation): 16 counts giving the
// number of codes of each length 1..16, followed by the symbols in code
// order. The codeCounts field is indexed by code length.
//
// Decoding uses the classic JPEG reference technique: minCode/maxCode/
// valPtr per bit length, derived once at table-construction time, so
// decodeSymbol is a simple per-length comparison rather than a bit-by-
// bit map lookup. This is one of several representations the design
// notes call out as acceptable (§4.3 of the spec); it was chosen here
// because it needs no large flat lookup table and still decodes a
// 16-bit-max code in at most 16 comparisons.
type huffmanTable struct {
	codeCounts [17]uint8 // codeCounts[1..16]
	symbols    []uint8   // symbols in code order, len(symbols) == sum(codeCounts)

	minCode [17]int32
	maxCode [18]int32 // maxCode[bits]; -1 if no codes of that length
	valPtr  [17]int32
}

// newHuffmanTable builds a canonical Huffman table from the 16 code
// counts and the symbol list that follow them in a DHT segment.
//
// Canonical code assignment: the first code of length 1 is 0; moving
// from length L to L+1 increments the running code and shifts it left
// by one bit.
func newHuffmanTable(codeCounts [16]uint8, symbols []uint8) *huffmanTable {
	t := &huffmanTable{symbols: symbols}
	copy(t.codeCounts[1:], codeCounts[:])

	code := int32(0)
	symbolIdx := int32(0)
	for bits := 1; bits <= 16; bits++ {
		count := int32(t.codeCounts[bits])
		t.minCode[bits] = code
		t.valPtr[bits] = symbolIdx - code
		if count > 0 {
			t.maxCode[bits] = code + count - 1
			symbolIdx += count
		} else {
			t.maxCode[bits] = -1
		}
		code = (code + count) << 1
	}
	t.maxCode[17] = 0x7FFFFFFF

	return t
}

// decodeSymbol reads the next Huffman code from br and returns the
// symbol it encodes. ok is false if the scan ended before a complete
// code could be read. If 16 bits are consumed without a match, the
// table is malformed and an InvalidHuffmanCode error is returned.
func (t *huffmanTable) decodeSymbol(br *bitReader) (symbol uint8, ok bool, err error) {
	code := int32(0)
	for bits := 1; bits <= 16; bits++ {
		bit, ok, err := br.getBit()
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		if bit {
			code = (code << 1) | 1
		} else {
			code = code << 1
		}

		if t.maxCode[bits] >= 0 && code <= t.maxCode[bits] {
			idx := t.valPtr[bits] + code
			if idx < 0 || int(idx) >= len(t.symbols) {
				return 0, false, newErr(KindInvalidHuffmanCode,
					"huffman code resolved to out-of-range symbol index")
			}
			return t.symbols[idx], true, nil
		}
	}
	return 0, false, newErr(KindInvalidHuffmanCode,
		"no matching huffman code after 16 bits")
}

// parseDHTSegment parses one or more Huffman tables out of a DHT
// segment payload (a DHT may carry several tables back to back) and
// installs each into dcTables/acTables by its class and destination id.
func parseDHTSegment(data []byte, dcTables, acTables *[4]*huffmanTable) error {
	pos := 0
	for pos < len(data) {
		class := (data[pos] >> 4) & 0x0F
		id := data[pos] & 0x0F
		pos++
		if class > 1 || id > 3 {
			return newErr(KindMalformedSegment, "DHT table index out of range (class=%d id=%d)", class, id)
		}

		if pos+16 > len(data) {
			return newErr(KindMalformedSegment, "DHT segment too short for code-length counts")
		}
		var counts [16]uint8
		total := 0
		for i := 0; i < 16; i++ {
			counts[i] = data[pos+i]
			total += int(counts[i])
		}
		pos += 16

		if total > 256 {
			return newErr(KindMalformedSegment, "DHT code-length counts sum to %d, more than 256 symbols", total)
		}
		if pos+total > len(data) {
			return newErr(KindMalformedSegment, "DHT segment too short for %d symbols", total)
		}

		symbols := make([]uint8, total)
		copy(symbols, data[pos:pos+total])
		pos += total

		table := newHuffmanTable(counts, symbols)
		if class == 0 {
			dcTables[id] = table
		} else {
			acTables[id] = table
		}
	}
	return nil
}
