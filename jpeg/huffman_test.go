package jpeg

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHuffmanTableDecodeSymbol(t *testing.T) {
	// Two 1-bit codes: "0" -> symbol 0x05, "1" -> symbol 0x09.
	var counts [16]uint8
	counts[0] = 2
	table := newHuffmanTable(counts, []uint8{0x05, 0x09})

	r := bufio.NewReader(bytes.NewReader([]byte{0b10000000, 0xFF, 0xD9}))
	br := newBitReader(r)

	sym, ok, err := table.decodeSymbol(br)
	if err != nil || !ok {
		t.Fatalf("first symbol: err=%v ok=%v", err, ok)
	}
	if sym != 0x09 {
		t.Fatalf("first symbol = 0x%02X, want 0x09", sym)
	}

	sym, ok, err = table.decodeSymbol(br)
	if err != nil || !ok {
		t.Fatalf("second symbol: err=%v ok=%v", err, ok)
	}
	if sym != 0x05 {
		t.Fatalf("second symbol = 0x%02X, want 0x05", sym)
	}
}

func TestParseDHTSegmentRejectsOversizedTable(t *testing.T) {
	payload := make([]byte, 1+16)
	payload[0] = 0x00 // class 0 (DC), id 0
	for i := 0; i < 16; i++ {
		payload[1+i] = 255 // sums to 255*16, far past 256
	}

	var dc, ac [4]*huffmanTable
	err := parseDHTSegment(payload, &dc, &ac)
	if err == nil {
		t.Fatal("expected an error for an oversized code-length table")
	}
	de, ok := AsDecodeError(err)
	if !ok || de.Kind != KindMalformedSegment {
		t.Fatalf("got error %v, want a KindMalformedSegment DecodeError", err)
	}
}

func TestParseDHTSegmentMultipleTables(t *testing.T) {
	// One DC table (class 0, id 0) with a single 1-bit code, followed
	// immediately by one AC table (class 1, id 0) with a single 1-bit code.
	var payload []byte
	counts := make([]byte, 16)
	counts[0] = 1
	payload = append(payload, 0x00) // class 0, id 0
	payload = append(payload, counts...)
	payload = append(payload, 0x02)
	payload = append(payload, 0x10) // class 1, id 0
	payload = append(payload, counts...)
	payload = append(payload, 0x00)

	var dc, ac [4]*huffmanTable
	if err := parseDHTSegment(payload, &dc, &ac); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dc[0] == nil || ac[0] == nil {
		t.Fatalf("expected both DC[0] and AC[0] to be installed")
	}
	if diff := cmp.Diff([]uint8{0x02}, dc[0].symbols); diff != "" {
		t.Fatalf("DC table symbols mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{0x00}, ac[0].symbols); diff != "" {
		t.Fatalf("AC table symbols mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDHTSegmentLaterTableOverridesEarlier(t *testing.T) {
	counts := make([]byte, 16)
	counts[0] = 1

	var dc, ac [4]*huffmanTable
	first := append([]byte{0x00}, append(append([]byte{}, counts...), 0x11)...)
	if err := parseDHTSegment(first, &dc, &ac); err != nil {
		t.Fatalf("installing first table: %v", err)
	}
	if diff := cmp.Diff([]uint8{0x11}, dc[0].symbols); diff != "" {
		t.Fatalf("first install mismatch (-want +got):\n%s", diff)
	}

	second := append([]byte{0x00}, append(append([]byte{}, counts...), 0x22)...)
	if err := parseDHTSegment(second, &dc, &ac); err != nil {
		t.Fatalf("installing replacement table: %v", err)
	}
	if diff := cmp.Diff([]uint8{0x22}, dc[0].symbols); diff != "" {
		t.Fatalf("a later DHT for the same class/id should replace the earlier table (-want +got):\n%s", diff)
	}
}
