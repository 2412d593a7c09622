package jpeg

import "testing"

func TestIDCT8x8AllZero(t *testing.T) {
	var coeffs block
	samples := idct8x8(&coeffs)
	for i, s := range samples {
		if s != 128 {
			t.Fatalf("sample %d: got %d, want 128 (flat mid-gray)", i, s)
		}
	}
}

func TestIDCT8x8DCOnly(t *testing.T) {
	var coeffs block
	coeffs[0] = 800 // a pure-DC block should reconstruct to a flat plane
	samples := idct8x8(&coeffs)
	const want = 100 + 128 // DC/8 + level shift
	for i, s := range samples {
		if s != want {
			t.Fatalf("sample %d: got %d, want %d", i, s, want)
		}
	}
}

func TestIDCT8x8Clamps(t *testing.T) {
	var coeffs block
	coeffs[0] = 32760 // large enough to overflow 255 after level shift
	samples := idct8x8(&coeffs)
	for i, s := range samples {
		if s != 255 {
			t.Fatalf("sample %d: got %d, want clamped 255", i, s)
		}
	}

	coeffs[0] = -32760
	samples = idct8x8(&coeffs)
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample %d: got %d, want clamped 0", i, s)
		}
	}
}
