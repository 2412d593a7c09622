package jpeg

// Marker low bytes, as enumerated in the decoder's segment dispatcher.
// Every marker is 0xFF followed by one of these.
const (
	markerSOI  = 0xD8 // Start Of Image
	markerEOI  = 0xD9 // End Of Image
	markerSOS  = 0xDA // Start Of Scan
	markerDQT  = 0xDB // Define Quantization Table
	markerDHT  = 0xC4 // Define Huffman Table
	markerSOF0 = 0xC0 // Baseline DCT
	markerAPP0 = 0xE0 // Application Segment 0 (JFIF)
	markerRST0 = 0xD0 // Restart marker range start (unsupported)
	markerRST7 = 0xD7 // Restart marker range end (unsupported)
)

// maxComponents is the most components one JPEG scan can carry. The
// core accepts only 1 or 3 components, a check parseSOF0Segment makes
// directly without consulting this constant.
const maxComponents = 4

// zigzag maps a stream (zigzag-scan) position to its natural, row-major
// position in an 8x8 block: natural[zigzag[i]] is filled from stream
// position i. This is the standard JPEG scan pattern.
var zigzag = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// jfifIdentifier is the null-terminated identifier expected in an APP0
// segment for a JFIF file.
var jfifIdentifier = [5]byte{'J', 'F', 'I', 'F', 0}

// jfxxIdentifier is the alternative identifier accepted in an APP0
// segment (JFIF extension).
var jfxxIdentifier = [5]byte{'J', 'F', 'X', 'X', 0}
