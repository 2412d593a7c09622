// Package jpeg decodes baseline (sequential DCT) JFIF images into raw
// 8-bit-per-channel rasters.
//
// It covers the baseline profile only: 8-bit sample precision, 1 or 3
// components, Huffman entropy coding, and 4:4:4 (unsubsampled) chroma.
// Progressive, hierarchical, arithmetic-coded and 12-bit JPEG are out of
// scope and surface as an UnsupportedProfile error.
package jpeg
