// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dlah

// minBlockSize is the floor on structural block size: see
// structuralBlockSize.
const minBlockSize = 64

// targetSignatureLen is the block-count divisor that keeps the entropy
// vector bounded at roughly 128 packed bytes regardless of input size.
const targetSignatureLen = 256

// structuralBlockSize returns the adaptive block size for an input of
// length n: max(minBlockSize, n / targetSignatureLen). This targets at
// most targetSignatureLen blocks, bounding the entropy vector's length
// independent of n.
func structuralBlockSize(n int) int {
	size := n / targetSignatureLen
	if size < minBlockSize {
		return minBlockSize
	}
	return size
}

// generateStructuralVector divides normalized data into consecutive
// non-overlapping blocks, quantizes each block's Shannon entropy to a
// nibble, and packs the nibbles two per byte (high nibble first). Byte k
// of the result is (nibble[2k] << 4) | nibble[2k+1]; if the block count
// is odd the final low nibble is zero padding. The packed byte length is
// what this package stores and compares against (struct_len in the wire
// format is a byte count, per §6); the padding nibble, when present, is
// treated as real data on both the generation and comparison sides, so
// the two stay consistent with each other.
//
// An empty input yields a zero-length vector.
func generateStructuralVector(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	blockSize := structuralBlockSize(len(data))
	numBlocks := (len(data) + blockSize - 1) / blockSize

	nibbles := make([]uint8, numBlocks)
	for i := 0; i < numBlocks; i++ {
		start := i * blockSize
		end := start + blockSize
		if end > len(data) {
			end = len(data)
		}
		nibbles[i] = quantizeEntropy(normalizedBlockEntropy(data[start:end]))
	}

	return packNibbles(nibbles)
}

// packNibbles packs a slice of 4-bit values (only the low 4 bits of each
// byte are significant) two per output byte, high nibble first.
func packNibbles(nibbles []uint8) []byte {
	packed := make([]byte, (len(nibbles)+1)/2)
	for i, n := range nibbles {
		if i%2 == 0 {
			packed[i/2] = n << 4
		} else {
			packed[i/2] |= n & 0x0F
		}
	}
	return packed
}

// unpackNibbles expands packed bytes back into individual nibbles, high
// nibble first. The result always has 2*len(packed) entries; any padding
// nibble introduced by packNibbles for an odd block count comes back out
// here as a (zero-valued) nibble like any other.
func unpackNibbles(packed []byte) []uint8 {
	nibbles := make([]uint8, 0, len(packed)*2)
	for _, b := range packed {
		nibbles = append(nibbles, b>>4, b&0x0F)
	}
	return nibbles
}
