// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dlah

// normalizeByte maps a single raw byte to its canonical form. It is pure,
// stateless, and O(1); both the structural and content hashers call it
// inline in their hot loops rather than materializing a normalized copy
// of the input.
//
// Tab, LF, and CR pass through unchanged; other control bytes collapse to
// a space; ASCII letters fold to lowercase; everything else, including
// all bytes >= 0x80, is unchanged.
func normalizeByte(b byte) byte {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return b
	case b <= 0x1F:
		return 0x20
	case b >= 'A' && b <= 'Z':
		return b + 0x20
	default:
		return b
	}
}
