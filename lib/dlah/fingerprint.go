// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dlah

import (
	"encoding/binary"
	"fmt"
)

// Fingerprint format constants. These are protocol constants: changing
// them invalidates every fingerprint ever produced by this package.
const (
	fingerprintMagic   byte = 0x48
	fingerprintVersion byte = 0x01

	// fingerprintHeaderSize is magic + version + 2-byte struct_len.
	fingerprintHeaderSize = 4

	// maxStructLen bounds struct_len: the entropy vector is packed two
	// nibbles per byte and structuralBlockSize targets about
	// targetSignatureLen nibbles (at most 260, because the block size is
	// rounded down), so the packed length never exceeds 130 bytes in
	// practice, but the wire format reserves headroom up to 256 per §6.
	maxStructLen = 256
)

// Fingerprint is the immutable product of one [Generate] call: an
// entropy vector (packed nibbles) and a Bloom bitmap. Fingerprints are
// freely copyable and comparable with [Compare].
type Fingerprint struct {
	// structData holds the packed entropy vector, high-nibble-first.
	structData []byte

	// bloom is the 8192-bit content bitmap.
	bloom bloomBitmap
}

// structuralNibbles returns the unpacked entropy-vector nibbles: always
// 2*len(structData) entries.
func (fp Fingerprint) structuralNibbles() []uint8 {
	return unpackNibbles(fp.structData)
}

// Serialize encodes fp into the canonical binary layout:
//
//	offset  size  field
//	0       1     magic (0x48)
//	1       1     version (0x01)
//	2       2     struct_len, little-endian
//	4       1024  bloom bitmap, 128 little-endian 64-bit words
//	1028    ...   packed structural data (struct_len bytes)
//
// The result is always 1028 + struct_len bytes, with struct_len equal to
// len(fp's packed entropy vector).
func (fp Fingerprint) Serialize() []byte {
	structLen := len(fp.structData)
	out := make([]byte, fingerprintHeaderSize+bloomSizeBytes+structLen)

	out[0] = fingerprintMagic
	out[1] = fingerprintVersion
	binary.LittleEndian.PutUint16(out[2:4], uint16(structLen))

	copy(out[4:4+bloomSizeBytes], fp.bloom.bytes())
	copy(out[4+bloomSizeBytes:], fp.structData)

	return out
}

// Deserialize parses the canonical binary layout produced by
// [Fingerprint.Serialize]. Trailing bytes beyond the declared struct_len
// are ignored, not rejected, to permit outer framing; see [Code] for the
// malformed-input cases that do fail.
func Deserialize(data []byte) (Fingerprint, error) {
	// A buffer shorter than the fixed header ("too short" in §4.5's
	// informal error list) has no struct_len field to even read, so it
	// is reported as a truncated struct — the taxonomy in §7 recognizes
	// no separate kind for it.
	if len(data) < fingerprintHeaderSize {
		return Fingerprint{}, newError(CodeTruncatedStruct, "buffer of %d bytes is shorter than the %d-byte header", len(data), fingerprintHeaderSize)
	}

	if data[0] != fingerprintMagic {
		return Fingerprint{}, newError(CodeBadMagic, "first byte is 0x%02x, want 0x%02x", data[0], fingerprintMagic)
	}

	if data[1] != fingerprintVersion {
		return Fingerprint{}, newError(CodeUnsupportedVersion, "version 0x%02x is not supported", data[1])
	}

	structLen := int(binary.LittleEndian.Uint16(data[2:4]))

	if len(data) < fingerprintHeaderSize+bloomSizeBytes {
		return Fingerprint{}, newError(CodeTruncatedStruct, "buffer of %d bytes is shorter than the %d-byte header+bloom section", len(data), fingerprintHeaderSize+bloomSizeBytes)
	}

	remaining := data[fingerprintHeaderSize+bloomSizeBytes:]
	if structLen > len(remaining) {
		return Fingerprint{}, newError(CodeTruncatedStruct, "struct_len %d exceeds %d remaining bytes", structLen, len(remaining))
	}

	bloom := bloomFromBytes(data[fingerprintHeaderSize : fingerprintHeaderSize+bloomSizeBytes])

	structData := make([]byte, structLen)
	copy(structData, remaining[:structLen])

	return Fingerprint{
		structData: structData,
		bloom:      bloom,
	}, nil
}

// Size returns the byte length Serialize would produce for fp: always
// 1028 + len(packed entropy vector), at most 1028 + maxStructLen.
func (fp Fingerprint) Size() int {
	return fingerprintHeaderSize + bloomSizeBytes + len(fp.structData)
}

// String returns a one-line human-readable summary: entropy-vector
// length in nibbles, Bloom population count, and total serialized size.
// Intended for logs and debugging, not for comparison or persistence.
func (fp Fingerprint) String() string {
	return fmt.Sprintf("dlah.Fingerprint(nibbles=%d, bloom_bits=%d, size=%dB)",
		len(fp.structData)*2, fp.bloom.popCount(), fp.Size())
}
