// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dlah

// maxInputSize is the implementation maximum input length. struct_len is
// a 16-bit byte count and the Bloom feature set is keyed off the rolling
// hash alone, so nothing in the pipeline itself bounds input size; this
// ceiling exists purely to give CodeInvalidInput a concrete trigger, per
// §7's "inputs exceeding implementation maxima" wording.
const maxInputSize = 1 << 32

// Generate runs the full Dual-Layer Adaptive Hashing pipeline over data
// under cfg and returns the resulting Fingerprint. It fails only with a
// CodeInvalidConfig error (an out-of-range Config field) or a
// CodeInvalidInput error (data longer than maxInputSize). Empty input is
// not an error: it produces a Fingerprint with a zero-length entropy
// vector and an empty Bloom bitmap.
func Generate(data []byte, cfg Config) (Fingerprint, error) {
	if err := cfg.Validate(); err != nil {
		return Fingerprint{}, err
	}

	if len(data) > maxInputSize {
		return Fingerprint{}, newError(CodeInvalidInput, "input of %d bytes exceeds the %d-byte maximum", len(data), maxInputSize)
	}

	structData := generateStructuralVector(data)
	bloom := generateContentBitmap(data, cfg)

	return Fingerprint{
		structData: structData,
		bloom:      bloom,
	}, nil
}

// CompareRaw is a convenience wrapper equivalent to calling Generate on
// each input and then Compare with cfg.Alpha. It exists so callers who
// only ever compare (never persist or transmit) a fingerprint don't need
// to name the intermediate Fingerprint values.
func CompareRaw(dataA, dataB []byte, cfg Config) (uint8, error) {
	fpA, err := Generate(dataA, cfg)
	if err != nil {
		return 0, err
	}

	fpB, err := Generate(dataB, cfg)
	if err != nil {
		return 0, err
	}

	return Compare(fpA, fpB, cfg.Alpha), nil
}
