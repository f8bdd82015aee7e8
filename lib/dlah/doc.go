// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dlah implements Dual-Layer Adaptive Hashing, a fuzzy-hashing
// pipeline that turns an arbitrary byte slice into a compact, fixed-ceiling
// fingerprint and compares any two such fingerprints with a bounded
// similarity score in [0, 100].
//
// The package is organized in layers, each usable independently:
//
//   - Normalization: a stateless per-byte canonicalization (case-fold,
//     control-byte collapse) consumed identically by both hashers below.
//
//   - Structural hashing: the input is sliced into adaptively-sized blocks,
//     each block's Shannon entropy is quantized to a 4-bit nibble, and the
//     nibbles are packed two-per-byte into an entropy vector bounded at
//     256 bytes regardless of input size.
//
//   - Content hashing: a 64-byte-window BuzHash rolling digest walks the
//     normalized stream; an adaptive modulus trigger emits feature hashes
//     at a target density independent of input size, each inserted into a
//     fixed 8192-bit Bloom filter via 5 independent FxHash-family indices.
//     Inputs of a megabyte or more may be content-hashed in parallel
//     chunks, OR-merged into the final bitmap.
//
//   - Fingerprint codec: a fixed binary layout (magic, version, struct
//     length, 1024-byte bloom bitmap, packed entropy vector) that is a
//     bijection on well-formed input and rejects anything else.
//
//   - Comparison: Levenshtein distance over the two structural nibble
//     sequences and Jaccard similarity over the two Bloom bitmaps, blended
//     by a caller-supplied weight and floored to an integer 0-100.
//
// The package has no I/O, no cryptographic pretensions, and no shared
// mutable state: the BuzHash lookup table and the five Bloom seeds are
// process-wide read-only constants, and every exported function is a pure
// transform of its arguments.
package dlah
