// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dlah

import "sync"

const (
	// modulusDivisor is the input-length divisor in the adaptive modulus
	// formula: targets approximately 1200 triggers for large inputs.
	modulusDivisor = 1200

	// parallelThreshold is the input length at or above which
	// Config.EnableParallel may split content hashing across workers.
	parallelThreshold = 1 << 20 // 1 MiB

	// parallelChunkSize is the recommended chunk size for the parallel
	// content hasher. Fixed and documented: the chunking scheme must be
	// invariant across platforms for fingerprints to compare equal.
	parallelChunkSize = 256 * 1024 // 256 KiB
)

// contentModulus returns the adaptive trigger modulus for an input of
// length n: max(minModulus, n / modulusDivisor).
func contentModulus(n, minModulus int) int {
	m := n / modulusDivisor
	if m < minModulus {
		return minModulus
	}
	return m
}

// generateContentBitmap walks data, emitting a feature at every position
// whose rolling BuzHash digest satisfies the trigger predicate, and
// inserts each feature into the returned Bloom bitmap. When cfg allows
// and data is large enough, the work is split across chunkContentBitmap
// calls run concurrently and OR-merged; see generateContentBitmapParallel
// for the chunking contract.
func generateContentBitmap(data []byte, cfg Config) bloomBitmap {
	if len(data) == 0 {
		return bloomBitmap{}
	}

	if cfg.EnableParallel && len(data) >= parallelThreshold {
		return generateContentBitmapParallel(data, cfg.MinModulus)
	}
	return generateContentBitmapSequential(data, cfg.MinModulus)
}

// generateContentBitmapSequential runs the rolling hash, trigger test,
// and Bloom insertion over the whole input in a single pass from a zero
// rolling-hash state.
func generateContentBitmapSequential(data []byte, minModulus int) bloomBitmap {
	modulus := contentModulus(len(data), minModulus)

	var bm bloomBitmap
	var win rollingWindow

	for _, raw := range data {
		h := win.push(normalizeByte(raw))
		if win.full() && isTrigger(h, modulus) {
			bm.insert(h)
		}
	}

	return bm
}

// isTrigger reports whether a rolling-hash value triggers a feature
// emission under the given modulus: H mod M == M - 1. This residue is a
// fixed protocol constant; any other nonzero residue would silently
// produce an incompatible fingerprint stream.
func isTrigger(h uint64, modulus int) bool {
	return h%uint64(modulus) == uint64(modulus-1)
}

// generateContentBitmapParallel partitions data into fixed-size chunks
// (parallelChunkSize), runs chunkContentBitmap on each independently and
// concurrently, and OR-merges the results. Each chunk
// starts from a zero rolling-hash state, so the first windowSize-1 bytes
// of every non-initial chunk can never trigger — a small, bounded,
// accepted difference from the single-pass feature set.
//
// The modulus is computed once from the full input length, not
// per-chunk, so a given input produces the same trigger density
// regardless of how many workers process it.
func generateContentBitmapParallel(data []byte, minModulus int) bloomBitmap {
	modulus := contentModulus(len(data), minModulus)

	numChunks := (len(data) + parallelChunkSize - 1) / parallelChunkSize
	results := make([]bloomBitmap, numChunks)

	var wg sync.WaitGroup
	for i := 0; i < numChunks; i++ {
		start := i * parallelChunkSize
		end := start + parallelChunkSize
		if end > len(data) {
			end = len(data)
		}

		wg.Add(1)
		go func(i, start, end int) {
			defer wg.Done()
			results[i] = chunkContentBitmap(data[start:end], modulus)
		}(i, start, end)
	}
	wg.Wait()

	var merged bloomBitmap
	for i := range results {
		merged.mergeOR(&results[i])
	}
	return merged
}

// chunkContentBitmap runs the rolling hash, trigger test, and Bloom
// insertion over a single chunk from a zero rolling-hash state and an
// empty window, using a modulus computed from the full (un-chunked)
// input length.
func chunkContentBitmap(chunk []byte, modulus int) bloomBitmap {
	var bm bloomBitmap
	var win rollingWindow

	for _, raw := range chunk {
		h := win.push(normalizeByte(raw))
		if win.full() && isTrigger(h, modulus) {
			bm.insert(h)
		}
	}

	return bm
}
