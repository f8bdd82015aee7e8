// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dlah

import "errors"

// Config is a value-typed, immutable-per-call configuration for
// [Generate]. There is no loader and no file format at this layer: a
// Config is a handful of scalars a caller constructs directly or obtains
// from [DefaultConfig].
type Config struct {
	// Alpha is the weight of structural similarity in the combined
	// comparison score, in [0.0, 1.0]. Content similarity receives
	// weight (1 - Alpha).
	Alpha float64

	// MinModulus is the lower bound on the content-trigger modulus. A
	// higher value yields fewer, sparser Bloom insertions. Must be >= 1.
	MinModulus int

	// EnableParallel allows Generate to split content-hashing of inputs
	// of 1 MiB or larger across multiple workers.
	EnableParallel bool
}

// DefaultConfig returns the library's documented defaults: Alpha 0.3,
// MinModulus 16, parallel content-hashing enabled.
func DefaultConfig() Config {
	return Config{
		Alpha:          0.3,
		MinModulus:     16,
		EnableParallel: true,
	}
}

// Validate reports every violation of Config's documented constraints,
// joined with errors.Join so a caller sees the complete picture rather
// than one field at a time. A nil return means the Config is usable as-is.
func (c Config) Validate() error {
	var errs []error

	if c.Alpha < 0.0 || c.Alpha > 1.0 {
		errs = append(errs, newError(CodeInvalidConfig, "alpha %v out of range [0.0, 1.0]", c.Alpha))
	}

	if c.MinModulus < 1 {
		errs = append(errs, newError(CodeInvalidConfig, "min_modulus %d must be >= 1", c.MinModulus))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
