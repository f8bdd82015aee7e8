// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// dlah-bench is a command-line driver for the dlah fuzzy-hashing
// library: it fingerprints files, compares pairs of files, and runs
// batch comparison jobs described by a YAML
// config. It exists to give the library a concrete external-facing
// surface without pulling any CLI or file-format concerns into the
// library itself.
package main
