// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fuzzyhash/dlah/lib/dlah"
)

// batchJob is the on-disk shape of a --config file: a shared default
// config and a list of file pairs to compare against it.
type batchJob struct {
	Alpha          float64     `yaml:"alpha"`
	MinModulus     int         `yaml:"min_modulus"`
	EnableParallel bool        `yaml:"enable_parallel"`
	Pairs          []batchPair `yaml:"pairs"`
}

type batchPair struct {
	Name string `yaml:"name"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
}

// loadBatchJob reads and parses a batch config file.
func loadBatchJob(path string) (batchJob, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return batchJob{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var job batchJob
	if err := yaml.Unmarshal(raw, &job); err != nil {
		return batchJob{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(job.Pairs) == 0 {
		return batchJob{}, fmt.Errorf("%s: no pairs configured", path)
	}

	return job, nil
}

// config builds a dlah.Config from the job's top-level defaults. Alpha
// and MinModulus fall back to dlah.DefaultConfig when left at zero;
// EnableParallel is taken as written, so an omitted value means false.
func (job batchJob) config() dlah.Config {
	cfg := dlah.DefaultConfig()
	if job.Alpha != 0 {
		cfg.Alpha = job.Alpha
	}
	if job.MinModulus != 0 {
		cfg.MinModulus = job.MinModulus
	}
	cfg.EnableParallel = job.EnableParallel
	return cfg
}

// runBatch compares every configured pair and prints "name: score" one
// line per pair, in declaration order. It continues past a single
// pair's failure (reporting it inline) so one bad path does not abort
// the whole job.
func runBatch(path string) error {
	job, err := loadBatchJob(path)
	if err != nil {
		return err
	}
	cfg := job.config()

	var failures int
	for _, pair := range job.Pairs {
		score, err := comparePaths(pair.A, pair.B, cfg)
		if err != nil {
			fmt.Printf("%s: error: %v\n", pair.Name, err)
			failures++
			continue
		}
		fmt.Printf("%s: %d\n", pair.Name, score)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d pairs failed", failures, len(job.Pairs))
	}
	return nil
}

func comparePaths(pathA, pathB string, cfg dlah.Config) (uint8, error) {
	dataA, err := os.ReadFile(pathA)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", pathA, err)
	}
	dataB, err := os.ReadFile(pathB)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", pathB, err)
	}
	return dlah.CompareRaw(dataA, dataB, cfg)
}
