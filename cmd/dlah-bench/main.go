// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/fuzzyhash/dlah/lib/dlah"
)

const programName = "dlah-bench"

func main() {
	os.Exit(run())
}

func run() int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var (
		alpha      float64
		minModulus int
		parallel   bool
		configPath string
		showHelp   bool
	)

	flagSet := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	flagSet.Float64Var(&alpha, "alpha", dlah.DefaultConfig().Alpha, "structural-similarity weight in [0,1]")
	flagSet.IntVar(&minModulus, "min-modulus", dlah.DefaultConfig().MinModulus, "lower bound on the content-trigger modulus")
	flagSet.BoolVar(&parallel, "parallel", dlah.DefaultConfig().EnableParallel, "enable parallel content hashing for large inputs")
	flagSet.StringVar(&configPath, "config", "", "run a batch comparison job from a YAML config instead of the command-line arguments")
	flagSet.BoolVarP(&showHelp, "help", "h", false, "show help")

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println(programName, "(dlah fuzzy-hashing reference driver)")
		return 0
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printUsage(flagSet)
			return 0
		}
		logger.Error("parsing flags", "error", err)
		return 2
	}

	if showHelp {
		printUsage(flagSet)
		return 0
	}

	if configPath != "" {
		if err := runBatch(configPath); err != nil {
			logger.Error("batch job failed", "error", err)
			return 1
		}
		return 0
	}

	cfg := dlah.Config{Alpha: alpha, MinModulus: minModulus, EnableParallel: parallel}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 2
	}

	args := flagSet.Args()
	switch len(args) {
	case 0:
		printUsage(flagSet)
		return 2
	case 1:
		return runGenerate(logger, args[0], cfg)
	case 2:
		return runCompare(logger, args[0], args[1], cfg)
	default:
		logger.Error("too many positional arguments", "count", len(args))
		printUsage(flagSet)
		return 2
	}
}

// runGenerate fingerprints a single file and prints the hex-encoded
// serialized fingerprint to stdout.
func runGenerate(logger *slog.Logger, path string, cfg dlah.Config) int {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading file", "path", path, "error", err)
		return 1
	}

	fp, err := dlah.Generate(data, cfg)
	if err != nil {
		logger.Error("generating fingerprint", "path", path, "error", err)
		return 1
	}

	fmt.Println(hex.EncodeToString(fp.Serialize()))
	logger.Debug("generated fingerprint", "path", path, "fingerprint", fp.String())
	return 0
}

// runCompare fingerprints two files and prints their similarity score.
func runCompare(logger *slog.Logger, pathA, pathB string, cfg dlah.Config) int {
	score, err := comparePaths(pathA, pathB, cfg)
	if err != nil {
		logger.Error("comparing files", "a", pathA, "b", pathB, "error", err)
		return 1
	}

	fmt.Println(score)
	return 0
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `%s — fingerprint and compare files with dual-layer adaptive hashing.

Usage:
  %s [flags] <file>              fingerprint a single file, print hex
  %s [flags] <file-a> <file-b>   fingerprint both files, print their similarity score [0,100]
  %s --config job.yaml           run a batch comparison job

Flags:
`, programName, programName, programName, programName)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
