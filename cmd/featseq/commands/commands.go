// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the featseq CLI command tree: encode, decode,
// check, vocab, and version, dispatched through the cli framework.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/featseq/featseq/cmd/featseq/cli"
	"github.com/featseq/featseq/lib/config"
	"github.com/featseq/featseq/lib/version"
)

// Root builds and returns the complete featseq command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "featseq",
		Description: `Featseq: CAD feature history to token sequence codec.

Encode parametric feature documents into flat token payloads for
sequence-model training, decode payloads back into readable feature
documents, and lint payloads before they land in a dataset.`,
		Subcommands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			checkCommand(),
			vocabCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Printf("featseq %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Encode a feature document into a compact JSON payload",
				Command:     "featseq encode --in bracket.json --out bracket.fsq",
			},
			{
				Description: "Encode to compressed CBOR and print the content digest",
				Command:     "featseq encode --in bracket.json --out bracket.fsq --format cbor --compress zstd --digest",
			},
			{
				Description: "Decode a payload back into a feature document",
				Command:     "featseq decode --in bracket.fsq --pretty",
			},
			{
				Description: "Validate a payload produced by another tool",
				Command:     "featseq check --in bracket.fsq",
			},
			{
				Description: "Print one vocabulary table",
				Command:     "featseq vocab --table KEY",
			},
		},
	}
}

// loadConfig resolves the effective configuration: the explicit
// --config path when given, otherwise FEATSEQ_CONFIG or built-in
// defaults. Environment overrides apply in both cases.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
