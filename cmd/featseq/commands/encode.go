// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/featseq/featseq/cmd/featseq/cli"
	"github.com/featseq/featseq/lib/config"
	"github.com/featseq/featseq/lib/feature"
	"github.com/featseq/featseq/lib/seq"
	"github.com/featseq/featseq/lib/wire"
)

// encodeParams holds the parameters for "featseq encode". Format and
// Compress default to empty rather than concrete values so that
// marshalOptions can tell a flag the user set apart from one the
// config file should fill in.
type encodeParams struct {
	In         string  `flag:"in,i" desc:"feature document to read (default stdin)"`
	Out        string  `flag:"out,o" desc:"payload file to write (default stdout)"`
	Format     string  `flag:"format" desc:"payload encoding: json or cbor"`
	Compress   string  `flag:"compress" desc:"payload compression: none, zstd or lz4"`
	Pretty     bool    `flag:"pretty" desc:"indent JSON output"`
	Digest     bool    `flag:"digest" desc:"print the payload content digest"`
	Tolerance  float64 `flag:"tolerance" desc:"numeric rounding tolerance (0 = encoder default)"`
	ConfigPath string  `flag:"config" desc:"config file (overrides FEATSEQ_CONFIG)"`
}

func encodeCommand() *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode a feature document into a token payload",
		Description: `Read a feature document (a JSON array of feature records in modeling
order; comments and trailing commas are allowed) and write the encoded
token payload.

The payload carries four parallel arrays plus a snapshot of every
vocabulary table, so any consumer can decode it without access to this
binary's registry. Encoding is strict: an unknown feature type, a
missing required field, or an enum name outside the vocabulary fails
the whole document with no partial output.

With --digest, the payload's content digest (fsq-<hex>) is printed
after the payload is written: on stdout when --out names a file, on
stderr when the payload itself occupies stdout.`,
		Usage:  "featseq encode [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Encode a document to a compact JSON payload on stdout",
				Command:     "featseq encode --in bracket.json",
			},
			{
				Description: "Encode to zstd-compressed CBOR",
				Command:     "featseq encode --in bracket.json --out bracket.fsq --format cbor --compress zstd",
			},
			{
				Description: "Capture the content digest for dataset dedup",
				Command:     "DIGEST=$(featseq encode --in bracket.json --out bracket.fsq --digest)",
			},
			{
				Description: "Encode with a coarser rounding tolerance",
				Command:     "featseq encode --in bracket.json --tolerance 0.001",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("encode takes no positional arguments, got %q", args[0])
			}

			cfg, err := loadConfig(params.ConfigPath)
			if err != nil {
				return err
			}
			opts, err := marshalOptions(params.Format, params.Compress, params.Pretty, cfg)
			if err != nil {
				return err
			}

			data, err := readInput(params.In)
			if err != nil {
				return err
			}
			features, err := feature.ParseDocument(data)
			if err != nil {
				return err
			}

			tolerance := params.Tolerance
			if tolerance == 0 {
				tolerance = cfg.Tolerance
			}
			encoder := seq.NewEncoder(seq.EncoderConfig{
				RoundTolerance: tolerance,
				Logger:         logger,
			})
			payload, err := encoder.Encode(features)
			if err != nil {
				return err
			}

			if isStdout(params.Out) {
				encoded, err := wire.Marshal(payload, opts)
				if err != nil {
					return err
				}
				if opts.Format == wire.FormatJSON && opts.Compress == wire.CompressionNone {
					encoded = append(encoded, '\n')
				}
				if err := writeOutput(params.Out, encoded); err != nil {
					return err
				}
			} else if err := wire.WriteFile(params.Out, payload, opts); err != nil {
				return err
			}

			if params.Digest {
				digest, err := wire.Digest(payload)
				if err != nil {
					return err
				}
				// Keep the payload stream clean when it is on stdout.
				if isStdout(params.Out) {
					fmt.Fprintln(os.Stderr, wire.FormatDigest(digest))
				} else {
					fmt.Println(wire.FormatDigest(digest))
				}
			}
			return nil
		},
	}
}

// marshalOptions resolves the wire container options from flags and
// configuration. A flag set on the command line wins; an unset flag
// falls back to the config value (which is itself validated, so the
// parse errors here can only come from flag input).
func marshalOptions(format, compress string, pretty bool, cfg *config.Config) (wire.MarshalOptions, error) {
	if format == "" {
		format = cfg.Format
	}
	if compress == "" {
		compress = cfg.Compress
	}

	parsedFormat, err := wire.ParseFormat(format)
	if err != nil {
		return wire.MarshalOptions{}, err
	}
	parsedCompress, err := wire.ParseCompressionTag(compress)
	if err != nil {
		return wire.MarshalOptions{}, err
	}

	return wire.MarshalOptions{
		Format:   parsedFormat,
		Compress: parsedCompress,
		Pretty:   pretty || cfg.Pretty,
	}, nil
}
