// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/featseq/featseq/cmd/featseq/cli"
	"github.com/featseq/featseq/lib/feature"
	"github.com/featseq/featseq/lib/seq"
)

type decodeParams struct {
	In         string `flag:"in,i" desc:"payload file to read (default stdin)"`
	Out        string `flag:"out,o" desc:"feature document to write (default stdout)"`
	Pretty     bool   `flag:"pretty" desc:"indent the feature document"`
	ConfigPath string `flag:"config" desc:"config file (overrides FEATSEQ_CONFIG)"`
}

func decodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a payload into a feature document",
		Description: `Read an encoded payload in any container format (JSON or CBOR,
optionally compressed; detected automatically) and write the
reconstructed feature document as a JSON array in modeling order.

Decoding is lenient: optional fields the producer dropped come back as
defaults, and value ids missing from the embedded vocabulary fall back
to the built-in registry. Only structurally unreadable payloads fail.`,
		Usage:  "featseq decode [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Decode a payload file to a readable document",
				Command:     "featseq decode --in bracket.fsq --pretty",
			},
			{
				Description: "Round-trip a document through the codec",
				Command:     "featseq encode --in bracket.json | featseq decode",
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("decode takes no positional arguments, got %q", args[0])
			}

			cfg, err := loadConfig(params.ConfigPath)
			if err != nil {
				return err
			}

			payload, err := readPayload(params.In)
			if err != nil {
				return err
			}

			features, err := seq.Decode(payload)
			if err != nil {
				return err
			}
			document, err := feature.MarshalDocument(features)
			if err != nil {
				return err
			}

			if params.Pretty || cfg.Pretty {
				var indented bytes.Buffer
				if err := json.Indent(&indented, document, "", "  "); err != nil {
					return fmt.Errorf("indenting document: %w", err)
				}
				document = indented.Bytes()
			}
			document = append(document, '\n')

			return writeOutput(params.Out, document)
		},
	}
}
