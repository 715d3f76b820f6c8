// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/featseq/featseq/cmd/featseq/cli"
	"github.com/featseq/featseq/lib/seq"
	"github.com/featseq/featseq/lib/wire"
)

type checkParams struct {
	In   string `flag:"in,i" desc:"payload file to read (default stdin)"`
	Diag bool   `flag:"diag" desc:"print CBOR diagnostic notation instead of checking"`
}

func checkCommand() *cli.Command {
	var params checkParams

	return &cli.Command{
		Name:    "check",
		Summary: "Structurally validate a payload",
		Description: `Read an encoded payload and lint its structure: array agreement,
BOS/EOS bracketing, sentinel balance, TYPE-first instructions,
strictly increasing indices, backward-only references, and key ids
resolvable against the embedded vocabulary.

The decoder tolerates most of what check rejects; the point is to
catch a drifting producer before its output lands in a training set.
Exit code 0 means structurally valid; exit code 1 means a violation
was found and printed. I/O and container errors report on stderr as
usual.

With --diag, the payload is printed in RFC 8949 Extended Diagnostic
Notation instead of checked. Unlike JSON output, diagnostic notation
preserves the exact wire representation: integer vs float slots, map
key ordering, and value types. The payload must be CBOR-encoded
(compressed is fine).`,
		Usage:  "featseq check [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Validate a payload file",
				Command:     "featseq check --in bracket.fsq",
			},
			{
				Description: "Validate a payload arriving on a pipe",
				Command:     "featseq encode --in bracket.json | featseq check",
			},
			{
				Description: "Inspect the exact CBOR structure of a payload",
				Command:     "featseq check --in bracket.fsq --diag",
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("check takes no positional arguments, got %q", args[0])
			}

			if params.Diag {
				data, err := readInput(params.In)
				if err != nil {
					return err
				}
				return printDiagnostic(data, os.Stdout)
			}

			payload, err := readPayload(params.In)
			if err != nil {
				return err
			}
			if err := seq.Validate(payload); err != nil {
				fmt.Printf("invalid: %v\n", err)
				return &cli.ExitError{Code: 1}
			}
			fmt.Printf("ok: %d slots\n", payload.Len())
			return nil
		},
	}
}

// printDiagnostic writes the payload's CBOR diagnostic notation to w.
// JSON payloads have no CBOR structure to show and are rejected.
func printDiagnostic(data []byte, w io.Writer) error {
	raw, err := wire.Decompress(data)
	if err != nil {
		return err
	}
	format, err := wire.DetectFormat(raw)
	if err != nil {
		return err
	}
	if format != wire.FormatCBOR {
		return fmt.Errorf("diagnostic notation requires a CBOR payload, got %s", format)
	}

	notation, err := wire.Diagnose(raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, notation)
	return err
}
