// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/featseq/featseq/lib/seq"
	"github.com/featseq/featseq/lib/wire"
)

// readInput returns the contents of the file named by path, or
// everything on stdin when path is empty or "-". Every command accepts
// its input this way, so pipelines and files interchange freely.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes data to the file named by path, or to stdout when
// path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// isStdout reports whether path addresses stdout rather than a file.
func isStdout(path string) bool {
	return path == "" || path == "-"
}

// readPayload loads an encoded payload from the file named by path, or
// from stdin when path is empty or "-". The container format is
// detected automatically; file reads carry the path in their errors.
func readPayload(path string) (*seq.Payload, error) {
	if isStdout(path) {
		data, err := readInput(path)
		if err != nil {
			return nil, err
		}
		return wire.Unmarshal(data)
	}
	return wire.ReadFile(path)
}
