// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/featseq/featseq/lib/seq"
)

// Format selects the payload encoding inside a container.
type Format uint8

const (
	// FormatJSON is the canonical interchange encoding: the payload
	// object with its fixed field names (key_ids, val_ids,
	// val_floats, is_numeric, vocab), compact unless pretty-printed.
	FormatJSON Format = 0

	// FormatCBOR is the binary encoding, written with Core
	// Deterministic Encoding so the same payload always produces
	// identical bytes.
	FormatCBOR Format = 1
)

// String returns the flag-level name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// ParseFormat parses a format from its string representation.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return 0, fmt.Errorf("unknown payload format: %q", name)
	}
}

// MarshalOptions configures Marshal. The zero value writes compact
// JSON with no compression.
type MarshalOptions struct {
	// Format selects JSON or CBOR.
	Format Format

	// Compress wraps the encoded payload in a compressed frame.
	// CompressionNone writes the encoding bytes unframed.
	Compress CompressionTag

	// Pretty indents JSON output. Ignored for CBOR.
	Pretty bool
}

// Marshal encodes p per opts: format encoding first, then optional
// compression framing.
func Marshal(p *seq.Payload, opts MarshalOptions) ([]byte, error) {
	var data []byte
	var err error

	switch opts.Format {
	case FormatJSON:
		if opts.Pretty {
			data, err = json.MarshalIndent(p, "", "  ")
		} else {
			data, err = json.Marshal(p)
		}
		if err != nil {
			return nil, fmt.Errorf("encoding payload JSON: %w", err)
		}
	case FormatCBOR:
		data, err = encMode.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encoding payload CBOR: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown payload format: %d", opts.Format)
	}

	return Compress(data, opts.Compress)
}

// Unmarshal decodes a payload from any form Marshal produces:
// compressed frames are opened first, then the encoding is detected
// from the leading bytes.
func Unmarshal(data []byte) (*seq.Payload, error) {
	data, err := Decompress(data)
	if err != nil {
		return nil, err
	}

	format, err := DetectFormat(data)
	if err != nil {
		return nil, err
	}

	var p seq.Payload
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decoding payload JSON: %w", err)
		}
	case FormatCBOR:
		if err := decMode.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decoding payload CBOR: %w", err)
		}
	}
	return &p, nil
}

// DetectFormat reports which encoding data carries. JSON payloads
// open with '{' after optional whitespace; CBOR payloads open with a
// map header byte.
func DetectFormat(data []byte) (Format, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0, fmt.Errorf("empty payload data")
	}

	head := trimmed[0]
	if head == '{' {
		return FormatJSON, nil
	}
	// CBOR major type 5 (map): 0xa0-0xbb definite lengths, 0xbf
	// indefinite. Deterministic encoding only writes definite maps,
	// but reads stay lenient.
	if (head >= 0xa0 && head <= 0xbb) || head == 0xbf {
		return FormatCBOR, nil
	}
	return 0, fmt.Errorf("unrecognized payload encoding (leading byte 0x%02x)", head)
}

// WriteFile marshals p per opts and writes it to path.
func WriteFile(path string, p *seq.Payload, opts MarshalOptions) error {
	data, err := Marshal(p, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	return nil
}

// ReadFile reads the payload stored at path, in any container form.
func ReadFile(path string) (*seq.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	p, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
