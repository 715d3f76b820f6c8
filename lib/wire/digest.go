// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/featseq/featseq/lib/seq"
)

// Hash is a 32-byte BLAKE3 payload digest.
type Hash [32]byte

// payloadDomainKey is the 32-byte key for BLAKE3 keyed hashing. The
// fixed key separates payload digests from every other BLAKE3 use;
// its bytes are the ASCII domain name, zero-padded, so the key stays
// readable in hex dumps without giving up any property of keyed mode.
var payloadDomainKey = [32]byte{
	'f', 'e', 'a', 't', 's', 'e', 'q', '.', 'p', 'a', 'y', 'l', 'o', 'a', 'd', 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Digest computes the content digest of p: a keyed BLAKE3 hash over
// its Core Deterministic Encoding. Two payloads carry the same digest
// exactly when their arrays and vocabulary snapshot are identical,
// independent of the container they were stored in. Used for dataset
// deduplication and determinism checks.
func Digest(p *seq.Payload) (Hash, error) {
	data, err := encMode.Marshal(p)
	if err != nil {
		return Hash{}, fmt.Errorf("encoding payload for digest: %w", err)
	}
	return keyedHash(payloadDomainKey, data), nil
}

// FormatDigest returns the reference form of a digest: "fsq-" followed
// by the full hex encoding. This is the format used in CLI output and
// dataset manifests.
func FormatDigest(h Hash) string {
	return "fsq-" + hex.EncodeToString(h[:])
}

// ParseDigest parses the "fsq-<hex>" reference form.
func ParseDigest(s string) (Hash, error) {
	var h Hash
	rest, ok := strings.CutPrefix(s, "fsq-")
	if !ok {
		return h, fmt.Errorf(`payload digest %q does not start with "fsq-"`, s)
	}
	decoded, err := hex.DecodeString(rest)
	if err != nil {
		return h, fmt.Errorf("parsing payload digest: %w", err)
	}
	if len(decoded) != 32 {
		return h, fmt.Errorf("payload digest is %d bytes, want 32", len(decoded))
	}
	copy(h[:], decoded)
	return h, nil
}

// keyedHash computes the BLAKE3 keyed hash of data.
func keyedHash(key [32]byte, data []byte) Hash {
	// NewKeyed only fails on a wrong key length, which the fixed-size
	// array rules out.
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("wire: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var h Hash
	copy(h[:], hasher.Sum(nil))
	return h
}
