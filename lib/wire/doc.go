// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire stores payloads in files: a JSON encoding for
// interchange, a deterministic CBOR encoding for compact byte-stable
// storage, optional whole-payload compression behind a tagged frame,
// and keyed BLAKE3 content digests.
//
// [Marshal] produces bytes in any combination of format and
// compression; [Unmarshal] reads them all back, detecting the
// container shape from the bytes themselves. [Digest] fingerprints a
// payload through its Core Deterministic Encoding, so two payloads
// are identical exactly when their digests match, regardless of which
// container they were stored in.
package wire
