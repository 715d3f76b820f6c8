// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

// Package vocab defines the fixed vocabulary tables of the feature
// sequence format: integer identities for slot keys, instruction
// kinds, operations, extent kinds, chamfer kinds, pattern spacing and
// compute kinds, surface/edge classifications, and entity kinds.
//
// Table values are wire format. Payloads produced by older revisions
// of the codec must stay decodable, so existing assignments are never
// renumbered; new names only ever take unused ids.
//
// Every table is immutable after package init and safe for concurrent
// readers. [TakeSnapshot] produces the deep copy that the encoder
// embeds in payloads, making them self-describing: a decoder uses the
// embedded snapshot first and falls back to this package's tables only
// for sub-tables a historical payload omitted.
//
// This package depends on no other featseq packages.
package vocab
