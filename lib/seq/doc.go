// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

// Package seq converts feature lists to and from the flat token
// sequence used for sequence-model training.
//
// The wire form is a [Payload]: four parallel arrays where each
// position is one slot — a key id plus either a discrete value id or a
// rounded float, selected by the numeric flag. Slots group into
// instructions between INS_B/INS_E sentinels; every instruction opens
// with a TYPE slot, and referenceable instructions carry an IDX slot
// holding a session-unique index. Cross-references (an extrude to its
// sketch, a fillet to its edge selections) are discrete slots naming an
// earlier index, so references always point backward.
//
// [Encoder.Encode] is strict: a feature missing a required field, or
// carrying an enum name outside the vocabulary, fails the whole call.
// [Decode] is lenient: it trusts the framing, defaults absent fields,
// and maps unknown ids to "unknown" vocabulary names, so payloads from
// older producers stay readable. [Validate] checks the structural
// invariants the encoder guarantees; run it when a payload comes from
// outside.
package seq
