// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"

	"github.com/featseq/featseq/lib/vocab"
)

// Payload is the wire form of an encoded feature list: four parallel
// arrays plus the vocabulary snapshot that makes them self-describing.
// Position i across the arrays is one slot. Exactly one of ValIDs[i]
// and ValFloats[i] is meaningful, selected by IsNumeric[i]; the other
// is zero.
type Payload struct {
	KeyIDs    []int64        `json:"key_ids" cbor:"key_ids"`
	ValIDs    []int64        `json:"val_ids" cbor:"val_ids"`
	ValFloats []float64      `json:"val_floats" cbor:"val_floats"`
	IsNumeric []int64        `json:"is_numeric" cbor:"is_numeric"`
	Vocab     vocab.Snapshot `json:"vocab" cbor:"vocab"`
}

// Len returns the number of slots.
func (p *Payload) Len() int { return len(p.KeyIDs) }

// checkLengths verifies the four arrays agree on length.
func (p *Payload) checkLengths() error {
	n := len(p.KeyIDs)
	if len(p.ValIDs) != n || len(p.ValFloats) != n || len(p.IsNumeric) != n {
		return fmt.Errorf("%w: array lengths disagree (key_ids %d, val_ids %d, val_floats %d, is_numeric %d)",
			ErrMalformedPayload, n, len(p.ValIDs), len(p.ValFloats), len(p.IsNumeric))
	}
	return nil
}

// slot is the encoder's internal representation of one position. The
// parallel arrays are its projection, produced at finalization.
type slot struct {
	key     int64
	id      int64
	f       float64
	numeric bool
}

// project renders a slot buffer as a Payload, embedding a snapshot of
// every registry table.
func project(slots []slot) *Payload {
	p := &Payload{
		KeyIDs:    make([]int64, len(slots)),
		ValIDs:    make([]int64, len(slots)),
		ValFloats: make([]float64, len(slots)),
		IsNumeric: make([]int64, len(slots)),
		Vocab:     vocab.TakeSnapshot(),
	}
	for i, s := range slots {
		p.KeyIDs[i] = s.key
		if s.numeric {
			p.ValFloats[i] = s.f
			p.IsNumeric[i] = 1
		} else {
			p.ValIDs[i] = s.id
		}
	}
	return p
}
