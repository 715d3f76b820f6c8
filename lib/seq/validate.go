// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"

	"github.com/featseq/featseq/lib/vocab"
)

// referenceKeys are scalar slots whose value names another
// instruction's index. The repeatable keys are references too and are
// checked alongside these.
var referenceKeys = map[string]bool{
	"PARENT":                true,
	"REFER_PLANE_IDX":       true,
	"EXTENT_ONE":            true,
	"EXTENT_TWO":            true,
	"HOLE_EXTENT":           true,
	"TOFACE_ID":             true,
	"FROMFACE_ID":           true,
	"CHAMFER_FACE_IDX":      true,
	"MIRROR_PLANE_FACE_IDX": true,
}

// Validate structurally lints a payload without decoding it: array
// agreement, BOS/EOS bracketing, sentinel balance and non-nesting,
// TYPE-first instructions, strictly increasing indices, backward-only
// references, and every key id resolvable against the payload's own
// vocabulary. Decode tolerates most of what Validate rejects; the
// checker exists to catch drifting producers before their output
// lands in a training set.
func Validate(p *Payload) error {
	if err := p.checkLengths(); err != nil {
		return err
	}
	if p.Len() < 2 {
		return fmt.Errorf("payload has %d slots, want at least BOS and EOS: %w", p.Len(), ErrMalformedPayload)
	}
	key := p.Vocab.Table("KEY", vocab.Key)

	names := make([]string, p.Len())
	for i, id := range p.KeyIDs {
		name, ok := key.Name(id)
		if !ok {
			return fmt.Errorf("slot %d: key id %d not in vocabulary: %w", i, id, ErrMalformedPayload)
		}
		names[i] = name
	}
	if names[0] != "BOS" {
		return fmt.Errorf("first slot is %s, want BOS: %w", names[0], ErrMalformedPayload)
	}
	if last := names[p.Len()-1]; last != "EOS" {
		return fmt.Errorf("last slot is %s, want EOS: %w", last, ErrMalformedPayload)
	}

	var (
		open       bool
		expectType bool
		maxIdx     int64
		curIdx     int64
		seen       = make(map[int64]bool)
	)
	for i, name := range names {
		switch name {
		case "BOS":
			if i != 0 {
				return fmt.Errorf("slot %d: BOS after start of sequence: %w", i, ErrMalformedPayload)
			}
		case "EOS":
			if i != p.Len()-1 {
				return fmt.Errorf("slot %d: EOS before end of sequence: %w", i, ErrMalformedPayload)
			}
			if open {
				return fmt.Errorf("slot %d: EOS inside an open instruction: %w", i, ErrMalformedPayload)
			}
		case "INS_B":
			if open {
				return fmt.Errorf("slot %d: INS_B inside an open instruction: %w", i, ErrMalformedPayload)
			}
			open, expectType, curIdx = true, true, 0
		case "INS_E":
			if !open {
				return fmt.Errorf("slot %d: INS_E without matching INS_B: %w", i, ErrMalformedPayload)
			}
			if expectType {
				return fmt.Errorf("slot %d: instruction closed without a TYPE slot: %w", i, ErrMalformedPayload)
			}
			open = false
		default:
			if !open {
				return fmt.Errorf("slot %d: %s outside any instruction: %w", i, name, ErrMalformedPayload)
			}
			if expectType && name != "TYPE" {
				return fmt.Errorf("slot %d: instruction starts with %s, want TYPE: %w", i, name, ErrMalformedPayload)
			}
			expectType = false
			switch {
			case name == "IDX":
				if curIdx != 0 {
					return fmt.Errorf("slot %d: second IDX in one instruction: %w", i, ErrMalformedPayload)
				}
				idx := p.slotAt(i).asInt()
				if idx <= maxIdx {
					return fmt.Errorf("slot %d: index %d does not increase past %d: %w", i, idx, maxIdx, ErrMalformedPayload)
				}
				seen[idx] = true
				maxIdx, curIdx = idx, idx
			case referenceKeys[name] || repeatKeys[name]:
				ref := p.slotAt(i).asInt()
				if !seen[ref] {
					return fmt.Errorf("slot %d: %s references undeclared index %d: %w", i, name, ref, ErrMalformedPayload)
				}
				if curIdx != 0 && ref >= curIdx {
					return fmt.Errorf("slot %d: %s references index %d, not before own index %d: %w", i, name, ref, curIdx, ErrMalformedPayload)
				}
			}
		}
	}
	return nil
}
