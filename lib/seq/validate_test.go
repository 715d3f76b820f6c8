// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"errors"
	"strings"
	"testing"

	"github.com/featseq/featseq/lib/feature"
	"github.com/featseq/featseq/lib/vocab"
)

// Everything the encoder emits must pass the checker.
func TestValidateAcceptsEncoderOutput(t *testing.T) {
	tests := []struct {
		name string
		doc  []feature.Feature
	}{
		{"empty", nil},
		{"extrude", []feature.Feature{testExtrude("Extrude1")}},
		{"fillet sets", []feature.Feature{&feature.FilletFeature{
			Name: "Fillet1",
			EdgeSets: []feature.EdgeSet{
				{Radius: feature.Unitless("Radius", 1), Edges: []feature.Selection{edgeSelection(2), edgeSelection(3)}},
				{Radius: feature.Unitless("Radius", 2), Edges: []feature.Selection{edgeSelection(4)}},
			},
		}}},
		{"chamfer distance only", []feature.Feature{&feature.ChamferFeature{
			Name:        "Chamfer1",
			ChamferType: feature.ChamferDistanceOnly,
			Distance:    feature.Unitless("Distance", 0.5),
			Edges:       []feature.Selection{edgeSelection(2)},
		}}},
		{"all kinds", allKindsDocument()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(mustEncode(t, tt.doc)); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestValidateAcceptsMinimalPayload(t *testing.T) {
	if err := Validate(rawPayload()); err != nil {
		t.Errorf("Validate() = %v on a bare BOS/EOS payload", err)
	}
}

func TestValidateRejects(t *testing.T) {
	truncated := mustEncode(t, []feature.Feature{testExtrude("Extrude1")})
	truncated.ValFloats = truncated.ValFloats[:truncated.Len()-1]

	tests := []struct {
		name    string
		payload *Payload
		wantMsg string
	}{
		{
			"array length mismatch",
			truncated,
			"array lengths disagree",
		},
		{
			"below minimum length",
			project([]slot{{key: vocab.KeyBOS}}),
			"want at least BOS and EOS",
		},
		{
			"unknown key id",
			rawPayload([]slot{discrete(9999, 0)}),
			"key id 9999 not in vocabulary",
		},
		{
			"missing BOS",
			project(append(instructionSlots(vocab.TypeSelection, discrete(vocab.KeyIdx, 1)), slot{key: vocab.KeyEOS})),
			"first slot is INS_B, want BOS",
		},
		{
			"missing EOS",
			project(append([]slot{{key: vocab.KeyBOS}}, instructionSlots(vocab.TypeSelection, discrete(vocab.KeyIdx, 1))...)),
			"last slot is INS_E, want EOS",
		},
		{
			"BOS repeated",
			rawPayload([]slot{discrete(vocab.KeyBOS, 0)}),
			"BOS after start",
		},
		{
			"EOS early",
			rawPayload([]slot{discrete(vocab.KeyEOS, 0)}, instructionSlots(vocab.TypeSelection, discrete(vocab.KeyIdx, 1))),
			"EOS before end",
		},
		{
			"nested instruction",
			rawPayload([]slot{
				discrete(vocab.KeyInsB, 0),
				discrete(vocab.KeyType, vocab.TypeSelection),
				discrete(vocab.KeyInsB, 0),
				discrete(vocab.KeyInsE, 0),
			}),
			"INS_B inside an open instruction",
		},
		{
			"unmatched close",
			rawPayload([]slot{discrete(vocab.KeyInsE, 0)}),
			"INS_E without matching INS_B",
		},
		{
			"open instruction at EOS",
			rawPayload([]slot{
				discrete(vocab.KeyInsB, 0),
				discrete(vocab.KeyType, vocab.TypeSelection),
			}),
			"EOS inside an open instruction",
		},
		{
			"instruction without TYPE",
			rawPayload([]slot{discrete(vocab.KeyInsB, 0), discrete(vocab.KeyInsE, 0)}),
			"closed without a TYPE slot",
		},
		{
			"TYPE not first",
			rawPayload([]slot{
				discrete(vocab.KeyInsB, 0),
				discrete(vocab.KeyIdx, 1),
				discrete(vocab.KeyInsE, 0),
			}),
			"starts with IDX, want TYPE",
		},
		{
			"slot outside instruction",
			rawPayload([]slot{numeric(vocab.KeyDist, 5)}),
			"DIST outside any instruction",
		},
		{
			"second IDX in one instruction",
			rawPayload(instructionSlots(vocab.TypeSelection,
				discrete(vocab.KeyIdx, 1),
				discrete(vocab.KeyIdx, 2),
			)),
			"second IDX",
		},
		{
			"index does not increase",
			rawPayload(
				instructionSlots(vocab.TypeSelection, discrete(vocab.KeyIdx, 1)),
				instructionSlots(vocab.TypeSelection, discrete(vocab.KeyIdx, 1)),
			),
			"index 1 does not increase past 1",
		},
		{
			"index zero",
			rawPayload(instructionSlots(vocab.TypeSelection, discrete(vocab.KeyIdx, 0))),
			"index 0 does not increase past 0",
		},
		{
			"forward reference",
			rawPayload(instructionSlots(vocab.TypeExtrude,
				discrete(vocab.KeyIdx, 1),
				discrete(vocab.KeyParent, 5),
			)),
			"references undeclared index 5",
		},
		{
			"self reference",
			rawPayload(instructionSlots(vocab.TypeExtrude,
				discrete(vocab.KeyIdx, 1),
				discrete(vocab.KeyParent, 1),
			)),
			"not before own index 1",
		},
		{
			"repeated key references undeclared index",
			rawPayload(instructionSlots(vocab.TypeFillet,
				discrete(vocab.KeyIdx, 1),
				discrete(vocab.KeyFilletEdgeIdx, 3),
			)),
			"references undeclared index 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.payload)
			if !errors.Is(err, ErrMalformedPayload) {
				t.Fatalf("Validate() error = %v, want ErrMalformedPayload", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantMsg)
			}
		})
	}
}

// Decode tolerates payloads the checker rejects, so long as the
// structure is still readable.
func TestValidateStricterThanDecode(t *testing.T) {
	p := rawPayload(instructionSlots(vocab.TypeRectPattern,
		discrete(vocab.KeyIdx, 1),
		discrete(vocab.KeyRectFeatureIdx, 5),
	))
	if err := Validate(p); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("Validate() error = %v, want ErrMalformedPayload", err)
	}
	if _, err := Decode(p); err != nil {
		t.Errorf("Decode() failed on a payload Validate rejects: %v", err)
	}
}
