// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/featseq/featseq/lib/feature"
	"github.com/featseq/featseq/lib/geometry"
	"github.com/featseq/featseq/lib/vocab"
)

// DefaultRoundTolerance is the rounding tolerance applied to every
// numeric slot when EncoderConfig.RoundTolerance is zero.
const DefaultRoundTolerance = 1e-6

// EncoderConfig configures an Encoder. The zero value is usable.
type EncoderConfig struct {
	// RoundTolerance bounds the precision of numeric slots: each float
	// is rounded to the decimal digit count implied by the tolerance
	// before it is written. Zero means DefaultRoundTolerance.
	RoundTolerance float64

	// Logger receives debug records for recoverable oddities, such as
	// a mirror feature naming a feature that was never encoded. Nil
	// discards them.
	Logger *slog.Logger
}

// Encoder turns feature lists into token-sequence payloads. It is
// stateful across a single Encode call only; each call starts from a
// fresh index space and name registry. An Encoder is not safe for
// concurrent use.
type Encoder struct {
	tolerance float64
	logger    *slog.Logger

	slots   []slot
	nextIdx int64
	names   map[string][]int64
}

// NewEncoder returns an Encoder with the given configuration.
func NewEncoder(cfg EncoderConfig) *Encoder {
	if cfg.RoundTolerance == 0 {
		cfg.RoundTolerance = DefaultRoundTolerance
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Encoder{
		tolerance: cfg.RoundTolerance,
		logger:    cfg.Logger,
	}
}

// Encode converts features with a default-configured Encoder.
func Encode(features []feature.Feature) (*Payload, error) {
	return NewEncoder(EncoderConfig{}).Encode(features)
}

// Encode converts a feature list into a payload. Encoding is strict
// and all-or-nothing: a feature missing a required field, carrying an
// enum name outside the registry, or of a type without a codec fails
// the whole call and returns a nil payload.
func (e *Encoder) Encode(features []feature.Feature) (*Payload, error) {
	e.reset()
	e.pushDiscrete(vocab.KeyBOS, 0)
	for i, f := range features {
		if f == nil {
			return nil, fmt.Errorf("feature %d: nil: %w", i, ErrUnsupportedFeature)
		}
		codec, ok := kinds[f.FeatureType()]
		if !ok {
			return nil, fmt.Errorf("feature %d: %q: %w", i, f.FeatureType(), ErrUnsupportedFeature)
		}
		indices, err := codec.encode(e, f)
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s): %w", i, f.FeatureType(), err)
		}
		e.registerName(f.FeatureName(), indices)
	}
	e.pushDiscrete(vocab.KeyEOS, 0)
	return project(e.slots), nil
}

func (e *Encoder) reset() {
	e.slots = e.slots[:0]
	e.nextIdx = 1
	e.names = make(map[string][]int64)
}

// reserveIndex hands out the next session-unique instruction index.
func (e *Encoder) reserveIndex() int64 {
	idx := e.nextIdx
	e.nextIdx++
	return idx
}

func (e *Encoder) pushDiscrete(key, id int64) {
	e.slots = append(e.slots, slot{key: key, id: id})
}

func (e *Encoder) pushNumeric(key int64, v float64) {
	e.slots = append(e.slots, slot{key: key, f: geometry.Round(v, e.tolerance), numeric: true})
}

// begin opens an instruction: the INS_B sentinel followed by the
// mandatory TYPE slot.
func (e *Encoder) begin(typeID int64) {
	e.pushDiscrete(vocab.KeyInsB, 0)
	e.pushDiscrete(vocab.KeyType, typeID)
}

func (e *Encoder) end() {
	e.pushDiscrete(vocab.KeyInsE, 0)
}

// registerName binds a feature's name to its instruction indices so
// later features can reference it by name. A fillet owns one index per
// edge set; every other kind owns exactly one. Unnamed features are
// not referenceable; on a duplicate name the first binding wins.
func (e *Encoder) registerName(name string, indices []int64) {
	if name == "" || len(indices) == 0 {
		return
	}
	if _, ok := e.names[name]; !ok {
		e.names[name] = indices
	}
}

// resolveNames maps feature names to instruction indices, dropping
// names that never encoded. Misses are logged, not fatal: a mirror or
// pattern may legitimately target a feature outside the sequence.
func (e *Encoder) resolveNames(names []string) []int64 {
	out := make([]int64, 0, len(names))
	for _, name := range names {
		indices, ok := e.names[name]
		if !ok {
			e.logger.Debug("referenced feature not in sequence", "name", name)
			continue
		}
		out = append(out, indices...)
	}
	return out
}
