// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"
	"strings"

	"github.com/featseq/featseq/lib/feature"
	"github.com/featseq/featseq/lib/vocab"
)

// encodeExtent emits the selections an extent references and then the
// Extent instruction itself, returning the instruction's index.
// extentType picks the variant; it accepts both the vocabulary
// spelling ("kDistanceExtent") and the record spelling
// ("DistanceExtent"). The record's own Type field is informational and
// never overrides it. A type outside the seven variants is a
// vocabulary error.
func (e *Encoder) encodeExtent(extentType string, x *feature.Extent) (int64, error) {
	if x == nil {
		x = &feature.Extent{}
	}
	switch strings.TrimPrefix(extentType, "k") {
	case feature.ExtentTypeDistance:
		return e.encodeDistanceExtent(x)
	case feature.ExtentTypeAngle:
		return e.encodeAngleExtent(x)
	case feature.ExtentTypeToNext, feature.ExtentTypeThroughAll:
		return e.encodeDirectionExtent(x)
	case feature.ExtentTypeFullSweep:
		return e.encodeFullSweepExtent()
	case feature.ExtentTypeTo:
		return e.encodeToExtent(x)
	case feature.ExtentTypeFromTo:
		return e.encodeFromToExtent(x)
	}
	return 0, fmt.Errorf("extent type %q: %w", extentType, ErrVocabulary)
}

func (e *Encoder) encodeDistanceExtent(x *feature.Extent) (int64, error) {
	dir, err := directionID(x.Direction)
	if err != nil {
		return 0, err
	}
	e.begin(vocab.TypeExtent)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushNumeric(vocab.KeyDist, paramValue(x.Distance))
	e.pushOptDirection(dir)
	e.end()
	return idx, nil
}

func (e *Encoder) encodeAngleExtent(x *feature.Extent) (int64, error) {
	dir, err := directionID(x.Direction)
	if err != nil {
		return 0, err
	}
	e.begin(vocab.TypeExtent)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushNumeric(vocab.KeyAngle, paramValue(x.Angle))
	e.pushOptDirection(dir)
	e.end()
	return idx, nil
}

// encodeDirectionExtent covers ToNext and ThroughAll, which carry a
// direction and nothing else.
func (e *Encoder) encodeDirectionExtent(x *feature.Extent) (int64, error) {
	dir, err := directionID(x.Direction)
	if err != nil {
		return 0, err
	}
	e.begin(vocab.TypeExtent)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushOptDirection(dir)
	e.end()
	return idx, nil
}

func (e *Encoder) encodeFullSweepExtent() (int64, error) {
	e.begin(vocab.TypeExtent)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.end()
	return idx, nil
}

func (e *Encoder) encodeToExtent(x *feature.Extent) (int64, error) {
	dir, err := directionID(x.Direction)
	if err != nil {
		return 0, err
	}
	toIdx, err := e.encodeExtentEntity("toEntity", x.ToEntity)
	if err != nil {
		return 0, err
	}
	e.begin(vocab.TypeExtent)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushOptDirection(dir)
	e.pushDiscrete(vocab.KeyIsExtendToFace, boolID(x.ExtendToFace))
	e.pushDiscrete(vocab.KeyToFaceID, toIdx)
	e.end()
	return idx, nil
}

func (e *Encoder) encodeFromToExtent(x *feature.Extent) (int64, error) {
	fromIdx, err := e.encodeExtentEntity("fromFace", x.FromFace)
	if err != nil {
		return 0, err
	}
	toIdx, err := e.encodeExtentEntity("toFace", x.ToFace)
	if err != nil {
		return 0, err
	}
	e.begin(vocab.TypeExtent)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushDiscrete(vocab.KeyIsExtendFromFace, boolID(x.ExtendFromFace))
	e.pushDiscrete(vocab.KeyIsExtendToFace, boolID(x.ExtendToFace))
	e.pushDiscrete(vocab.KeyIsFromFaceWorkPlane, boolID(x.IsFromFaceWorkPlane))
	e.pushDiscrete(vocab.KeyIsToFaceWorkPlane, boolID(x.IsToFaceWorkPlane))
	e.pushDiscrete(vocab.KeyFromFaceID, fromIdx)
	e.pushDiscrete(vocab.KeyToFaceID, toIdx)
	e.end()
	return idx, nil
}

// encodeExtentEntity emits the Selection instruction for an entity the
// extent references. The entity is required.
func (e *Encoder) encodeExtentEntity(what string, sel *feature.Selection) (int64, error) {
	if sel == nil || sel.IsZero() {
		return 0, fmt.Errorf("extent %s: %w", what, ErrMissingField)
	}
	idx, err := e.encodeSelection(*sel)
	if err != nil {
		return 0, fmt.Errorf("extent %s: %w", what, err)
	}
	return idx, nil
}

// directionID resolves an extent direction name. An empty name means
// the extent carries no direction and the DIR slot is omitted; that is
// the nil return. Any other name must be in the vocabulary.
func directionID(name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	id, ok := vocab.Dir.ID(name)
	if !ok {
		return nil, fmt.Errorf("direction %q: %w", name, ErrVocabulary)
	}
	return &id, nil
}

func (e *Encoder) pushOptDirection(dir *int64) {
	if dir != nil {
		e.pushDiscrete(vocab.KeyDir, *dir)
	}
}

// paramValue reads a parameter's value, treating nil as zero.
func paramValue(p *feature.Param) float64 {
	if p == nil {
		return 0
	}
	return p.Value
}

// boolID renders an optional flag as a discrete 0/1, with nil false.
func boolID(b *bool) int64 {
	if b != nil && *b {
		return 1
	}
	return 0
}
