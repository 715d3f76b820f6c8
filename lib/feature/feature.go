// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Feature type discriminators.
const (
	TypeExtrude            = "ExtrudeFeature"
	TypeRevolve            = "RevolveFeature"
	TypeFillet             = "FilletFeature"
	TypeChamfer            = "ChamferFeature"
	TypeHole               = "HoleFeature"
	TypeShell              = "ShellFeature"
	TypeMirror             = "MirrorFeature"
	TypeRectangularPattern = "RectangularPatternFeature"
	TypeCircularPattern    = "CircularPatternFeature"
)

// Feature is one parametric modeling step. The set of implementations
// is closed: the nine record types in this package.
type Feature interface {
	// FeatureType returns the record's type discriminator.
	FeatureType() string
	// FeatureName returns the user-visible name, or "" when unnamed.
	FeatureName() string

	isFeature()
}

// UnmarshalFeature parses a single feature record, dispatching on its
// "type" field. Records from exporters that write "featureType"
// instead are accepted.
func UnmarshalFeature(data []byte) (Feature, error) {
	var head struct {
		Type        string `json:"type"`
		FeatureType string `json:"featureType"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	featureType := head.Type
	if featureType == "" {
		featureType = head.FeatureType
	}
	if featureType == "" {
		return nil, errors.New("feature record has no type")
	}

	var f Feature
	switch featureType {
	case TypeExtrude:
		f = new(ExtrudeFeature)
	case TypeRevolve:
		f = new(RevolveFeature)
	case TypeFillet:
		f = new(FilletFeature)
	case TypeChamfer:
		f = new(ChamferFeature)
	case TypeHole:
		f = new(HoleFeature)
	case TypeShell:
		f = new(ShellFeature)
	case TypeMirror:
		f = new(MirrorFeature)
	case TypeRectangularPattern:
		f = new(RectangularPatternFeature)
	case TypeCircularPattern:
		f = new(CircularPatternFeature)
	default:
		return nil, fmt.Errorf("unsupported feature type %q", featureType)
	}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", featureType, err)
	}
	return f, nil
}
