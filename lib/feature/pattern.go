// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import "encoding/json"

// RectangularPatternFeature repeats features, or the body, along a
// direction. XCount is a whole-number count carried as a parameter.
// XSpacingType holds a spacing vocabulary name ("kDefault").
// IsPatternOfBody and XNaturalDirection are pointers because the
// encoder requires them to be present, not merely false.
type RectangularPatternFeature struct {
	Name              string      `json:"name,omitempty"`
	IsPatternOfBody   *bool       `json:"isPatternOfBody"`
	XCount            *Param      `json:"xCount"`
	XSpacing          *Param      `json:"xSpacing"`
	XNaturalDirection *bool       `json:"xNaturalDirection"`
	XSpacingType      string      `json:"xSpacingType"`
	XDirectionEntity  *AxisEntity `json:"xDirectionEntity"`
	FeaturesToPattern []string    `json:"featuresToPattern,omitempty"`
}

func (f *RectangularPatternFeature) FeatureType() string { return TypeRectangularPattern }
func (f *RectangularPatternFeature) FeatureName() string { return f.Name }
func (f *RectangularPatternFeature) isFeature()          {}

func (f *RectangularPatternFeature) MarshalJSON() ([]byte, error) {
	type alias RectangularPatternFeature
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeRectangularPattern, (*alias)(f)})
}

// CircularPatternFeature repeats features, or the body, around an
// axis. Angle is the total sweep in degrees.
type CircularPatternFeature struct {
	Name                   string      `json:"name,omitempty"`
	IsPatternOfBody        *bool       `json:"isPatternOfBody"`
	Count                  *Param      `json:"count"`
	Angle                  *Param      `json:"angle"`
	IsNaturalAxisDirection *bool       `json:"isNaturalAxisDirection"`
	RotationAxis           *AxisEntity `json:"rotationAxis"`
	FeaturesToPattern      []string    `json:"featuresToPattern,omitempty"`
}

func (f *CircularPatternFeature) FeatureType() string { return TypeCircularPattern }
func (f *CircularPatternFeature) FeatureName() string { return f.Name }
func (f *CircularPatternFeature) isFeature()          {}

func (f *CircularPatternFeature) MarshalJSON() ([]byte, error) {
	type alias CircularPatternFeature
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeCircularPattern, (*alias)(f)})
}
