// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import "encoding/json"

// ExtrudeFeature sweeps a profile linearly along its sketch normal.
// Operation holds an operation vocabulary name ("kJoinOperation");
// ExtentType and ExtentTwoType hold extent vocabulary names
// ("kDistanceExtent").
type ExtrudeFeature struct {
	Name             string   `json:"name,omitempty"`
	Operation        string   `json:"operation"`
	ExtentType       string   `json:"extentType"`
	Extent           *Extent  `json:"extent"`
	IsTwoDirectional bool     `json:"isTwoDirectional"`
	ExtentTwoType    string   `json:"extentTwoType,omitempty"`
	ExtentTwo        *Extent  `json:"extentTwo,omitempty"`
	Profile          *Profile `json:"profile"`
}

func (f *ExtrudeFeature) FeatureType() string { return TypeExtrude }
func (f *ExtrudeFeature) FeatureName() string { return f.Name }
func (f *ExtrudeFeature) isFeature()          {}

func (f *ExtrudeFeature) MarshalJSON() ([]byte, error) {
	type alias ExtrudeFeature
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeExtrude, (*alias)(f)})
}

// RevolveFeature sweeps a profile around an axis.
type RevolveFeature struct {
	Name             string      `json:"name,omitempty"`
	Operation        string      `json:"operation"`
	AxisEntity       *AxisEntity `json:"axisEntity"`
	ExtentType       string      `json:"extentType"`
	Extent           *Extent     `json:"extent"`
	IsTwoDirectional bool        `json:"isTwoDirectional"`
	ExtentTwoType    string      `json:"extentTwoType,omitempty"`
	ExtentTwo        *Extent     `json:"extentTwo,omitempty"`
	Profile          *Profile    `json:"profile"`
}

func (f *RevolveFeature) FeatureType() string { return TypeRevolve }
func (f *RevolveFeature) FeatureName() string { return f.Name }
func (f *RevolveFeature) isFeature()          {}

func (f *RevolveFeature) MarshalJSON() ([]byte, error) {
	type alias RevolveFeature
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeRevolve, (*alias)(f)})
}
