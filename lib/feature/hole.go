// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"encoding/json"

	"github.com/featseq/featseq/lib/geometry"
)

// HoleFeature drills at one or more sketch points. IsFlatBottomed is
// a pointer because some exporters omit the flag entirely; a false
// value without a BottomTipAngle is treated as flat at encode time.
type HoleFeature struct {
	Name             string          `json:"name,omitempty"`
	HoleType         string          `json:"holeType,omitempty"`
	ExtentType       string          `json:"extentType,omitempty"`
	Extent           *Extent         `json:"extent"`
	IsFlatBottomed   *bool           `json:"isFlatBottomed,omitempty"`
	BottomTipAngle   *Param          `json:"bottomTipAngle,omitempty"`
	SketchPlane      *PlaneEntity    `json:"sketchPlane"`
	PlacementType    string          `json:"placementType,omitempty"`
	HoleCenterPoints []geometry.Vec2 `json:"holeCenterPoints"`
	IsTapped         *bool           `json:"isTapped,omitempty"`
	HoleDiameter     *Param          `json:"holeDiameter"`
	Depth            *Param          `json:"depth"`
}

func (f *HoleFeature) FeatureType() string { return TypeHole }
func (f *HoleFeature) FeatureName() string { return f.Name }
func (f *HoleFeature) isFeature()          {}

func (f *HoleFeature) MarshalJSON() ([]byte, error) {
	type alias HoleFeature
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeHole, (*alias)(f)})
}

// ShellFeature hollows the body, leaving walls of uniform thickness
// around the removed input faces. Direction holds a shell direction
// vocabulary name ("kInsideShellDirection").
type ShellFeature struct {
	Name       string      `json:"name,omitempty"`
	Thickness  *Param      `json:"thickness"`
	Direction  string      `json:"direction"`
	InputFaces []Selection `json:"inputFaces"`
}

func (f *ShellFeature) FeatureType() string { return TypeShell }
func (f *ShellFeature) FeatureName() string { return f.Name }
func (f *ShellFeature) isFeature()          {}

func (f *ShellFeature) MarshalJSON() ([]byte, error) {
	type alias ShellFeature
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeShell, (*alias)(f)})
}
