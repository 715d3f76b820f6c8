// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import "encoding/json"

// Chamfer type vocabulary names.
const (
	ChamferTwoDistances     = "kTwoDistances"
	ChamferDistanceAndAngle = "kDistanceAndAngle"
	ChamferDistanceOnly     = "kDistance"
)

// EdgeSet groups edges filleted at a common radius. Each edge set
// encodes as its own instruction.
type EdgeSet struct {
	Radius *Param      `json:"radius"`
	Edges  []Selection `json:"edges"`
}

// FilletFeature rounds edges.
type FilletFeature struct {
	Name       string    `json:"name,omitempty"`
	FilletType string    `json:"filletType,omitempty"`
	EdgeSets   []EdgeSet `json:"edgeSets"`
}

func (f *FilletFeature) FeatureType() string { return TypeFillet }
func (f *FilletFeature) FeatureName() string { return f.Name }
func (f *FilletFeature) isFeature()          {}

func (f *FilletFeature) MarshalJSON() ([]byte, error) {
	type alias FilletFeature
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeFillet, (*alias)(f)})
}

// ChamferFeature bevels edges. ChamferType decides which dimension
// fields apply: kTwoDistances uses DistanceOne/DistanceTwo and Face,
// kDistanceAndAngle uses Distance/Angle and Face, kDistance uses
// Distance alone.
type ChamferFeature struct {
	Name        string      `json:"name,omitempty"`
	ChamferType string      `json:"chamferType"`
	Distance    *Param      `json:"distance,omitempty"`
	DistanceOne *Param      `json:"distanceOne,omitempty"`
	DistanceTwo *Param      `json:"distanceTwo,omitempty"`
	Angle       *Param      `json:"angle,omitempty"`
	Face        *Selection  `json:"face,omitempty"`
	Edges       []Selection `json:"edges"`
}

func (f *ChamferFeature) FeatureType() string { return TypeChamfer }
func (f *ChamferFeature) FeatureName() string { return f.Name }
func (f *ChamferFeature) isFeature()          {}

func (f *ChamferFeature) MarshalJSON() ([]byte, error) {
	type alias ChamferFeature
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeChamfer, (*alias)(f)})
}
