// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import "encoding/json"

// MirrorPlane is the plane a mirror reflects across: either the
// signature of a planar model face or an explicit plane frame.
// Exactly one arm is set.
type MirrorPlane struct {
	Face  *Selection
	Plane *PlaneEntity
}

func (p MirrorPlane) MarshalJSON() ([]byte, error) {
	switch {
	case p.Plane != nil:
		return json.Marshal(p.Plane)
	case p.Face != nil:
		return json.Marshal(p.Face)
	}
	return []byte("null"), nil
}

// UnmarshalJSON picks the arm by shape: plane frames always carry a
// "geometry" key, face signatures never do.
func (p *MirrorPlane) UnmarshalJSON(data []byte) error {
	var probe struct {
		Geometry json.RawMessage `json:"geometry"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	*p = MirrorPlane{}
	if probe.Geometry != nil {
		p.Plane = new(PlaneEntity)
		return json.Unmarshal(data, p.Plane)
	}
	p.Face = new(Selection)
	return json.Unmarshal(data, p.Face)
}

// MirrorFeature reflects earlier features, or the whole body, across a
// plane. Feature mode (IsMirrorBody false) lists the features to
// mirror by name; body mode carries the boolean/operation pair
// instead. ComputeType holds a pattern compute vocabulary name
// ("kIdenticalCompute").
type MirrorFeature struct {
	Name              string       `json:"name,omitempty"`
	IsMirrorBody      bool         `json:"isMirrorBody"`
	IsMirrorPlaneFace bool         `json:"isMirrorPlaneFace"`
	MirrorPlane       *MirrorPlane `json:"mirrorPlane"`
	ComputeType       string       `json:"computeType"`
	FeaturesToMirror  []string     `json:"featuresToMirror,omitempty"`
	RemoveOriginal    *bool        `json:"removeOriginal,omitempty"`
	Operation         string       `json:"operation,omitempty"`
}

func (f *MirrorFeature) FeatureType() string { return TypeMirror }
func (f *MirrorFeature) FeatureName() string { return f.Name }
func (f *MirrorFeature) isFeature()          {}

func (f *MirrorFeature) MarshalJSON() ([]byte, error) {
	type alias MirrorFeature
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeMirror, (*alias)(f)})
}

// UnmarshalJSON also accepts the misspelled "featuresToMirbror" key
// some exporters write.
func (f *MirrorFeature) UnmarshalJSON(data []byte) error {
	type alias MirrorFeature
	aux := struct {
		*alias
		Misspelled []string `json:"featuresToMirbror"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if f.FeaturesToMirror == nil {
		f.FeaturesToMirror = aux.Misspelled
	}
	return nil
}
