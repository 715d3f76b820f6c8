// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import "encoding/json"

// Extent record type discriminators. The matching vocabulary names
// carry a leading k ("kDistanceExtent" for "DistanceExtent").
const (
	ExtentTypeDistance   = "DistanceExtent"
	ExtentTypeToNext     = "ToNextExtent"
	ExtentTypeAngle      = "AngleExtent"
	ExtentTypeTo         = "ToExtent"
	ExtentTypeFullSweep  = "FullSweepExtent"
	ExtentTypeThroughAll = "ThroughAllExtent"
	ExtentTypeFromTo     = "FromToExtent"
)

// Extent describes how far a profile-based feature extends. Which
// fields apply is decided by the owning feature's extentType, not by
// Type, which is informational. Direction holds a direction vocabulary
// name such as "kPositiveExtentDirection".
type Extent struct {
	Type                string     `json:"type,omitempty"`
	Distance            *Param     `json:"distance,omitempty"`
	Angle               *Param     `json:"angle,omitempty"`
	Direction           string     `json:"direction,omitempty"`
	ToEntity            *Selection `json:"toEntity,omitempty"`
	ExtendToFace        *bool      `json:"extendToFace,omitempty"`
	FromFace            *Selection `json:"fromFace,omitempty"`
	ToFace              *Selection `json:"toFace,omitempty"`
	ExtendFromFace      *bool      `json:"extendFromFace,omitempty"`
	IsFromFaceWorkPlane *bool      `json:"isFromFaceWorkPlane,omitempty"`
	IsToFaceWorkPlane   *bool      `json:"isToFaceWorkPlane,omitempty"`
}

// UnmarshalJSON accepts the snake_case field names some exporters
// write for ToExtent alongside the canonical camelCase.
func (e *Extent) UnmarshalJSON(data []byte) error {
	type alias Extent
	aux := struct {
		*alias
		LegacyToEntity     *Selection `json:"to_entity"`
		LegacyExtendToFace *bool      `json:"extend_to_face"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if e.ToEntity == nil {
		e.ToEntity = aux.LegacyToEntity
	}
	if e.ExtendToFace == nil {
		e.ExtendToFace = aux.LegacyExtendToFace
	}
	return nil
}
