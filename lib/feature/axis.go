// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"encoding/json"

	"github.com/featseq/featseq/lib/geometry"
)

// AxisInfo is an infinite line given by a point on the line and a
// direction vector.
type AxisInfo struct {
	StartPoint geometry.Vec3 `json:"start_point"`
	Direction  geometry.Vec3 `json:"direction"`
}

// AxisEntity locates a revolve or pattern axis. Index, when set, is
// the signature of the model edge the axis was derived from.
type AxisEntity struct {
	AxisInfo AxisInfo
	Index    *Selection
}

// Axis returns an AxisEntity through start with the given direction.
func Axis(start, direction geometry.Vec3) *AxisEntity {
	return &AxisEntity{AxisInfo: AxisInfo{StartPoint: start, Direction: direction}}
}

func (a AxisEntity) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		MetaType string     `json:"metaType"`
		AxisInfo AxisInfo   `json:"axisInfo"`
		Index    *Selection `json:"index"`
	}{"AxisEntity", a.AxisInfo, a.Index})
}

// UnmarshalJSON accepts both the nested axisInfo form and the flat
// start_point/direction form older exporters write.
func (a *AxisEntity) UnmarshalJSON(data []byte) error {
	var aux struct {
		AxisInfo   *AxisInfo      `json:"axisInfo"`
		StartPoint *geometry.Vec3 `json:"start_point"`
		Direction  *geometry.Vec3 `json:"direction"`
		Index      *Selection     `json:"index"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = AxisEntity{Index: aux.Index}
	if aux.AxisInfo != nil {
		a.AxisInfo = *aux.AxisInfo
		return nil
	}
	if aux.StartPoint != nil {
		a.AxisInfo.StartPoint = *aux.StartPoint
	}
	if aux.Direction != nil {
		a.AxisInfo.Direction = *aux.Direction
	}
	return nil
}
