// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import "github.com/featseq/featseq/lib/geometry"

// Curve type discriminators used by PathEntity.
const (
	CurveLine   = "kLineSegmentCurve2d"
	CurveArc    = "kCircularArcCurve2d"
	CurveCircle = "kCircleCurve2d"
)

// PlaneGeometry is the coordinate frame of a sketch plane: an origin
// plus the plane normal and the in-plane axes.
type PlaneGeometry struct {
	Origin geometry.Vec3 `json:"origin"`
	Normal geometry.Vec3 `json:"normal"`
	AxisX  geometry.Vec3 `json:"axis_x"`
	AxisY  geometry.Vec3 `json:"axis_y"`
}

// PlaneEntity locates a sketch plane. Geometry carries the explicit
// frame; Index, when set, is the signature of the model face the
// sketch was placed on.
type PlaneEntity struct {
	Geometry *PlaneGeometry `json:"geometry,omitempty"`
	Index    *Selection     `json:"index,omitempty"`
}

// Profile is the closed sketch geometry a profile-based feature
// operates on.
type Profile struct {
	SketchName   string        `json:"sketchName,omitempty"`
	SketchPlane  *PlaneEntity  `json:"SketchPlane,omitempty"`
	ProfilePaths []ProfilePath `json:"ProfilePaths"`
}

// ProfilePath is one connected loop of sketch curves.
type ProfilePath struct {
	Closed        bool         `json:"Closed,omitempty"`
	IsTextBoxPath bool         `json:"IsTextBoxPath,omitempty"`
	EntityCount   int          `json:"EntityCount,omitempty"`
	PathEntities  []PathEntity `json:"PathEntities"`
}

// PathEntity is one curve in a profile path. Lines carry only the
// sketch points; arcs and circles carry Curve parameters as well.
type PathEntity struct {
	CurveType        string         `json:"CurveType"`
	StartSketchPoint *geometry.Vec2 `json:"StartSketchPoint,omitempty"`
	EndSketchPoint   *geometry.Vec2 `json:"EndSketchPoint,omitempty"`
	Curve            *Curve         `json:"Curve,omitempty"`
}

// Curve holds the numeric parameters of an arc or circle. Angles are
// radians.
type Curve struct {
	Center     geometry.Vec2 `json:"center"`
	Radius     float64       `json:"radius"`
	StartAngle float64       `json:"startAngle,omitempty"`
	SweepAngle float64       `json:"sweepAngle,omitempty"`
}
