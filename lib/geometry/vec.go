// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

// Package geometry provides the vector and rounding primitives shared
// by the feature model and the sequence codec.
package geometry

import "math"

// Vec2 is a 2D point or direction in sketch coordinates.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec3 is a 3D point or direction in model coordinates.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Unit returns v scaled to length 1, or the zero vector when v has no
// length.
func (v Vec3) Unit() Vec3 {
	magnitude := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if magnitude == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / magnitude, Y: v.Y / magnitude, Z: v.Z / magnitude}
}

// Cross returns the cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Triple returns the components as a positional array, the form face
// and edge metadata carry on the wire.
func (v Vec3) Triple() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// FromTriple builds a Vec3 from a positional array.
func FromTriple(t [3]float64) Vec3 {
	return Vec3{X: t[0], Y: t[1], Z: t[2]}
}
