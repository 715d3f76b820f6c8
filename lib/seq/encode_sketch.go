// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"

	"github.com/featseq/featseq/lib/feature"
	"github.com/featseq/featseq/lib/geometry"
	"github.com/featseq/featseq/lib/vocab"
)

// encodeSelection emits one Selection instruction and returns its
// index. Face signatures encode leniently: absent numerics become
// zeros and a surface class outside the vocabulary becomes
// kUnknownSurface, mirroring the edge arm's kUnknownCurve. Edge
// signatures require exactly two endpoints.
func (e *Encoder) encodeSelection(sel feature.Selection) (int64, error) {
	if sel.Edge != nil {
		return e.encodeEdgeSelection(sel.Edge)
	}
	if sel.Face != nil {
		return e.encodeFaceSelection(sel.Face), nil
	}
	return 0, fmt.Errorf("empty selection: %w", ErrMissingField)
}

func (e *Encoder) encodeFaceSelection(face *feature.Face) int64 {
	surf, ok := vocab.SurfaceType.ID(face.SurfaceType)
	if !ok {
		surf = vocab.SurfaceUnknown
	}
	e.begin(vocab.TypeSelection)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushDiscrete(vocab.KeySelectEntity, vocab.EntityFace)
	e.pushDiscrete(vocab.KeySurfType, surf)
	e.pushNumeric(vocab.KeyArea, face.Area)
	e.pushNumeric(vocab.KeyFaceCentroidX, face.Centroid[0])
	e.pushNumeric(vocab.KeyFaceCentroidY, face.Centroid[1])
	e.pushNumeric(vocab.KeyFaceCentroidZ, face.Centroid[2])
	e.end()
	return idx
}

func (e *Encoder) encodeEdgeSelection(edge *feature.Edge) (int64, error) {
	if len(edge.Endpoints) != 2 {
		return 0, fmt.Errorf("edge selection has %d endpoints, want 2: %w", len(edge.Endpoints), ErrMissingField)
	}
	curve, ok := vocab.EdgeType.ID(edge.GeometryType)
	if !ok {
		curve = vocab.EdgeUnknown
	}
	e.begin(vocab.TypeSelection)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushDiscrete(vocab.KeySelectEntity, vocab.EntityEdge)
	e.pushDiscrete(vocab.KeyEdgeType, curve)
	e.pushNumeric(vocab.KeyEdgeLength, edge.Length)
	e.pushNumeric(vocab.KeyEdgeStartX, edge.Endpoints[0][0])
	e.pushNumeric(vocab.KeyEdgeStartY, edge.Endpoints[0][1])
	e.pushNumeric(vocab.KeyEdgeStartZ, edge.Endpoints[0][2])
	e.pushNumeric(vocab.KeyEdgeEndX, edge.Endpoints[1][0])
	e.pushNumeric(vocab.KeyEdgeEndY, edge.Endpoints[1][1])
	e.pushNumeric(vocab.KeyEdgeEndZ, edge.Endpoints[1][2])
	e.pushNumeric(vocab.KeyEdgeMidpointX, edge.Midpoint[0])
	e.pushNumeric(vocab.KeyEdgeMidpointY, edge.Midpoint[1])
	e.pushNumeric(vocab.KeyEdgeMidpointZ, edge.Midpoint[2])
	e.end()
	return idx, nil
}

// encodeProfile emits the sketch backing a profile-bearing feature and
// returns the sketch index. A nil profile still emits the bare
// SketchStart/SketchEnd pair so the feature's PARENT reference stays
// resolvable. Curves of unknown type are skipped.
func (e *Encoder) encodeProfile(p *feature.Profile) (int64, error) {
	var plane *feature.PlaneEntity
	var paths []feature.ProfilePath
	if p != nil {
		plane = p.SketchPlane
		paths = p.ProfilePaths
	}
	sketchIdx, err := e.encodeSketchStart(plane)
	if err != nil {
		return 0, err
	}
	for _, path := range paths {
		e.encodePathStart()
		for i := range path.PathEntities {
			ent := &path.PathEntities[i]
			switch ent.CurveType {
			case feature.CurveLine:
				e.encodeLine(ent)
			case feature.CurveArc:
				e.encodeArc(ent)
			case feature.CurveCircle:
				e.encodeCircle(ent)
			}
		}
		e.encodePathEnd()
	}
	e.encodeSketchEnd(sketchIdx)
	return sketchIdx, nil
}

// encodeSketchStart emits a SketchStart instruction. When the plane is
// anchored to a model face, that face's Selection instruction goes
// first so REFER_PLANE_IDX points backward; the explicit frame floats
// are emitted only when the plane carries geometry.
func (e *Encoder) encodeSketchStart(plane *feature.PlaneEntity) (int64, error) {
	var refIdx int64
	hasRef := false
	if plane != nil && plane.Index != nil && !plane.Index.IsZero() {
		idx, err := e.encodeSelection(*plane.Index)
		if err != nil {
			return 0, err
		}
		refIdx, hasRef = idx, true
	}
	e.begin(vocab.TypeSketchStart)
	sketchIdx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, sketchIdx)
	if hasRef {
		e.pushDiscrete(vocab.KeyReferPlaneIdx, refIdx)
	}
	if plane != nil && plane.Geometry != nil {
		g := plane.Geometry
		e.pushNumeric(vocab.KeyOX, g.Origin.X)
		e.pushNumeric(vocab.KeyOY, g.Origin.Y)
		e.pushNumeric(vocab.KeyOZ, g.Origin.Z)
		e.pushNumeric(vocab.KeyNX, g.Normal.X)
		e.pushNumeric(vocab.KeyNY, g.Normal.Y)
		e.pushNumeric(vocab.KeyNZ, g.Normal.Z)
		e.pushNumeric(vocab.KeyXX, g.AxisX.X)
		e.pushNumeric(vocab.KeyXY, g.AxisX.Y)
		e.pushNumeric(vocab.KeyXZ, g.AxisX.Z)
		e.pushNumeric(vocab.KeyYX, g.AxisY.X)
		e.pushNumeric(vocab.KeyYY, g.AxisY.Y)
		e.pushNumeric(vocab.KeyYZ, g.AxisY.Z)
	}
	e.end()
	return sketchIdx, nil
}

// encodeSketchEnd closes a sketch. PARENT names the matching
// SketchStart's index.
func (e *Encoder) encodeSketchEnd(sketchIdx int64) {
	e.begin(vocab.TypeSketchEnd)
	e.pushDiscrete(vocab.KeyParent, sketchIdx)
	e.end()
}

func (e *Encoder) encodePathStart() {
	e.begin(vocab.TypePathStart)
	e.end()
}

func (e *Encoder) encodePathEnd() {
	e.begin(vocab.TypePathEnd)
	e.end()
}

func (e *Encoder) encodeLine(ent *feature.PathEntity) {
	sp := ent.StartSketchPoint
	ep := ent.EndSketchPoint
	e.begin(vocab.TypeLine)
	e.pushVec2(vocab.KeySPX, vocab.KeySPY, sp)
	e.pushVec2(vocab.KeyEPX, vocab.KeyEPY, ep)
	e.end()
}

func (e *Encoder) encodeArc(ent *feature.PathEntity) {
	curve := ent.Curve
	if curve == nil {
		curve = &feature.Curve{}
	}
	e.begin(vocab.TypeArc)
	e.pushNumeric(vocab.KeyCX, curve.Center.X)
	e.pushNumeric(vocab.KeyCY, curve.Center.Y)
	e.pushNumeric(vocab.KeyR, curve.Radius)
	e.pushNumeric(vocab.KeySA, curve.StartAngle)
	e.pushNumeric(vocab.KeySW, curve.SweepAngle)
	e.pushVec2(vocab.KeySPX, vocab.KeySPY, ent.StartSketchPoint)
	e.pushVec2(vocab.KeyEPX, vocab.KeyEPY, ent.EndSketchPoint)
	e.end()
}

func (e *Encoder) encodeCircle(ent *feature.PathEntity) {
	curve := ent.Curve
	if curve == nil {
		curve = &feature.Curve{}
	}
	e.begin(vocab.TypeCircle)
	e.pushNumeric(vocab.KeyCX, curve.Center.X)
	e.pushNumeric(vocab.KeyCY, curve.Center.Y)
	e.pushNumeric(vocab.KeyR, curve.Radius)
	e.end()
}

func (e *Encoder) encodePoint(pt geometry.Vec2) {
	e.begin(vocab.TypePoint)
	e.pushNumeric(vocab.KeyPX, pt.X)
	e.pushNumeric(vocab.KeyPY, pt.Y)
	e.end()
}

// pushVec2 emits an x/y key pair, treating a nil point as the origin.
func (e *Encoder) pushVec2(kx, ky int64, pt *geometry.Vec2) {
	var x, y float64
	if pt != nil {
		x, y = pt.X, pt.Y
	}
	e.pushNumeric(kx, x)
	e.pushNumeric(ky, y)
}
