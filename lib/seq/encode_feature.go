// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"

	"github.com/featseq/featseq/lib/feature"
	"github.com/featseq/featseq/lib/geometry"
	"github.com/featseq/featseq/lib/vocab"
)

func encodeExtrude(e *Encoder, f feature.Feature) ([]int64, error) {
	x := f.(*feature.ExtrudeFeature)
	if x.Operation == "" || x.ExtentType == "" {
		return nil, fmt.Errorf("operation or extentType: %w", ErrMissingField)
	}
	if x.Extent == nil {
		return nil, fmt.Errorf("extent: %w", ErrMissingField)
	}
	opID, ok := vocab.Op.ID(x.Operation)
	if !ok {
		return nil, fmt.Errorf("operation %q: %w", x.Operation, ErrVocabulary)
	}
	extentTypeID, ok := vocab.Extent.ID(x.ExtentType)
	if !ok {
		return nil, fmt.Errorf("extentType %q: %w", x.ExtentType, ErrVocabulary)
	}
	var extentTwoTypeID int64
	if x.IsTwoDirectional {
		if x.ExtentTwo == nil || x.ExtentTwoType == "" {
			return nil, fmt.Errorf("two-directional extrude extentTwo or extentTwoType: %w", ErrMissingField)
		}
		extentTwoTypeID, ok = vocab.Extent.ID(x.ExtentTwoType)
		if !ok {
			return nil, fmt.Errorf("extentTwoType %q: %w", x.ExtentTwoType, ErrVocabulary)
		}
	}

	sketchIdx, err := e.encodeProfile(x.Profile)
	if err != nil {
		return nil, err
	}
	extentOneIdx, err := e.encodeExtent(x.ExtentType, x.Extent)
	if err != nil {
		return nil, err
	}
	var extentTwoIdx int64
	if x.IsTwoDirectional {
		if extentTwoIdx, err = e.encodeExtent(x.ExtentTwoType, x.ExtentTwo); err != nil {
			return nil, err
		}
	}

	e.begin(vocab.TypeExtrude)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushDiscrete(vocab.KeyParent, sketchIdx)
	e.pushDiscrete(vocab.KeyOp, opID)
	e.pushDiscrete(vocab.KeyExtentOneType, extentTypeID)
	e.pushDiscrete(vocab.KeyExtentOne, extentOneIdx)
	e.pushDiscrete(vocab.KeyIsTwoDirectional, flagID(x.IsTwoDirectional))
	if x.IsTwoDirectional {
		e.pushDiscrete(vocab.KeyExtentTwoType, extentTwoTypeID)
		e.pushDiscrete(vocab.KeyExtentTwo, extentTwoIdx)
	}
	e.end()
	return []int64{idx}, nil
}

func encodeRevolve(e *Encoder, f feature.Feature) ([]int64, error) {
	x := f.(*feature.RevolveFeature)
	if x.Operation == "" {
		return nil, fmt.Errorf("operation: %w", ErrMissingField)
	}
	if x.AxisEntity == nil {
		return nil, fmt.Errorf("axisEntity: %w", ErrMissingField)
	}
	if x.Extent == nil || x.ExtentType == "" {
		return nil, fmt.Errorf("extent or extentType: %w", ErrMissingField)
	}
	opID, ok := vocab.Op.ID(x.Operation)
	if !ok {
		return nil, fmt.Errorf("operation %q: %w", x.Operation, ErrVocabulary)
	}
	extentTypeID, ok := vocab.Extent.ID(x.ExtentType)
	if !ok {
		return nil, fmt.Errorf("extentType %q: %w", x.ExtentType, ErrVocabulary)
	}

	sketchIdx, err := e.encodeProfile(x.Profile)
	if err != nil {
		return nil, err
	}
	extentOneIdx, err := e.encodeExtent(x.ExtentType, x.Extent)
	if err != nil {
		return nil, err
	}
	// A two-directional revolve needs the second extent, but its type
	// may be absent: the extent still encodes (dispatched on its own
	// record type) while the EXTENT_TWO slot pair is skipped.
	var extentTwoIdx, extentTwoTypeID int64
	hasTwoType := false
	if x.IsTwoDirectional {
		if x.ExtentTwo == nil {
			return nil, fmt.Errorf("two-directional revolve extentTwo: %w", ErrMissingField)
		}
		twoType := x.ExtentTwoType
		if twoType == "" {
			twoType = x.ExtentTwo.Type
		}
		if extentTwoIdx, err = e.encodeExtent(twoType, x.ExtentTwo); err != nil {
			return nil, err
		}
		if x.ExtentTwoType != "" {
			extentTwoTypeID, ok = vocab.Extent.ID(x.ExtentTwoType)
			if !ok {
				return nil, fmt.Errorf("extentTwoType %q: %w", x.ExtentTwoType, ErrVocabulary)
			}
			hasTwoType = true
		}
	}

	axis := x.AxisEntity.AxisInfo
	e.begin(vocab.TypeRevolve)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushDiscrete(vocab.KeyParent, sketchIdx)
	e.pushDiscrete(vocab.KeyOp, opID)
	e.pushNumeric(vocab.KeyAxisX, axis.StartPoint.X)
	e.pushNumeric(vocab.KeyAxisY, axis.StartPoint.Y)
	e.pushNumeric(vocab.KeyAxisZ, axis.StartPoint.Z)
	e.pushNumeric(vocab.KeyAxisDirX, axis.Direction.X)
	e.pushNumeric(vocab.KeyAxisDirY, axis.Direction.Y)
	e.pushNumeric(vocab.KeyAxisDirZ, axis.Direction.Z)
	e.pushDiscrete(vocab.KeyExtentOneType, extentTypeID)
	e.pushDiscrete(vocab.KeyExtentOne, extentOneIdx)
	e.pushDiscrete(vocab.KeyIsTwoDirectional, flagID(x.IsTwoDirectional))
	if hasTwoType {
		e.pushDiscrete(vocab.KeyExtentTwoType, extentTwoTypeID)
		e.pushDiscrete(vocab.KeyExtentTwo, extentTwoIdx)
	}
	e.end()
	return []int64{idx}, nil
}

// encodeFillet emits one Fillet instruction per edge set and returns
// one index per set; a name reference to the fillet later expands to
// all of them.
func encodeFillet(e *Encoder, f feature.Feature) ([]int64, error) {
	x := f.(*feature.FilletFeature)
	indices := make([]int64, 0, len(x.EdgeSets))
	for i := range x.EdgeSets {
		set := &x.EdgeSets[i]
		if set.Radius == nil {
			return nil, fmt.Errorf("edge set %d radius: %w", i, ErrMissingField)
		}
		if len(set.Edges) == 0 {
			return nil, fmt.Errorf("edge set %d edges: %w", i, ErrMissingField)
		}
		edgeIdxs := make([]int64, 0, len(set.Edges))
		for _, edge := range set.Edges {
			eidx, err := e.encodeSelection(edge)
			if err != nil {
				return nil, fmt.Errorf("edge set %d: %w", i, err)
			}
			edgeIdxs = append(edgeIdxs, eidx)
		}
		e.begin(vocab.TypeFillet)
		idx := e.reserveIndex()
		e.pushDiscrete(vocab.KeyIdx, idx)
		e.pushNumeric(vocab.KeyRadius, set.Radius.Value)
		for _, eidx := range edgeIdxs {
			e.pushDiscrete(vocab.KeyFilletEdgeIdx, eidx)
		}
		e.end()
		indices = append(indices, idx)
	}
	return indices, nil
}

func encodeChamfer(e *Encoder, f feature.Feature) ([]int64, error) {
	x := f.(*feature.ChamferFeature)
	if x.ChamferType == "" {
		return nil, fmt.Errorf("chamferType: %w", ErrMissingField)
	}
	typeID, ok := vocab.ChamferType.ID(x.ChamferType)
	if !ok {
		return nil, fmt.Errorf("chamferType %q: %w", x.ChamferType, ErrVocabulary)
	}
	switch x.ChamferType {
	case feature.ChamferTwoDistances:
		if x.DistanceOne == nil || x.DistanceTwo == nil {
			return nil, fmt.Errorf("chamfer distances: %w", ErrMissingField)
		}
	case feature.ChamferDistanceAndAngle:
		if x.Distance == nil || x.Angle == nil {
			return nil, fmt.Errorf("chamfer distance or angle: %w", ErrMissingField)
		}
	case feature.ChamferDistanceOnly:
		if x.Distance == nil {
			return nil, fmt.Errorf("chamfer distance: %w", ErrMissingField)
		}
	}

	// The two dimensioned-from-a-face forms need the face selection,
	// emitted before the edges.
	var faceIdx int64
	if x.ChamferType == feature.ChamferTwoDistances || x.ChamferType == feature.ChamferDistanceAndAngle {
		if x.Face == nil || x.Face.IsZero() {
			return nil, fmt.Errorf("chamfer %s face: %w", x.ChamferType, ErrMissingField)
		}
		idx, err := e.encodeSelection(*x.Face)
		if err != nil {
			return nil, err
		}
		faceIdx = idx
	}
	edgeIdxs := make([]int64, 0, len(x.Edges))
	for _, edge := range x.Edges {
		eidx, err := e.encodeSelection(edge)
		if err != nil {
			return nil, err
		}
		edgeIdxs = append(edgeIdxs, eidx)
	}

	e.begin(vocab.TypeChamfer)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushDiscrete(vocab.KeyChamferType, typeID)
	switch x.ChamferType {
	case feature.ChamferTwoDistances:
		e.pushNumeric(vocab.KeyChamferDistA, x.DistanceOne.Value)
		e.pushNumeric(vocab.KeyChamferDistB, x.DistanceTwo.Value)
		e.pushDiscrete(vocab.KeyChamferFaceIdx, faceIdx)
	case feature.ChamferDistanceAndAngle:
		e.pushNumeric(vocab.KeyChamferDistA, x.Distance.Value)
		e.pushNumeric(vocab.KeyChamferAngle, x.Angle.Value)
		e.pushDiscrete(vocab.KeyChamferFaceIdx, faceIdx)
	case feature.ChamferDistanceOnly:
		e.pushNumeric(vocab.KeyChamferDistA, x.Distance.Value)
	}
	for _, eidx := range edgeIdxs {
		e.pushDiscrete(vocab.KeyChamferEdgeIdx, eidx)
	}
	e.end()
	return []int64{idx}, nil
}

func encodeHole(e *Encoder, f feature.Feature) ([]int64, error) {
	x := f.(*feature.HoleFeature)
	if x.SketchPlane == nil {
		return nil, fmt.Errorf("sketchPlane: %w", ErrMissingField)
	}
	if x.HoleDiameter == nil || x.Extent == nil || x.Depth == nil {
		return nil, fmt.Errorf("holeDiameter, extent, or depth: %w", ErrMissingField)
	}

	sketchIdx, err := e.encodeSketchStart(x.SketchPlane)
	if err != nil {
		return nil, err
	}
	for _, pt := range x.HoleCenterPoints {
		e.encodePoint(pt)
	}
	e.encodeSketchEnd(sketchIdx)

	extentType := x.ExtentType
	if extentType == "" {
		extentType = x.Extent.Type
	}
	extentIdx, err := e.encodeExtent(extentType, x.Extent)
	if err != nil {
		return nil, err
	}

	// A false flat-bottom flag without a tip angle is contradictory;
	// it encodes as flat.
	var tipAngle *feature.Param
	if x.IsFlatBottomed == nil || !*x.IsFlatBottomed {
		tipAngle = x.BottomTipAngle
	}

	e.begin(vocab.TypeHole)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushDiscrete(vocab.KeyParent, sketchIdx)
	e.pushNumeric(vocab.KeyDiameter, x.HoleDiameter.Value)
	e.pushDiscrete(vocab.KeyHoleExtent, extentIdx)
	e.pushNumeric(vocab.KeyDepth, x.Depth.Value)
	if x.IsFlatBottomed != nil {
		flat := *x.IsFlatBottomed
		if !flat && tipAngle == nil {
			flat = true
		}
		e.pushDiscrete(vocab.KeyIsFlatBottom, flagID(flat))
		if !flat && tipAngle != nil {
			e.pushNumeric(vocab.KeyBottomTipAngle, tipAngle.Value)
		}
	}
	e.end()
	return []int64{idx}, nil
}

func encodeShell(e *Encoder, f feature.Feature) ([]int64, error) {
	x := f.(*feature.ShellFeature)
	if x.Thickness == nil || x.Direction == "" {
		return nil, fmt.Errorf("thickness or direction: %w", ErrMissingField)
	}
	dirID, ok := vocab.ShellDir.ID(x.Direction)
	if !ok {
		return nil, fmt.Errorf("shell direction %q: %w", x.Direction, ErrVocabulary)
	}
	faceIdxs := make([]int64, 0, len(x.InputFaces))
	for _, face := range x.InputFaces {
		fidx, err := e.encodeSelection(face)
		if err != nil {
			return nil, err
		}
		faceIdxs = append(faceIdxs, fidx)
	}

	e.begin(vocab.TypeShell)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushNumeric(vocab.KeyShellThickness, x.Thickness.Value)
	e.pushDiscrete(vocab.KeyShellDirection, dirID)
	for _, fidx := range faceIdxs {
		e.pushDiscrete(vocab.KeyShellFaceIdx, fidx)
	}
	e.end()
	return []int64{idx}, nil
}

func encodeMirror(e *Encoder, f feature.Feature) ([]int64, error) {
	x := f.(*feature.MirrorFeature)
	if x.MirrorPlane == nil {
		return nil, fmt.Errorf("mirrorPlane: %w", ErrMissingField)
	}
	if x.IsMirrorPlaneFace && x.MirrorPlane.Face == nil {
		return nil, fmt.Errorf("mirror plane face metadata: %w", ErrMissingField)
	}
	if x.ComputeType == "" {
		return nil, fmt.Errorf("computeType: %w", ErrMissingField)
	}
	computeID, ok := vocab.PatternComputeType.ID(x.ComputeType)
	if !ok {
		return nil, fmt.Errorf("computeType %q: %w", x.ComputeType, ErrVocabulary)
	}

	// The reflection frame comes from the face signature (centroid +
	// orientation) or from the explicit plane geometry.
	var point, normal geometry.Vec3
	var faceIdx int64
	hasFaceIdx := false
	switch {
	case x.MirrorPlane.Face != nil:
		face := x.MirrorPlane.Face.Face
		if face == nil {
			return nil, fmt.Errorf("mirror plane face metadata: %w", ErrMissingField)
		}
		if face.Orientation == nil {
			return nil, fmt.Errorf("mirror plane face orientation: %w", ErrMissingField)
		}
		normal = geometry.FromTriple(*face.Orientation)
		point = geometry.FromTriple(face.Centroid)
		faceIdx = e.encodeFaceSelection(face)
		hasFaceIdx = true
	case x.MirrorPlane.Plane != nil:
		if g := x.MirrorPlane.Plane.Geometry; g != nil {
			point, normal = g.Origin, g.Normal
		}
	default:
		return nil, fmt.Errorf("mirrorPlane: %w", ErrMissingField)
	}

	var featureIdxs []int64
	var removeOriginal, opID int64
	if x.IsMirrorBody {
		if x.RemoveOriginal == nil || x.Operation == "" {
			return nil, fmt.Errorf("body mirror operation or removeOriginal: %w", ErrMissingField)
		}
		opID, ok = vocab.Op.ID(x.Operation)
		if !ok {
			return nil, fmt.Errorf("operation %q: %w", x.Operation, ErrVocabulary)
		}
		removeOriginal = boolID(x.RemoveOriginal)
	} else {
		if len(x.FeaturesToMirror) == 0 {
			return nil, fmt.Errorf("featuresToMirror: %w", ErrMissingField)
		}
		featureIdxs = e.resolveNames(x.FeaturesToMirror)
	}

	e.begin(vocab.TypeMirror)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushDiscrete(vocab.KeyIsMirrorBody, flagID(x.IsMirrorBody))
	e.pushDiscrete(vocab.KeyMirrorComputeType, computeID)
	if x.IsMirrorPlaneFace && hasFaceIdx {
		e.pushDiscrete(vocab.KeyMirrorPlaneFace, faceIdx)
	}
	if x.IsMirrorBody {
		e.pushDiscrete(vocab.KeyRemoveOriginal, removeOriginal)
		e.pushDiscrete(vocab.KeyMirrorOp, opID)
	} else {
		for _, fidx := range featureIdxs {
			e.pushDiscrete(vocab.KeyMirrorFeatureIdx, fidx)
		}
	}
	e.pushNumeric(vocab.KeyMirrorPlaneOX, point.X)
	e.pushNumeric(vocab.KeyMirrorPlaneOY, point.Y)
	e.pushNumeric(vocab.KeyMirrorPlaneOZ, point.Z)
	e.pushNumeric(vocab.KeyMirrorPlaneNX, normal.X)
	e.pushNumeric(vocab.KeyMirrorPlaneNY, normal.Y)
	e.pushNumeric(vocab.KeyMirrorPlaneNZ, normal.Z)
	e.end()
	return []int64{idx}, nil
}

func encodeRectPattern(e *Encoder, f feature.Feature) ([]int64, error) {
	x := f.(*feature.RectangularPatternFeature)
	if x.XDirectionEntity == nil {
		return nil, fmt.Errorf("xDirectionEntity: %w", ErrMissingField)
	}
	if x.XSpacingType == "" || x.XCount == nil || x.XSpacing == nil ||
		x.XNaturalDirection == nil || x.IsPatternOfBody == nil {
		return nil, fmt.Errorf("xCount, xSpacing, xSpacingType, xNaturalDirection, or isPatternOfBody: %w", ErrMissingField)
	}
	spacingID, ok := vocab.PatternSpacingType.ID(x.XSpacingType)
	if !ok {
		return nil, fmt.Errorf("xSpacingType %q: %w", x.XSpacingType, ErrVocabulary)
	}
	var featureIdxs []int64
	if !*x.IsPatternOfBody {
		if len(x.FeaturesToPattern) == 0 {
			return nil, fmt.Errorf("featuresToPattern: %w", ErrMissingField)
		}
		featureIdxs = e.resolveNames(x.FeaturesToPattern)
	}

	dir := x.XDirectionEntity.AxisInfo.Direction
	e.begin(vocab.TypeRectPattern)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushDiscrete(vocab.KeyRectIsPatternBody, boolID(x.IsPatternOfBody))
	e.pushDiscrete(vocab.KeyRectXCount, int64(x.XCount.Value))
	e.pushNumeric(vocab.KeyRectXSpacing, x.XSpacing.Value)
	e.pushDiscrete(vocab.KeyRectIsNaturalXDir, boolID(x.XNaturalDirection))
	e.pushDiscrete(vocab.KeyRectXSpacingType, spacingID)
	e.pushNumeric(vocab.KeyRectXDirX, dir.X)
	e.pushNumeric(vocab.KeyRectXDirY, dir.Y)
	e.pushNumeric(vocab.KeyRectXDirZ, dir.Z)
	for _, fidx := range featureIdxs {
		e.pushDiscrete(vocab.KeyRectFeatureIdx, fidx)
	}
	e.end()
	return []int64{idx}, nil
}

func encodeCircPattern(e *Encoder, f feature.Feature) ([]int64, error) {
	x := f.(*feature.CircularPatternFeature)
	if x.RotationAxis == nil {
		return nil, fmt.Errorf("rotationAxis: %w", ErrMissingField)
	}
	if x.IsPatternOfBody == nil || x.Count == nil || x.Angle == nil || x.IsNaturalAxisDirection == nil {
		return nil, fmt.Errorf("count, angle, isNaturalAxisDirection, or isPatternOfBody: %w", ErrMissingField)
	}
	var featureIdxs []int64
	if !*x.IsPatternOfBody {
		if len(x.FeaturesToPattern) == 0 {
			return nil, fmt.Errorf("featuresToPattern: %w", ErrMissingField)
		}
		featureIdxs = e.resolveNames(x.FeaturesToPattern)
	}

	axis := x.RotationAxis.AxisInfo
	e.begin(vocab.TypeCircularPattern)
	idx := e.reserveIndex()
	e.pushDiscrete(vocab.KeyIdx, idx)
	e.pushDiscrete(vocab.KeyCircIsPatternBody, boolID(x.IsPatternOfBody))
	e.pushDiscrete(vocab.KeyCircCount, int64(x.Count.Value))
	e.pushNumeric(vocab.KeyCircAngle, x.Angle.Value)
	e.pushDiscrete(vocab.KeyCircNaturalDir, boolID(x.IsNaturalAxisDirection))
	e.pushNumeric(vocab.KeyCircAxisDirX, axis.Direction.X)
	e.pushNumeric(vocab.KeyCircAxisDirY, axis.Direction.Y)
	e.pushNumeric(vocab.KeyCircAxisDirZ, axis.Direction.Z)
	e.pushNumeric(vocab.KeyCircAxisOX, axis.StartPoint.X)
	e.pushNumeric(vocab.KeyCircAxisOY, axis.StartPoint.Y)
	e.pushNumeric(vocab.KeyCircAxisOZ, axis.StartPoint.Z)
	for _, fidx := range featureIdxs {
		e.pushDiscrete(vocab.KeyCircFeatureIdx, fidx)
	}
	e.end()
	return []int64{idx}, nil
}

// flagID renders a bool as a discrete 0/1.
func flagID(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
