// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"github.com/featseq/featseq/lib/feature"
	"github.com/featseq/featseq/lib/geometry"
)

func decodeExtrude(d *decoder, in *instruction, name string) feature.Feature {
	extType := in.nameOr(d.extent, "EXTENT_ONE_TYPE", "kDistanceExtent")
	x := &feature.ExtrudeFeature{
		Name:             name,
		Operation:        in.nameOr(d.op, "OP", "kJoinOperation"),
		ExtentType:       extType,
		Extent:           d.makeExtent(in.intOr("EXTENT_ONE", 0), extType),
		IsTwoDirectional: in.boolOr("ISTWO_DIRECTIONAL", false),
		Profile:          d.makeProfile(in.intOr("PARENT", 0)),
	}
	if x.IsTwoDirectional {
		twoType := in.nameOr(d.extent, "EXTENT_TWO_TYPE", "kDistanceExtent")
		x.ExtentTwoType = twoType
		x.ExtentTwo = d.makeExtent(in.intOr("EXTENT_TWO", 0), twoType)
	}
	return x
}

func decodeRevolve(d *decoder, in *instruction, name string) feature.Feature {
	extType := in.nameOr(d.extent, "EXTENT_ONE_TYPE", "kAngleExtent")
	x := &feature.RevolveFeature{
		Name:       name,
		Operation:  in.nameOr(d.op, "OP", "kJoinOperation"),
		ExtentType: extType,
		Extent:     d.makeExtent(in.intOr("EXTENT_ONE", 0), extType),
		AxisEntity: feature.Axis(
			geometry.Vec3{X: in.floatOr("AXIS_X", 0), Y: in.floatOr("AXIS_Y", 0), Z: in.floatOr("AXIS_Z", 0)},
			geometry.Vec3{X: in.floatOr("AXIS_DIR_X", 0), Y: in.floatOr("AXIS_DIR_Y", 0), Z: in.floatOr("AXIS_DIR_Z", 0)},
		),
		IsTwoDirectional: in.boolOr("ISTWO_DIRECTIONAL", false),
		Profile:          d.makeProfile(in.intOr("PARENT", 0)),
	}
	if x.IsTwoDirectional {
		twoType := in.nameOr(d.extent, "EXTENT_TWO_TYPE", "kAngleExtent")
		x.ExtentTwoType = twoType
		x.ExtentTwo = d.makeExtent(in.intOr("EXTENT_TWO", 0), twoType)
	}
	return x
}

// decodeFillet yields a single edge set per instruction: a fillet
// encoded from several edge sets comes back as that many
// single-set fillets.
func decodeFillet(d *decoder, in *instruction, name string) feature.Feature {
	return &feature.FilletFeature{
		Name: name,
		EdgeSets: []feature.EdgeSet{{
			Radius: feature.Unitless("Radius", in.floatOr("RADIUS", 0)),
			Edges:  d.selectionList(in, "FILLET_EDGE_IDX"),
		}},
	}
}

func decodeChamfer(d *decoder, in *instruction, name string) feature.Feature {
	x := &feature.ChamferFeature{
		Name:        name,
		ChamferType: in.nameOr(d.chamfer, "CHAMFER_TYPE", "kDistance"),
		Edges:       d.selectionList(in, "CHAMFER_EDGE_IDX"),
	}
	switch x.ChamferType {
	case feature.ChamferTwoDistances:
		x.DistanceOne = feature.Unitless("DistanceOne", in.floatOr("CHAMFER_DIST_A", 0))
		x.DistanceTwo = feature.Unitless("DistanceTwo", in.floatOr("CHAMFER_DIST_B", 0))
		x.Face = d.selectionRef(in.intPtr("CHAMFER_FACE_IDX"))
	case feature.ChamferDistanceAndAngle:
		x.Distance = feature.Unitless("Distance", in.floatOr("CHAMFER_DIST_A", 0))
		x.Angle = feature.Unitless("Angle", in.floatOr("CHAMFER_ANGLE", 0))
		x.Face = d.selectionRef(in.intPtr("CHAMFER_FACE_IDX"))
	default:
		x.Distance = feature.Unitless("Distance", in.floatOr("CHAMFER_DIST_A", 0))
	}
	return x
}

// decodeHole infers the extent type from the referenced extent
// record: a non-zero distance means a distance extent, anything else
// reads as through-all.
func decodeHole(d *decoder, in *instruction, name string) feature.Feature {
	extIdx := in.intOr("HOLE_EXTENT", 0)
	raw := d.extents[extIdx]
	extType := "kThroughAllExtent"
	if raw.dist != nil && *raw.dist != 0 {
		extType = "kDistanceExtent"
	}

	points := []geometry.Vec2{}
	var plane *feature.PlaneEntity
	if sk, ok := d.sketches[in.intOr("PARENT", 0)]; ok {
		plane = d.makePlane(sk)
		points = append(points, sk.points...)
	}

	flat := in.boolOr("IS_FLAT_BOTTOM", false)
	x := &feature.HoleFeature{
		Name:             name,
		HoleType:         "kDrilledHole",
		ExtentType:       extType,
		Extent:           d.makeExtent(extIdx, extType),
		IsFlatBottomed:   boolPtr(flat),
		SketchPlane:      plane,
		HoleCenterPoints: points,
		HoleDiameter:     feature.Unitless("Diameter", in.floatOr("DIAMETER", 0)),
		Depth:            &feature.Param{Value: in.floatOr("DEPTH", 0)},
	}
	if !flat && in.has("BOTTOM_TIP_ANGLE") {
		x.BottomTipAngle = feature.Unitless("BottomTipAngle", in.floatOr("BOTTOM_TIP_ANGLE", 0))
	}
	return x
}

func decodeShell(d *decoder, in *instruction, name string) feature.Feature {
	return &feature.ShellFeature{
		Name:       name,
		Thickness:  feature.Unitless("Thickness", in.floatOr("SHELL_THICKNESS", 0)),
		Direction:  in.nameOr(d.shell, "SHELL_DIRECTION", "kInsideShellDirection"),
		InputFaces: d.selectionList(in, "SHELL_FACE_IDX"),
	}
}

func decodeMirror(d *decoder, in *instruction, name string) feature.Feature {
	x := &feature.MirrorFeature{
		Name:              name,
		IsMirrorBody:      in.boolOr("IS_MIRROR_BODY", false),
		IsMirrorPlaneFace: in.has("MIRROR_PLANE_FACE_IDX"),
		ComputeType:       in.nameOr(d.compute, "MIRROR_COMPUTE_TYPE", "kIdenticalCompute"),
	}
	if x.IsMirrorPlaneFace {
		sel := d.selections[in.intOr("MIRROR_PLANE_FACE_IDX", 0)]
		x.MirrorPlane = &feature.MirrorPlane{Face: &sel}
	} else {
		x.MirrorPlane = &feature.MirrorPlane{Plane: &feature.PlaneEntity{
			Geometry: &feature.PlaneGeometry{
				Origin: geometry.Vec3{
					X: in.floatOr("MIRROR_PLANE_OX", 0),
					Y: in.floatOr("MIRROR_PLANE_OY", 0),
					Z: in.floatOr("MIRROR_PLANE_OZ", 0),
				},
				Normal: geometry.Vec3{
					X: in.floatOr("MIRROR_PLANE_NX", 0),
					Y: in.floatOr("MIRROR_PLANE_NY", 0),
					Z: in.floatOr("MIRROR_PLANE_NZ", 0),
				},
				AxisX: geometry.Vec3{X: 1},
				AxisY: geometry.Vec3{Y: 1},
			},
		}}
	}
	if x.IsMirrorBody {
		x.RemoveOriginal = boolPtr(in.boolOr("REMOVE_ORIGINAL", false))
		x.Operation = in.nameOr(d.op, "MIRROR_OP", "kJoinOperation")
	} else {
		x.FeaturesToMirror = d.resolveNameList(in, "MIRROR_FEATURE_IDX")
	}
	return x
}

func decodeRectPattern(d *decoder, in *instruction, name string) feature.Feature {
	isBody := in.boolOr("RECT_IS_PATTERN_BODY", false)
	x := &feature.RectangularPatternFeature{
		Name:            name,
		IsPatternOfBody: boolPtr(isBody),
		XCount:          feature.Unitless("XCount", in.firstFloat(1, "RECT_X_COUNT", "RECT_PATTERN_X_COUNT")),
		XSpacing:        feature.Unitless("XSpacing", in.firstFloat(0, "RECT_X_SPACING", "RECT_PATTERN_X_SPACING")),
		XNaturalDirection: boolPtr(in.firstBool(true,
			"RECT_IS_NATURAL_X_DIR", "RECT_IS_NARTURE_X_DIR", "RECT_X_NATURAL_DIR")),
		XSpacingType: d.spacing.NameOr(
			in.firstInt(0, "RECT_X_SPACING_TYPE", "RECT_PATTERN_SPACING_TYPE"), "kDefault"),
		XDirectionEntity: feature.Axis(geometry.Vec3{}, geometry.Vec3{
			X: in.firstFloat(1, "RECT_X_DIR_X", "RECT_DIR_X"),
			Y: in.firstFloat(0, "RECT_X_DIR_Y", "RECT_DIR_Y"),
			Z: in.firstFloat(0, "RECT_X_DIR_Z", "RECT_DIR_Z"),
		}),
	}
	if !isBody {
		x.FeaturesToPattern = d.resolveNameList(in, "RECT_FEATURE_IDX")
	}
	return x
}

func decodeCircPattern(d *decoder, in *instruction, name string) feature.Feature {
	isBody := in.boolOr("CIRC_IS_PATTERN_BODY", false)
	x := &feature.CircularPatternFeature{
		Name:                   name,
		IsPatternOfBody:        boolPtr(isBody),
		Count:                  feature.Unitless("Count", in.floatOr("CIRC_COUNT", 1)),
		Angle:                  feature.Unitless("Angle", in.floatOr("CIRC_ANGLE", 0)),
		IsNaturalAxisDirection: boolPtr(in.boolOr("CIRC_NATURAL_DIR", true)),
		RotationAxis: feature.Axis(
			geometry.Vec3{X: in.floatOr("CIRC_AXIS_OX", 0), Y: in.floatOr("CIRC_AXIS_OY", 0), Z: in.floatOr("CIRC_AXIS_OZ", 0)},
			geometry.Vec3{X: in.floatOr("CIRC_AXIS_DIR_X", 0), Y: in.floatOr("CIRC_AXIS_DIR_Y", 0), Z: in.floatOr("CIRC_AXIS_DIR_Z", 0)},
		),
	}
	if !isBody {
		x.FeaturesToPattern = d.resolveNameList(in, "CIRC_FEATURE_IDX")
	}
	return x
}
