// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"errors"
	"reflect"
	"testing"

	"github.com/featseq/featseq/lib/feature"
	"github.com/featseq/featseq/lib/geometry"
	"github.com/featseq/featseq/lib/vocab"
)

// xyPlane returns a sketch plane on the global XY frame.
func xyPlane() *feature.PlaneEntity {
	return &feature.PlaneEntity{
		Geometry: &feature.PlaneGeometry{
			Normal: geometry.Vec3{Z: 1},
			AxisX:  geometry.Vec3{X: 1},
			AxisY:  geometry.Vec3{Y: 1},
		},
	}
}

func sketchLine(x0, y0, x1, y1 float64) feature.PathEntity {
	return feature.PathEntity{
		CurveType:        feature.CurveLine,
		StartSketchPoint: &geometry.Vec2{X: x0, Y: y0},
		EndSketchPoint:   &geometry.Vec2{X: x1, Y: y1},
	}
}

// rectProfile returns one closed path of four lines on the XY plane: a
// w by h rectangle with a corner at the origin.
func rectProfile(w, h float64) *feature.Profile {
	return &feature.Profile{
		SketchPlane: xyPlane(),
		ProfilePaths: []feature.ProfilePath{{
			PathEntities: []feature.PathEntity{
				sketchLine(0, 0, w, 0),
				sketchLine(w, 0, w, h),
				sketchLine(w, h, 0, h),
				sketchLine(0, h, 0, 0),
			},
		}},
	}
}

func circleProfile(r float64) *feature.Profile {
	return &feature.Profile{
		SketchPlane: xyPlane(),
		ProfilePaths: []feature.ProfilePath{{
			PathEntities: []feature.PathEntity{{
				CurveType: feature.CurveCircle,
				Curve:     &feature.Curve{Radius: r},
			}},
		}},
	}
}

func distanceExtent(v float64) *feature.Extent {
	return &feature.Extent{
		Type:      feature.ExtentTypeDistance,
		Distance:  feature.Unitless("Distance", v),
		Direction: "kPositiveExtentDirection",
	}
}

// testExtrude returns a valid one-direction extrude of a 4 by 2
// rectangle, 10 units along the positive normal.
func testExtrude(name string) *feature.ExtrudeFeature {
	return &feature.ExtrudeFeature{
		Name:       name,
		Operation:  "kNewBodyOperation",
		ExtentType: "kDistanceExtent",
		Extent:     distanceExtent(10),
		Profile:    rectProfile(4, 2),
	}
}

// edgeSelection returns a vertical line edge of length n whose
// signature values are all exactly representable.
func edgeSelection(n float64) feature.Selection {
	return feature.Selection{Edge: &feature.Edge{
		GeometryType: "kLineCurve",
		Length:       n,
		Midpoint:     [3]float64{n, n / 2, 0},
		Endpoints:    [][3]float64{{n, 0, 0}, {n, n, 0}},
	}}
}

func faceSelection(area float64) feature.Selection {
	return feature.Selection{Face: &feature.Face{
		SurfaceType: "kPlaneSurface",
		Area:        area,
		Centroid:    [3]float64{area, 0, 1},
	}}
}

func mustEncode(t *testing.T, features []feature.Feature) *Payload {
	t.Helper()
	p, err := Encode(features)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	return p
}

// groupPayload splits a payload into its instructions through the same
// path the decoder uses.
func groupPayload(p *Payload) []instruction {
	return newDecoder(p.Vocab).group(p)
}

func typeNames(ins []instruction) []string {
	names := make([]string, len(ins))
	for i := range ins {
		names[i] = ins[i].typeName
	}
	return names
}

// findInstruction returns the nth instruction of the given type,
// counting from zero.
func findInstruction(t *testing.T, ins []instruction, typeName string, nth int) *instruction {
	t.Helper()
	for i := range ins {
		if ins[i].typeName != typeName {
			continue
		}
		if nth == 0 {
			return &ins[i]
		}
		nth--
	}
	t.Fatalf("no %s instruction (want occurrence %d) in %v", typeName, nth, typeNames(ins))
	return nil
}

func TestEncodeEmpty(t *testing.T) {
	for _, features := range [][]feature.Feature{nil, {}} {
		p := mustEncode(t, features)
		if p.Len() != 2 {
			t.Fatalf("empty document encoded to %d slots, want 2", p.Len())
		}
		if p.KeyIDs[0] != vocab.KeyBOS || p.KeyIDs[1] != vocab.KeyEOS {
			t.Errorf("key ids = %v, want [BOS EOS] = [%d %d]", p.KeyIDs, vocab.KeyBOS, vocab.KeyEOS)
		}
	}
}

// TestEncodeArrayInvariants checks the parallel-array contract on a
// document that exercises every instruction family: equal lengths,
// 0/1 numeric flags, and the unused half of every slot zeroed.
func TestEncodeArrayInvariants(t *testing.T) {
	p := mustEncode(t, allKindsDocument())
	if err := p.checkLengths(); err != nil {
		t.Fatalf("checkLengths() = %v", err)
	}
	for i := range p.KeyIDs {
		switch p.IsNumeric[i] {
		case 0:
			if p.ValFloats[i] != 0 {
				t.Errorf("slot %d: discrete slot has val_floats %v", i, p.ValFloats[i])
			}
		case 1:
			if p.ValIDs[i] != 0 {
				t.Errorf("slot %d: numeric slot has val_ids %v", i, p.ValIDs[i])
			}
		default:
			t.Errorf("slot %d: is_numeric = %d, want 0 or 1", i, p.IsNumeric[i])
		}
	}
	if p.KeyIDs[0] != vocab.KeyBOS {
		t.Errorf("first key id = %d, want BOS", p.KeyIDs[0])
	}
	if last := p.KeyIDs[p.Len()-1]; last != vocab.KeyEOS {
		t.Errorf("last key id = %d, want EOS", last)
	}
}

func TestEncodeExtrudeSequence(t *testing.T) {
	p := mustEncode(t, []feature.Feature{testExtrude("Extrude1")})

	// BOS, a 16-slot sketch start, path markers, four 7-slot lines,
	// the sketch end, a 6-slot extent, the 9-slot extrude, EOS.
	if p.Len() != 71 {
		t.Errorf("payload length = %d, want 71", p.Len())
	}

	ins := groupPayload(p)
	want := []string{
		"SketchStart", "PathStart", "Line", "Line", "Line", "Line",
		"PathEnd", "SketchEnd", "Extent", "Extrude",
	}
	if got := typeNames(ins); !reflect.DeepEqual(got, want) {
		t.Fatalf("instruction sequence = %v, want %v", got, want)
	}

	sketch := findInstruction(t, ins, "SketchStart", 0)
	if sketch.idx == nil || *sketch.idx != 1 {
		t.Errorf("sketch index = %v, want 1", sketch.idx)
	}
	if got := sketch.floatOr("NZ", -1); got != 1 {
		t.Errorf("sketch plane NZ = %v, want 1", got)
	}

	extent := findInstruction(t, ins, "Extent", 0)
	if extent.idx == nil || *extent.idx != 2 {
		t.Errorf("extent index = %v, want 2", extent.idx)
	}
	dist, ok := extent.scalars["DIST"]
	if !ok || !dist.numeric || dist.f != 10 {
		t.Errorf("extent DIST slot = %+v, want numeric 10", dist)
	}
	dir, ok := extent.scalars["DIR"]
	if !ok || dir.numeric || dir.id != vocab.DirPositive {
		t.Errorf("extent DIR slot = %+v, want discrete %d", dir, vocab.DirPositive)
	}

	extrude := findInstruction(t, ins, "Extrude", 0)
	if extrude.idx == nil || *extrude.idx != 3 {
		t.Errorf("extrude index = %v, want 3", extrude.idx)
	}
	if got := extrude.intOr("PARENT", -1); got != 1 {
		t.Errorf("extrude PARENT = %d, want 1", got)
	}
	if got := extrude.intOr("EXTENT_ONE", -1); got != 2 {
		t.Errorf("extrude EXTENT_ONE = %d, want 2", got)
	}
	if got := extrude.intOr("OP", -1); got != vocab.OpNewBody {
		t.Errorf("extrude OP = %d, want %d", got, vocab.OpNewBody)
	}
	if got := extrude.intOr("EXTENT_ONE_TYPE", -1); got != vocab.ExtentDistance {
		t.Errorf("extrude EXTENT_ONE_TYPE = %d, want %d", got, vocab.ExtentDistance)
	}
	if got := extrude.intOr("ISTWO_DIRECTIONAL", -1); got != 0 {
		t.Errorf("extrude ISTWO_DIRECTIONAL = %d, want 0", got)
	}

	line := findInstruction(t, ins, "Line", 1)
	if got := line.floatOr("SPX", -1); got != 4 {
		t.Errorf("second line SPX = %v, want 4", got)
	}
	if got := line.floatOr("EPY", -1); got != 2 {
		t.Errorf("second line EPY = %v, want 2", got)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	doc := allKindsDocument()
	first := mustEncode(t, doc)
	second := mustEncode(t, doc)
	if !reflect.DeepEqual(first, second) {
		t.Error("two encodes of the same document differ")
	}
}

func TestEncoderReuse(t *testing.T) {
	e := NewEncoder(EncoderConfig{})
	doc := []feature.Feature{testExtrude("Extrude1")}
	first, err := e.Encode(doc)
	if err != nil {
		t.Fatalf("first Encode() failed: %v", err)
	}
	firstCopy := append([]int64(nil), first.KeyIDs...)
	second, err := e.Encode(doc)
	if err != nil {
		t.Fatalf("second Encode() failed: %v", err)
	}
	if !reflect.DeepEqual(first.KeyIDs, firstCopy) {
		t.Error("second Encode() mutated the first payload's key ids")
	}
	if !reflect.DeepEqual(second.KeyIDs, firstCopy) {
		t.Error("reused encoder produced different key ids")
	}
}

func TestEncodeRounding(t *testing.T) {
	extrude := testExtrude("Extrude1")
	extrude.Profile.ProfilePaths[0].PathEntities[0].StartSketchPoint.X = 1.23456789

	tests := []struct {
		name      string
		tolerance float64
		want      float64
	}{
		{"default", 0, 1.234568},
		{"coarse", 1e-3, 1.235},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEncoder(EncoderConfig{RoundTolerance: tt.tolerance})
			p, err := e.Encode([]feature.Feature{extrude})
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			line := findInstruction(t, groupPayload(p), "Line", 0)
			if got := line.floatOr("SPX", -1); got != tt.want {
				t.Errorf("SPX = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeFilletEdgeSets(t *testing.T) {
	fillet := &feature.FilletFeature{
		Name: "Fillet1",
		EdgeSets: []feature.EdgeSet{
			{Radius: feature.Unitless("Radius", 1), Edges: []feature.Selection{edgeSelection(2), edgeSelection(3)}},
			{Radius: feature.Unitless("Radius", 2), Edges: []feature.Selection{edgeSelection(4)}},
		},
	}
	p := mustEncode(t, []feature.Feature{fillet})
	ins := groupPayload(p)

	want := []string{"Selection", "Selection", "Fillet", "Selection", "Fillet"}
	if got := typeNames(ins); !reflect.DeepEqual(got, want) {
		t.Fatalf("instruction sequence = %v, want %v", got, want)
	}

	first := findInstruction(t, ins, "Fillet", 0)
	if got := first.floatOr("RADIUS", -1); got != 1 {
		t.Errorf("first fillet RADIUS = %v, want 1", got)
	}
	if got := first.ints("FILLET_EDGE_IDX"); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("first fillet edges = %v, want [1 2]", got)
	}
	second := findInstruction(t, ins, "Fillet", 1)
	if got := second.floatOr("RADIUS", -1); got != 2 {
		t.Errorf("second fillet RADIUS = %v, want 2", got)
	}
	if got := second.ints("FILLET_EDGE_IDX"); !reflect.DeepEqual(got, []int64{4}) {
		t.Errorf("second fillet edges = %v, want [4]", got)
	}
}

func TestEncodeChamferDistanceOnly(t *testing.T) {
	chamfer := &feature.ChamferFeature{
		Name:        "Chamfer1",
		ChamferType: feature.ChamferDistanceOnly,
		Distance:    feature.Unitless("Distance", 0.5),
		Edges:       []feature.Selection{edgeSelection(2)},
	}
	p := mustEncode(t, []feature.Feature{chamfer})
	ins := groupPayload(p)

	want := []string{"Selection", "Chamfer"}
	if got := typeNames(ins); !reflect.DeepEqual(got, want) {
		t.Fatalf("instruction sequence = %v, want %v", got, want)
	}
	in := findInstruction(t, ins, "Chamfer", 0)
	if in.has("CHAMFER_FACE_IDX") {
		t.Error("distance-only chamfer encoded a CHAMFER_FACE_IDX slot")
	}
	if got := in.intOr("CHAMFER_TYPE", -1); got != vocab.ChamferDistance {
		t.Errorf("CHAMFER_TYPE = %d, want %d", got, vocab.ChamferDistance)
	}
	if got := in.floatOr("CHAMFER_DIST_A", -1); got != 0.5 {
		t.Errorf("CHAMFER_DIST_A = %v, want 0.5", got)
	}
	if got := in.ints("CHAMFER_EDGE_IDX"); !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf("CHAMFER_EDGE_IDX = %v, want [1]", got)
	}
}

// TestEncodeNameReferences pins the index arithmetic behind name
// references: a fillet with three edges occupies indices 1-4, the
// named extrude's own instruction lands at 7, and the pattern
// references exactly that index.
func TestEncodeNameReferences(t *testing.T) {
	doc := []feature.Feature{
		&feature.FilletFeature{
			Name: "Fillet1",
			EdgeSets: []feature.EdgeSet{
				{Radius: feature.Unitless("Radius", 1), Edges: []feature.Selection{
					edgeSelection(2), edgeSelection(3), edgeSelection(4),
				}},
			},
		},
		testExtrude("Extrude1"),
		&feature.RectangularPatternFeature{
			Name:              "Pattern1",
			IsPatternOfBody:   boolPtr(false),
			XCount:            feature.Unitless("XCount", 3),
			XSpacing:          feature.Unitless("XSpacing", 8),
			XNaturalDirection: boolPtr(true),
			XSpacingType:      "kDefault",
			XDirectionEntity:  feature.Axis(geometry.Vec3{}, geometry.Vec3{X: 1}),
			FeaturesToPattern: []string{"Extrude1"},
		},
	}
	p := mustEncode(t, doc)
	ins := groupPayload(p)

	extrude := findInstruction(t, ins, "Extrude", 0)
	if extrude.idx == nil || *extrude.idx != 7 {
		t.Fatalf("extrude index = %v, want 7", extrude.idx)
	}
	pattern := findInstruction(t, ins, "RectPattern", 0)
	if got := pattern.ints("RECT_FEATURE_IDX"); !reflect.DeepEqual(got, []int64{7}) {
		t.Errorf("RECT_FEATURE_IDX = %v, want [7]", got)
	}
}

// A fillet name expands to one reference per edge set.
func TestEncodeNameExpandsEdgeSets(t *testing.T) {
	doc := []feature.Feature{
		&feature.FilletFeature{
			Name: "Fillet1",
			EdgeSets: []feature.EdgeSet{
				{Radius: feature.Unitless("Radius", 1), Edges: []feature.Selection{edgeSelection(2)}},
				{Radius: feature.Unitless("Radius", 2), Edges: []feature.Selection{edgeSelection(3)}},
			},
		},
		&feature.MirrorFeature{
			Name: "Mirror1",
			MirrorPlane: &feature.MirrorPlane{Plane: &feature.PlaneEntity{
				Geometry: &feature.PlaneGeometry{Normal: geometry.Vec3{X: 1}},
			}},
			ComputeType:      "kIdenticalCompute",
			FeaturesToMirror: []string{"Fillet1"},
		},
	}
	p := mustEncode(t, doc)
	mirror := findInstruction(t, groupPayload(p), "Mirror", 0)
	// Selections 1 and 3, fillet instructions 2 and 4.
	if got := mirror.ints("MIRROR_FEATURE_IDX"); !reflect.DeepEqual(got, []int64{2, 4}) {
		t.Errorf("MIRROR_FEATURE_IDX = %v, want [2 4]", got)
	}
}

// A reference to a name that never encoded drops out of the payload
// rather than failing the encode.
func TestEncodeUnknownNameReference(t *testing.T) {
	doc := []feature.Feature{
		&feature.MirrorFeature{
			Name: "Mirror1",
			MirrorPlane: &feature.MirrorPlane{Plane: &feature.PlaneEntity{
				Geometry: &feature.PlaneGeometry{Normal: geometry.Vec3{X: 1}},
			}},
			ComputeType:      "kIdenticalCompute",
			FeaturesToMirror: []string{"Boss3"},
		},
	}
	p := mustEncode(t, doc)
	mirror := findInstruction(t, groupPayload(p), "Mirror", 0)
	if got := mirror.ints("MIRROR_FEATURE_IDX"); len(got) != 0 {
		t.Errorf("MIRROR_FEATURE_IDX = %v, want none", got)
	}
}

// A false flat-bottom flag with no tip angle to back it up encodes as
// flat.
func TestEncodeHoleFlatBottomCoercion(t *testing.T) {
	hole := &feature.HoleFeature{
		Name:             "Hole1",
		ExtentType:       "kDistanceExtent",
		Extent:           distanceExtent(5),
		IsFlatBottomed:   boolPtr(false),
		SketchPlane:      xyPlane(),
		HoleCenterPoints: []geometry.Vec2{{X: 1, Y: 1}},
		HoleDiameter:     feature.Unitless("Diameter", 0.8),
		Depth:            &feature.Param{Value: 5},
	}
	p := mustEncode(t, []feature.Feature{hole})
	in := findInstruction(t, groupPayload(p), "Hole", 0)
	if got := in.intOr("IS_FLAT_BOTTOM", -1); got != 1 {
		t.Errorf("IS_FLAT_BOTTOM = %d, want 1", got)
	}
	if in.has("BOTTOM_TIP_ANGLE") {
		t.Error("coerced-flat hole encoded a BOTTOM_TIP_ANGLE slot")
	}
}

// The mirror frame comes from the face signature when the plane is a
// model face: centroid as origin, orientation as normal.
func TestEncodeMirrorFacePlane(t *testing.T) {
	orientation := [3]float64{0, 0, 1}
	mirror := &feature.MirrorFeature{
		Name:              "Mirror1",
		IsMirrorBody:      true,
		IsMirrorPlaneFace: true,
		MirrorPlane: &feature.MirrorPlane{Face: &feature.Selection{Face: &feature.Face{
			SurfaceType: "kPlaneSurface",
			Area:        4,
			Centroid:    [3]float64{1, 2, 3},
			Orientation: &orientation,
		}}},
		ComputeType:    "kIdenticalCompute",
		RemoveOriginal: boolPtr(true),
		Operation:      "kJoinOperation",
	}
	p := mustEncode(t, []feature.Feature{mirror})
	ins := groupPayload(p)

	want := []string{"Selection", "Mirror"}
	if got := typeNames(ins); !reflect.DeepEqual(got, want) {
		t.Fatalf("instruction sequence = %v, want %v", got, want)
	}
	in := findInstruction(t, ins, "Mirror", 0)
	if got := in.intOr("MIRROR_PLANE_FACE_IDX", -1); got != 1 {
		t.Errorf("MIRROR_PLANE_FACE_IDX = %d, want 1", got)
	}
	if got := in.floatOr("MIRROR_PLANE_OY", -1); got != 2 {
		t.Errorf("MIRROR_PLANE_OY = %v, want 2", got)
	}
	if got := in.floatOr("MIRROR_PLANE_NZ", -1); got != 1 {
		t.Errorf("MIRROR_PLANE_NZ = %v, want 1", got)
	}
	if got := in.intOr("REMOVE_ORIGINAL", -1); got != 1 {
		t.Errorf("REMOVE_ORIGINAL = %d, want 1", got)
	}
	if got := in.intOr("MIRROR_OP", -1); got != vocab.OpJoin {
		t.Errorf("MIRROR_OP = %d, want %d", got, vocab.OpJoin)
	}
}

func TestEncodeStrictness(t *testing.T) {
	validChamferFace := faceSelection(9)

	tests := []struct {
		name     string
		features []feature.Feature
		want     error
	}{
		{"nil feature", []feature.Feature{nil}, ErrUnsupportedFeature},
		{"extrude missing operation", []feature.Feature{&feature.ExtrudeFeature{
			ExtentType: "kDistanceExtent", Extent: distanceExtent(1), Profile: rectProfile(1, 1),
		}}, ErrMissingField},
		{"extrude missing extent", []feature.Feature{&feature.ExtrudeFeature{
			Operation: "kJoinOperation", ExtentType: "kDistanceExtent", Profile: rectProfile(1, 1),
		}}, ErrMissingField},
		{"extrude unknown operation", []feature.Feature{&feature.ExtrudeFeature{
			Operation: "kGlueOperation", ExtentType: "kDistanceExtent",
			Extent: distanceExtent(1), Profile: rectProfile(1, 1),
		}}, ErrVocabulary},
		{"extrude unknown extent type", []feature.Feature{&feature.ExtrudeFeature{
			Operation: "kJoinOperation", ExtentType: "kMagicExtent",
			Extent: distanceExtent(1), Profile: rectProfile(1, 1),
		}}, ErrVocabulary},
		{"extrude unknown direction", []feature.Feature{&feature.ExtrudeFeature{
			Operation: "kJoinOperation", ExtentType: "kDistanceExtent",
			Extent:  &feature.Extent{Distance: feature.Unitless("Distance", 1), Direction: "kUpward"},
			Profile: rectProfile(1, 1),
		}}, ErrVocabulary},
		{"two-directional extrude missing second extent", []feature.Feature{&feature.ExtrudeFeature{
			Operation: "kJoinOperation", ExtentType: "kDistanceExtent",
			Extent: distanceExtent(1), IsTwoDirectional: true, Profile: rectProfile(1, 1),
		}}, ErrMissingField},
		{"to extent missing entity", []feature.Feature{&feature.ExtrudeFeature{
			Operation: "kJoinOperation", ExtentType: "kToExtent",
			Extent: &feature.Extent{}, Profile: rectProfile(1, 1),
		}}, ErrMissingField},
		{"revolve missing axis", []feature.Feature{&feature.RevolveFeature{
			Operation: "kJoinOperation", ExtentType: "kAngleExtent",
			Extent:  &feature.Extent{Angle: feature.Unitless("Angle", 3.14)},
			Profile: circleProfile(1),
		}}, ErrMissingField},
		{"fillet missing radius", []feature.Feature{&feature.FilletFeature{
			EdgeSets: []feature.EdgeSet{{Edges: []feature.Selection{edgeSelection(1)}}},
		}}, ErrMissingField},
		{"fillet empty edge set", []feature.Feature{&feature.FilletFeature{
			EdgeSets: []feature.EdgeSet{{Radius: feature.Unitless("Radius", 1)}},
		}}, ErrMissingField},
		{"edge with one endpoint", []feature.Feature{&feature.FilletFeature{
			EdgeSets: []feature.EdgeSet{{
				Radius: feature.Unitless("Radius", 1),
				Edges:  []feature.Selection{{Edge: &feature.Edge{Endpoints: [][3]float64{{0, 0, 0}}}}},
			}},
		}}, ErrMissingField},
		{"zero selection", []feature.Feature{&feature.FilletFeature{
			EdgeSets: []feature.EdgeSet{{
				Radius: feature.Unitless("Radius", 1),
				Edges:  []feature.Selection{{}},
			}},
		}}, ErrMissingField},
		{"chamfer missing type", []feature.Feature{&feature.ChamferFeature{
			Distance: feature.Unitless("Distance", 1), Edges: []feature.Selection{edgeSelection(1)},
		}}, ErrMissingField},
		{"chamfer unknown type", []feature.Feature{&feature.ChamferFeature{
			ChamferType: "kThreeDistances",
			Distance:    feature.Unitless("Distance", 1),
			Edges:       []feature.Selection{edgeSelection(1)},
		}}, ErrVocabulary},
		{"two-distance chamfer missing face", []feature.Feature{&feature.ChamferFeature{
			ChamferType: feature.ChamferTwoDistances,
			DistanceOne: feature.Unitless("DistanceOne", 1),
			DistanceTwo: feature.Unitless("DistanceTwo", 2),
			Edges:       []feature.Selection{edgeSelection(1)},
		}}, ErrMissingField},
		{"angle chamfer missing angle", []feature.Feature{&feature.ChamferFeature{
			ChamferType: feature.ChamferDistanceAndAngle,
			Distance:    feature.Unitless("Distance", 1),
			Face:        &validChamferFace,
			Edges:       []feature.Selection{edgeSelection(1)},
		}}, ErrMissingField},
		{"hole missing sketch plane", []feature.Feature{&feature.HoleFeature{
			ExtentType: "kDistanceExtent", Extent: distanceExtent(1),
			HoleDiameter: feature.Unitless("Diameter", 1), Depth: &feature.Param{Value: 1},
		}}, ErrMissingField},
		{"hole missing diameter", []feature.Feature{&feature.HoleFeature{
			ExtentType: "kDistanceExtent", Extent: distanceExtent(1),
			SketchPlane: xyPlane(), Depth: &feature.Param{Value: 1},
		}}, ErrMissingField},
		{"shell missing direction", []feature.Feature{&feature.ShellFeature{
			Thickness: feature.Unitless("Thickness", 1), InputFaces: []feature.Selection{faceSelection(1)},
		}}, ErrMissingField},
		{"shell unknown direction", []feature.Feature{&feature.ShellFeature{
			Thickness: feature.Unitless("Thickness", 1), Direction: "kSideways",
			InputFaces: []feature.Selection{faceSelection(1)},
		}}, ErrVocabulary},
		{"mirror missing plane", []feature.Feature{&feature.MirrorFeature{
			ComputeType: "kIdenticalCompute", FeaturesToMirror: []string{"Extrude1"},
		}}, ErrMissingField},
		{"mirror face plane missing orientation", []feature.Feature{&feature.MirrorFeature{
			IsMirrorPlaneFace: true,
			MirrorPlane: &feature.MirrorPlane{Face: &feature.Selection{Face: &feature.Face{
				SurfaceType: "kPlaneSurface", Area: 4, Centroid: [3]float64{0, 0, 2},
			}}},
			ComputeType:      "kIdenticalCompute",
			FeaturesToMirror: []string{"Extrude1"},
		}}, ErrMissingField},
		{"mirror feature mode without names", []feature.Feature{&feature.MirrorFeature{
			MirrorPlane: &feature.MirrorPlane{Plane: &feature.PlaneEntity{
				Geometry: &feature.PlaneGeometry{Normal: geometry.Vec3{X: 1}},
			}},
			ComputeType: "kIdenticalCompute",
		}}, ErrMissingField},
		{"body mirror missing operation", []feature.Feature{&feature.MirrorFeature{
			IsMirrorBody: true,
			MirrorPlane: &feature.MirrorPlane{Plane: &feature.PlaneEntity{
				Geometry: &feature.PlaneGeometry{Normal: geometry.Vec3{X: 1}},
			}},
			ComputeType:    "kIdenticalCompute",
			RemoveOriginal: boolPtr(true),
		}}, ErrMissingField},
		{"rect pattern missing spacing type", []feature.Feature{&feature.RectangularPatternFeature{
			IsPatternOfBody: boolPtr(true), XCount: feature.Unitless("XCount", 2),
			XSpacing: feature.Unitless("XSpacing", 1), XNaturalDirection: boolPtr(true),
			XDirectionEntity: feature.Axis(geometry.Vec3{}, geometry.Vec3{X: 1}),
		}}, ErrMissingField},
		{"rect pattern unknown spacing type", []feature.Feature{&feature.RectangularPatternFeature{
			IsPatternOfBody: boolPtr(true), XCount: feature.Unitless("XCount", 2),
			XSpacing: feature.Unitless("XSpacing", 1), XNaturalDirection: boolPtr(true),
			XSpacingType:     "kRandom",
			XDirectionEntity: feature.Axis(geometry.Vec3{}, geometry.Vec3{X: 1}),
		}}, ErrVocabulary},
		{"rect pattern feature mode without names", []feature.Feature{&feature.RectangularPatternFeature{
			IsPatternOfBody: boolPtr(false), XCount: feature.Unitless("XCount", 2),
			XSpacing: feature.Unitless("XSpacing", 1), XNaturalDirection: boolPtr(true),
			XSpacingType:     "kDefault",
			XDirectionEntity: feature.Axis(geometry.Vec3{}, geometry.Vec3{X: 1}),
		}}, ErrMissingField},
		{"circular pattern missing axis", []feature.Feature{&feature.CircularPatternFeature{
			IsPatternOfBody: boolPtr(true), Count: feature.Unitless("Count", 4),
			Angle: feature.Unitless("Angle", 360), IsNaturalAxisDirection: boolPtr(true),
		}}, ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Encode(tt.features)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Encode() error = %v, want %v", err, tt.want)
			}
			if p != nil {
				t.Error("Encode() returned a payload alongside the error")
			}
		})
	}
}

func TestEncodeVocabularySnapshot(t *testing.T) {
	p := mustEncode(t, nil)
	if got, want := p.Vocab["KEY"]["INS_B"], vocab.KeyInsB; got != want {
		t.Errorf("snapshot KEY[INS_B] = %d, want %d", got, want)
	}
	if got, want := p.Vocab["TYPE_ID"]["Extrude"], vocab.TypeExtrude; got != want {
		t.Errorf("snapshot TYPE_ID[Extrude] = %d, want %d", got, want)
	}
	if len(p.Vocab) != 12 {
		t.Errorf("snapshot has %d tables, want 12", len(p.Vocab))
	}
}
