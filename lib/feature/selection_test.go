// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"encoding/json"
	"strings"
	"testing"
)

func planeFace(area float64) *Face {
	orientation := [3]float64{0, 0, 1}
	return &Face{
		SurfaceType: "kPlaneSurface",
		Area:        area,
		Centroid:    [3]float64{1, 2, 3},
		Orientation: &orientation,
	}
}

func lineEdge(length float64) *Edge {
	return &Edge{
		GeometryType:      "kLineSegmentCurve",
		Length:            length,
		Midpoint:          [3]float64{0, 1, 0},
		AdjacentFaceTypes: []string{"kPlaneSurface", "kPlaneSurface"},
		Endpoints:         [][3]float64{{0, 0, 0}, {0, 2, 0}},
	}
}

func TestSelectionRoutesOnMetaType(t *testing.T) {
	var s Selection
	data := []byte(`{"metaType": "Edge", "geometryType": "kLineCurve", "length": 2, "midpoint": [0, 1, 0], "endpoints": [[0, 0, 0], [0, 2, 0]]}`)
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if s.Edge == nil {
		t.Fatal("Edge arm not set")
	}
	if s.Face != nil {
		t.Error("Face arm set for edge record")
	}
	if s.Edge.Length != 2 {
		t.Errorf("Length = %v, want 2", s.Edge.Length)
	}
}

func TestSelectionInfersArmWithoutMetaType(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"face by surfaceType", `{"surfaceType": "kPlaneSurface", "area": 1, "centroid": [0, 0, 0]}`, MetaFace},
		{"face by area alone", `{"area": 4.5}`, MetaFace},
		{"edge by endpoints", `{"length": 2, "endpoints": [[0, 0, 0], [0, 2, 0]], "midpoint": [0, 1, 0]}`, MetaEdge},
		{"edge by geometryType", `{"geometryType": "kCircleCurve"}`, MetaEdge},
		{"empty object", `{}`, ""},
	}
	for _, test := range tests {
		var s Selection
		if err := json.Unmarshal([]byte(test.data), &s); err != nil {
			t.Errorf("%s: Unmarshal error: %v", test.name, err)
			continue
		}
		if got := s.MetaType(); got != test.want {
			t.Errorf("%s: MetaType = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestSelectionRejectsUnknownMetaType(t *testing.T) {
	var s Selection
	err := json.Unmarshal([]byte(`{"metaType": "Vertex"}`), &s)
	if err == nil {
		t.Fatal("expected error for unknown metaType")
	}
	if !strings.Contains(err.Error(), "Vertex") {
		t.Errorf("error %q does not name the metaType", err)
	}
}

func TestSelectionMarshalIncludesMetaType(t *testing.T) {
	data, err := json.Marshal(Selection{Face: planeFace(6)})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded["metaType"] != "Face" {
		t.Errorf("metaType = %v, want Face", decoded["metaType"])
	}
	if decoded["area"] != 6.0 {
		t.Errorf("area = %v, want 6", decoded["area"])
	}
}

func TestSelectionMarshalNullOrientation(t *testing.T) {
	data, err := json.Marshal(Selection{Face: &Face{SurfaceType: "kPlaneSurface"}})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(data), `"orientation":null`) {
		t.Errorf("Marshal = %s, want explicit null orientation", data)
	}
}

func TestZeroSelectionMarshalsEmpty(t *testing.T) {
	data, err := json.Marshal(Selection{})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Marshal = %s, want {}", data)
	}
}

func TestFaceSimilarTo(t *testing.T) {
	base := planeFace(6)
	tests := []struct {
		name  string
		other *Face
		want  bool
	}{
		{"identical", planeFace(6), true},
		{"area within tolerance", planeFace(6.0005), true},
		{"area beyond tolerance", planeFace(6.01), false},
		{"different surface type", &Face{SurfaceType: "kCylinderSurface", Area: 6, Centroid: base.Centroid, Orientation: base.Orientation}, false},
		{"missing orientation", &Face{SurfaceType: "kPlaneSurface", Area: 6, Centroid: base.Centroid}, false},
	}
	for _, test := range tests {
		if got := base.SimilarTo(test.other, MatchTolerance); got != test.want {
			t.Errorf("%s: SimilarTo = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestEdgeSimilarTo(t *testing.T) {
	base := lineEdge(2)
	if !base.SimilarTo(lineEdge(2.0002), MatchTolerance) {
		t.Error("edge within tolerance not similar")
	}
	if base.SimilarTo(lineEdge(2.1), MatchTolerance) {
		t.Error("edge beyond tolerance reported similar")
	}
	moved := lineEdge(2)
	moved.Endpoints[1] = [3]float64{0, 2.5, 0}
	if base.SimilarTo(moved, MatchTolerance) {
		t.Error("edge with moved endpoint reported similar")
	}
	fewerFaces := lineEdge(2)
	fewerFaces.AdjacentFaceTypes = fewerFaces.AdjacentFaceTypes[:1]
	if base.SimilarTo(fewerFaces, MatchTolerance) {
		t.Error("edge with different adjacent faces reported similar")
	}
}

func TestSelectionSimilarToMixedArms(t *testing.T) {
	face := Selection{Face: planeFace(6)}
	edge := Selection{Edge: lineEdge(2)}
	if face.SimilarTo(edge, MatchTolerance) {
		t.Error("face similar to edge")
	}
	if !(Selection{}).SimilarTo(Selection{}, MatchTolerance) {
		t.Error("two zero selections not similar")
	}
	if face.SimilarTo(Selection{}, MatchTolerance) {
		t.Error("face similar to zero selection")
	}
}
