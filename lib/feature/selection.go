// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"encoding/json"
	"fmt"

	"github.com/featseq/featseq/lib/geometry"
)

// Selection metaType discriminators.
const (
	MetaFace = "Face"
	MetaEdge = "Edge"
)

// MatchTolerance is the componentwise tolerance used by SimilarTo when
// comparing geometric signatures.
const MatchTolerance = 1e-3

// Face describes a boundary face by its geometric signature rather
// than a transient entity id, so the face can be re-found after the
// model is rebuilt.
type Face struct {
	SurfaceType string      `json:"surfaceType,omitempty"`
	Area        float64     `json:"area"`
	Centroid    [3]float64  `json:"centroid"`
	Orientation *[3]float64 `json:"orientation"`
}

// SimilarTo reports whether both signatures describe the same face
// within tol.
func (f *Face) SimilarTo(other *Face, tol float64) bool {
	if f.SurfaceType != other.SurfaceType {
		return false
	}
	if !geometry.Close(f.Area, other.Area, tol) {
		return false
	}
	if !geometry.CloseTriple(f.Centroid, other.Centroid, tol) {
		return false
	}
	if (f.Orientation == nil) != (other.Orientation == nil) {
		return false
	}
	if f.Orientation != nil && !geometry.CloseTriple(*f.Orientation, *other.Orientation, tol) {
		return false
	}
	return true
}

// Edge describes a boundary edge by its geometric signature. Endpoints
// holds the two edge ends in a fixed sorted order; an edge with any
// other endpoint count cannot be encoded.
type Edge struct {
	GeometryType      string       `json:"geometryType,omitempty"`
	Length            float64      `json:"length"`
	Midpoint          [3]float64   `json:"midpoint"`
	AdjacentFaceTypes []string     `json:"adjacentFaceTypes,omitempty"`
	Endpoints         [][3]float64 `json:"endpoints"`
}

// SimilarTo reports whether both signatures describe the same edge
// within tol. Adjacent face types compare exactly.
func (e *Edge) SimilarTo(other *Edge, tol float64) bool {
	if e.GeometryType != other.GeometryType {
		return false
	}
	if !geometry.Close(e.Length, other.Length, tol) {
		return false
	}
	if !geometry.CloseTriple(e.Midpoint, other.Midpoint, tol) {
		return false
	}
	if len(e.AdjacentFaceTypes) != len(other.AdjacentFaceTypes) {
		return false
	}
	for i, faceType := range e.AdjacentFaceTypes {
		if faceType != other.AdjacentFaceTypes[i] {
			return false
		}
	}
	if len(e.Endpoints) != len(other.Endpoints) {
		return false
	}
	for i, point := range e.Endpoints {
		if !geometry.CloseTriple(point, other.Endpoints[i], tol) {
			return false
		}
	}
	return true
}

// Selection identifies one face or edge by signature. At most one arm
// is set; the zero Selection stands for an unresolved reference and
// marshals as an empty object.
type Selection struct {
	Face *Face
	Edge *Edge
}

// IsZero reports whether no arm is set.
func (s Selection) IsZero() bool { return s.Face == nil && s.Edge == nil }

// MetaType returns "Face" or "Edge", or "" for the zero Selection.
func (s Selection) MetaType() string {
	switch {
	case s.Face != nil:
		return MetaFace
	case s.Edge != nil:
		return MetaEdge
	}
	return ""
}

// SimilarTo reports whether both selections carry the same arm and the
// signatures match within tol. Two zero selections are similar.
func (s Selection) SimilarTo(other Selection, tol float64) bool {
	switch {
	case s.Face != nil && other.Face != nil:
		return s.Face.SimilarTo(other.Face, tol)
	case s.Edge != nil && other.Edge != nil:
		return s.Edge.SimilarTo(other.Edge, tol)
	}
	return s.IsZero() && other.IsZero()
}

func (s Selection) MarshalJSON() ([]byte, error) {
	switch {
	case s.Face != nil:
		return json.Marshal(struct {
			MetaType string `json:"metaType"`
			*Face
		}{MetaFace, s.Face})
	case s.Edge != nil:
		return json.Marshal(struct {
			MetaType string `json:"metaType"`
			*Edge
		}{MetaEdge, s.Edge})
	}
	return []byte("{}"), nil
}

// UnmarshalJSON routes on metaType when present. Exported metadata
// often omits the discriminator, so records without one are classified
// by which signature fields they carry.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var probe struct {
		MetaType     string          `json:"metaType"`
		SurfaceType  *string         `json:"surfaceType"`
		Area         *float64        `json:"area"`
		Centroid     json.RawMessage `json:"centroid"`
		GeometryType *string         `json:"geometryType"`
		Endpoints    json.RawMessage `json:"endpoints"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	meta := probe.MetaType
	if meta == "" {
		switch {
		case probe.GeometryType != nil || probe.Endpoints != nil:
			meta = MetaEdge
		case probe.SurfaceType != nil || probe.Area != nil || probe.Centroid != nil:
			meta = MetaFace
		}
	}
	*s = Selection{}
	switch meta {
	case MetaFace:
		s.Face = new(Face)
		return json.Unmarshal(data, s.Face)
	case MetaEdge:
		s.Edge = new(Edge)
		return json.Unmarshal(data, s.Edge)
	case "":
		return nil
	}
	return fmt.Errorf("unknown selection metaType %q", meta)
}
