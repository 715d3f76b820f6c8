// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"

	"github.com/featseq/featseq/lib/feature"
	"github.com/featseq/featseq/lib/geometry"
	"github.com/featseq/featseq/lib/vocab"
)

// Decode rebuilds the feature list a payload encodes. Where encoding
// is strict, decoding is lenient: ids resolve against the payload's
// embedded vocabulary with builtin fallback, absent slots assume
// defaults, and instructions with unknown types are skipped. The one
// structural error is a curve appearing inside a sketch but outside
// an open path, which has no possible reading.
func Decode(p *Payload) ([]feature.Feature, error) {
	if err := p.checkLengths(); err != nil {
		return nil, err
	}
	d := newDecoder(p.Vocab)
	ins := d.group(p)
	d.buildSelections(ins)
	d.buildExtents(ins)
	if err := d.buildSketches(ins); err != nil {
		return nil, err
	}
	for i := range ins {
		in := &ins[i]
		codec, ok := wireKinds[in.typeName]
		if !ok {
			continue
		}
		name := d.defaultName(codec.namePrefix)
		d.features = append(d.features, codec.decode(d, in, name))
		if in.idx != nil {
			d.names[*in.idx] = name
		}
	}
	return d.features, nil
}

// slotValue is one decoded slot, read as a discrete id or as a float
// according to the numeric flag.
type slotValue struct {
	id      int64
	f       float64
	numeric bool
}

func (v slotValue) asFloat() float64 {
	if v.numeric {
		return v.f
	}
	return float64(v.id)
}

func (v slotValue) asInt() int64 {
	if v.numeric {
		return int64(v.f)
	}
	return v.id
}

func (p *Payload) slotAt(i int) slotValue {
	return slotValue{id: p.ValIDs[i], f: p.ValFloats[i], numeric: p.IsNumeric[i] != 0}
}

// instruction is one sentinel-delimited slot group, keyed by resolved
// slot-key names. Repeated keys accumulate in lists; for any other
// key the last slot wins.
type instruction struct {
	typeName string
	idx      *int64
	scalars  map[string]slotValue
	lists    map[string][]slotValue
}

func (in *instruction) has(key string) bool {
	_, ok := in.scalars[key]
	return ok
}

func (in *instruction) floatOr(key string, fallback float64) float64 {
	v, ok := in.scalars[key]
	if !ok {
		return fallback
	}
	return v.asFloat()
}

func (in *instruction) intOr(key string, fallback int64) int64 {
	v, ok := in.scalars[key]
	if !ok {
		return fallback
	}
	return v.asInt()
}

func (in *instruction) boolOr(key string, fallback bool) bool {
	v, ok := in.scalars[key]
	if !ok {
		return fallback
	}
	return v.asInt() != 0
}

func (in *instruction) floatPtr(key string) *float64 {
	v, ok := in.scalars[key]
	if !ok {
		return nil
	}
	f := v.asFloat()
	return &f
}

func (in *instruction) intPtr(key string) *int64 {
	v, ok := in.scalars[key]
	if !ok {
		return nil
	}
	n := v.asInt()
	return &n
}

// nameOr resolves a discrete slot through a vocabulary table. An
// absent slot and an id the table does not carry both read as
// fallback; a plain NameOr cannot tell those apart because most
// tables assign id 0 to a real name.
func (in *instruction) nameOr(t vocab.Table, key, fallback string) string {
	if v, ok := in.scalars[key]; ok {
		return t.NameOr(v.asInt(), fallback)
	}
	return fallback
}

// firstFloat returns the value of the first present key. Slots that
// were renamed across vocabulary revisions decode through the full
// alias list.
func (in *instruction) firstFloat(fallback float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := in.scalars[k]; ok {
			return v.asFloat()
		}
	}
	return fallback
}

func (in *instruction) firstInt(fallback int64, keys ...string) int64 {
	for _, k := range keys {
		if v, ok := in.scalars[k]; ok {
			return v.asInt()
		}
	}
	return fallback
}

func (in *instruction) firstBool(fallback bool, keys ...string) bool {
	for _, k := range keys {
		if v, ok := in.scalars[k]; ok {
			return v.asInt() != 0
		}
	}
	return fallback
}

// ints flattens a repeated slot to its discrete values.
func (in *instruction) ints(key string) []int64 {
	vals := in.lists[key]
	ids := make([]int64, len(vals))
	for i, v := range vals {
		ids[i] = v.asInt()
	}
	return ids
}

// repeatKeys are the slot keys that may appear more than once per
// instruction and accumulate instead of overwriting.
var repeatKeys = map[string]bool{
	"FILLET_EDGE_IDX":    true,
	"CHAMFER_EDGE_IDX":   true,
	"SHELL_FACE_IDX":     true,
	"MIRROR_FEATURE_IDX": true,
	"RECT_FEATURE_IDX":   true,
	"CIRC_FEATURE_IDX":   true,
}

// decoder carries the vocabulary resolved from one payload's snapshot
// and the caches built from its supporting instructions.
type decoder struct {
	key     vocab.Table
	typ     vocab.Table
	op      vocab.Table
	dir     vocab.Table
	extent  vocab.Table
	shell   vocab.Table
	chamfer vocab.Table
	spacing vocab.Table
	compute vocab.Table
	surface vocab.Table
	edge    vocab.Table
	entity  vocab.Table

	selections map[int64]feature.Selection
	extents    map[int64]extentRecord
	sketches   map[int64]*sketchRecord

	features   []feature.Feature
	names      map[int64]string
	kindCounts map[string]int
}

func newDecoder(snapshot vocab.Snapshot) *decoder {
	return &decoder{
		key:     snapshot.Table("KEY", vocab.Key),
		typ:     snapshot.Table("TYPE_ID", vocab.Type),
		op:      snapshot.Table("OP_ID", vocab.Op),
		dir:     snapshot.Table("DIR_ID", vocab.Dir),
		extent:  snapshot.Table("EXTENT_ID", vocab.Extent),
		shell:   snapshot.Table("SHELL_DIR_ID", vocab.ShellDir),
		chamfer: snapshot.Table("CHAMFER_TYPE_ID", vocab.ChamferType),
		spacing: snapshot.Table("PATTERN_SPACING_TYPE_ID", vocab.PatternSpacingType),
		compute: snapshot.Table("PATTERN_COMPUTE_TYPE_ID", vocab.PatternComputeType),
		surface: snapshot.Table("SURFACE_TYPE_ID", vocab.SurfaceType),
		edge:    snapshot.Table("EDGE_TYPE_ID", vocab.EdgeType),
		entity:  snapshot.Table("ENTITY_ID", vocab.Entity),

		selections: make(map[int64]feature.Selection),
		extents:    make(map[int64]extentRecord),
		sketches:   make(map[int64]*sketchRecord),
		names:      make(map[int64]string),
		kindCounts: make(map[string]int),
	}
}

// group splits the flat arrays into instructions. Slots outside a
// sentinel pair and slots whose key id the vocabulary cannot resolve
// are dropped, and an INS_B while an instruction is open abandons the
// open one.
func (d *decoder) group(p *Payload) []instruction {
	var out []instruction
	var cur *instruction
	for i := range p.KeyIDs {
		name, ok := d.key.Name(p.KeyIDs[i])
		if !ok {
			continue
		}
		switch name {
		case "BOS", "EOS":
			continue
		case "INS_B":
			cur = &instruction{
				scalars: make(map[string]slotValue),
				lists:   make(map[string][]slotValue),
			}
			continue
		case "INS_E":
			if cur == nil {
				continue
			}
			if v, ok := cur.scalars["TYPE"]; ok {
				cur.typeName = d.typ.NameOr(v.asInt(), "")
			}
			if v, ok := cur.scalars["IDX"]; ok {
				idx := v.asInt()
				cur.idx = &idx
			}
			out = append(out, *cur)
			cur = nil
			continue
		}
		if cur == nil {
			continue
		}
		v := p.slotAt(i)
		if repeatKeys[name] {
			cur.lists[name] = append(cur.lists[name], v)
		} else {
			cur.scalars[name] = v
		}
	}
	return out
}

// buildSelections caches every Selection instruction by index. The
// entity discriminator picks the face or edge shape; an unresolvable
// discriminator leaves an empty selection so the index stays
// referencable.
func (d *decoder) buildSelections(ins []instruction) {
	for i := range ins {
		in := &ins[i]
		if in.typeName != "Selection" || in.idx == nil {
			continue
		}
		var sel feature.Selection
		switch d.entity.NameOr(in.intOr("SELECT_ENTITY", 0), "") {
		case feature.MetaFace:
			sel.Face = &feature.Face{
				SurfaceType: d.surface.NameOr(in.intOr("SURF_TYPE", 9), "kUnknownSurface"),
				Area:        in.floatOr("AREA", 0),
				Centroid: [3]float64{
					in.floatOr("FACE_CENTROID_X", 0),
					in.floatOr("FACE_CENTROID_Y", 0),
					in.floatOr("FACE_CENTROID_Z", 0),
				},
			}
		case feature.MetaEdge:
			sel.Edge = &feature.Edge{
				GeometryType: d.edge.NameOr(in.intOr("EDGE_TYPE", 8), "kUnknownCurve"),
				Length:       in.floatOr("EDGE_LENGTH", 0),
				Midpoint: [3]float64{
					in.floatOr("EDGE_MIDPOINT_X", 0),
					in.floatOr("EDGE_MIDPOINT_Y", 0),
					in.floatOr("EDGE_MIDPOINT_Z", 0),
				},
				Endpoints: [][3]float64{
					{
						in.floatOr("EDGE_START_X", 0),
						in.floatOr("EDGE_START_Y", 0),
						in.floatOr("EDGE_START_Z", 0),
					},
					{
						in.floatOr("EDGE_END_X", 0),
						in.floatOr("EDGE_END_Y", 0),
						in.floatOr("EDGE_END_Z", 0),
					},
				},
			}
		}
		d.selections[*in.idx] = sel
	}
}

// extentRecord is the raw slot content of an Extent instruction.
// Optional slots stay nil so variant assembly can tell absent from
// zero.
type extentRecord struct {
	dist  *float64
	angle *float64
	dir   *int64

	toFace   *int64
	fromFace *int64

	extendTo          bool
	extendFrom        bool
	fromFaceWorkPlane bool
	toFaceWorkPlane   bool
}

func (d *decoder) buildExtents(ins []instruction) {
	for i := range ins {
		in := &ins[i]
		if in.typeName != "Extent" || in.idx == nil {
			continue
		}
		d.extents[*in.idx] = extentRecord{
			dist:     in.floatPtr("DIST"),
			angle:    in.floatPtr("ANGLE"),
			dir:      in.intPtr("DIR"),
			toFace:   in.intPtr("TOFACE_ID"),
			fromFace: in.intPtr("FROMFACE_ID"),

			extendTo:          in.boolOr("IS_EXTEND_TO_FACE", false),
			extendFrom:        in.boolOr("IS_EXTEND_FROM_FACE", false),
			fromFaceWorkPlane: in.boolOr("IS_FROM_FACE_WORKPLANE", false),
			toFaceWorkPlane:   in.boolOr("IS_TO_FACE_WORKPLANE", false),
		}
	}
}

// pathEntity is one curve instruction captured inside an open path.
type pathEntity struct {
	kind string
	in   *instruction
}

// sketchRecord accumulates one sketch's plane geometry, plane
// reference, profile paths, and center points between its start and
// end markers.
type sketchRecord struct {
	origin geometry.Vec3
	normal geometry.Vec3
	axisX  geometry.Vec3
	axisY  geometry.Vec3
	ref    *int64
	paths  [][]pathEntity
	points []geometry.Vec2
}

// buildSketches groups sketch-scoped instructions under the sketch
// that opened them. Curves outside any sketch are dropped, but a
// curve inside a sketch without an open path is malformed: there is
// nowhere to put it. A sketch start without an index keeps the
// previous sketch open.
func (d *decoder) buildSketches(ins []instruction) error {
	var cur *sketchRecord
	var curPath []pathEntity
	pathOpen := false
	for i := range ins {
		in := &ins[i]
		switch in.typeName {
		case "SketchStart":
			if in.idx == nil {
				continue
			}
			cur = &sketchRecord{
				origin: geometry.Vec3{X: in.floatOr("OX", 0), Y: in.floatOr("OY", 0), Z: in.floatOr("OZ", 0)},
				normal: geometry.Vec3{X: in.floatOr("NX", 0), Y: in.floatOr("NY", 0), Z: in.floatOr("NZ", 1)},
				axisX:  geometry.Vec3{X: in.floatOr("XX", 1), Y: in.floatOr("XY", 0), Z: in.floatOr("XZ", 0)},
				axisY:  geometry.Vec3{X: in.floatOr("YX", 0), Y: in.floatOr("YY", 1), Z: in.floatOr("YZ", 0)},
				ref:    in.intPtr("REFER_PLANE_IDX"),
			}
			d.sketches[*in.idx] = cur
			pathOpen, curPath = false, nil
		case "PathStart":
			if cur == nil {
				continue
			}
			pathOpen, curPath = true, nil
		case "PathEnd":
			if cur == nil {
				continue
			}
			if pathOpen {
				cur.paths = append(cur.paths, curPath)
			}
			pathOpen, curPath = false, nil
		case "Line", "Arc", "Circle":
			if cur == nil {
				continue
			}
			if !pathOpen {
				return fmt.Errorf("%s instruction outside an open path: %w", in.typeName, ErrMalformedPayload)
			}
			curPath = append(curPath, pathEntity{kind: in.typeName, in: in})
		case "Point":
			if cur == nil {
				continue
			}
			cur.points = append(cur.points, geometry.Vec2{X: in.floatOr("PX", 0), Y: in.floatOr("PY", 0)})
		case "SketchEnd":
			cur = nil
			pathOpen, curPath = false, nil
		}
	}
	return nil
}

// makeExtent assembles the extent variant typeName selects from the
// cached raw record. An unknown name keeps the raw name as the type
// with no fields.
func (d *decoder) makeExtent(idx int64, typeName string) *feature.Extent {
	raw := d.extents[idx]
	var dirName string
	if raw.dir != nil {
		dirName = d.dir.NameOr(*raw.dir, "kPositiveExtentDirection")
	}
	switch typeName {
	case "kDistanceExtent":
		var dist float64
		if raw.dist != nil {
			dist = *raw.dist
		}
		return &feature.Extent{
			Type:      feature.ExtentTypeDistance,
			Distance:  feature.Unitless("Distance", dist),
			Direction: dirName,
		}
	case "kAngleExtent":
		var angle float64
		if raw.angle != nil {
			angle = *raw.angle
		}
		return &feature.Extent{
			Type:      feature.ExtentTypeAngle,
			Angle:     feature.Unitless("Angle", angle),
			Direction: dirName,
		}
	case "kToNextExtent":
		return &feature.Extent{Type: feature.ExtentTypeToNext, Direction: dirName}
	case "kThroughAllExtent":
		return &feature.Extent{Type: feature.ExtentTypeThroughAll, Direction: dirName}
	case "kFullSweepExtent":
		return &feature.Extent{Type: feature.ExtentTypeFullSweep}
	case "kToExtent":
		return &feature.Extent{
			Type:         feature.ExtentTypeTo,
			ToEntity:     d.selectionRef(raw.toFace),
			Direction:    dirName,
			ExtendToFace: boolPtr(raw.extendTo),
		}
	case "kFromToExtent":
		return &feature.Extent{
			Type:                feature.ExtentTypeFromTo,
			FromFace:            d.selectionRef(raw.fromFace),
			ToFace:              d.selectionRef(raw.toFace),
			IsFromFaceWorkPlane: boolPtr(raw.fromFaceWorkPlane),
			IsToFaceWorkPlane:   boolPtr(raw.toFaceWorkPlane),
			ExtendFromFace:      boolPtr(raw.extendFrom),
			ExtendToFace:        boolPtr(raw.extendTo),
		}
	}
	return &feature.Extent{Type: typeName}
}

// selectionRef resolves a cached selection by id. A nil or zero id,
// or an id never cached, yields an empty selection rather than nil.
func (d *decoder) selectionRef(id *int64) *feature.Selection {
	sel := feature.Selection{}
	if id != nil && *id != 0 {
		sel = d.selections[*id]
	}
	return &sel
}

// selectionList resolves a repeated id slot to cached selections.
// Unknown ids decode as empty selections so positions survive.
func (d *decoder) selectionList(in *instruction, key string) []feature.Selection {
	ids := in.ints(key)
	out := make([]feature.Selection, len(ids))
	for i, id := range ids {
		out[i] = d.selections[id]
	}
	return out
}

// makePlane rebuilds a sketch's plane entity. The reference selection
// attaches whenever the sketch carried one, with missing ids
// resolving to an empty selection.
func (d *decoder) makePlane(sk *sketchRecord) *feature.PlaneEntity {
	plane := &feature.PlaneEntity{
		Geometry: &feature.PlaneGeometry{
			Origin: sk.origin,
			Normal: sk.normal,
			AxisX:  sk.axisX,
			AxisY:  sk.axisY,
		},
	}
	if sk.ref != nil {
		sel := d.selections[*sk.ref]
		plane.Index = &sel
	}
	return plane
}

func (d *decoder) makePaths(sk *sketchRecord) []feature.ProfilePath {
	paths := make([]feature.ProfilePath, 0, len(sk.paths))
	for _, path := range sk.paths {
		entities := make([]feature.PathEntity, 0, len(path))
		for _, ent := range path {
			in := ent.in
			switch ent.kind {
			case "Line":
				entities = append(entities, feature.PathEntity{
					CurveType:        feature.CurveLine,
					StartSketchPoint: &geometry.Vec2{X: in.floatOr("SPX", 0), Y: in.floatOr("SPY", 0)},
					EndSketchPoint:   &geometry.Vec2{X: in.floatOr("EPX", 0), Y: in.floatOr("EPY", 0)},
				})
			case "Circle":
				entities = append(entities, feature.PathEntity{
					CurveType: feature.CurveCircle,
					Curve: &feature.Curve{
						Center: geometry.Vec2{X: in.floatOr("CX", 0), Y: in.floatOr("CY", 0)},
						Radius: in.floatOr("R", 0),
					},
				})
			case "Arc":
				entities = append(entities, feature.PathEntity{
					CurveType: feature.CurveArc,
					Curve: &feature.Curve{
						Center:     geometry.Vec2{X: in.floatOr("CX", 0), Y: in.floatOr("CY", 0)},
						Radius:     in.floatOr("R", 0),
						StartAngle: in.floatOr("SA", 0),
						SweepAngle: in.floatOr("SW", 0),
					},
					StartSketchPoint: &geometry.Vec2{X: in.floatOr("SPX", 0), Y: in.floatOr("SPY", 0)},
					EndSketchPoint:   &geometry.Vec2{X: in.floatOr("EPX", 0), Y: in.floatOr("EPY", 0)},
				})
			}
		}
		paths = append(paths, feature.ProfilePath{PathEntities: entities})
	}
	return paths
}

// makeProfile rebuilds the profile of the sketch an instruction's
// PARENT slot names. An unknown sketch yields an empty profile.
func (d *decoder) makeProfile(sketchIdx int64) *feature.Profile {
	sk, ok := d.sketches[sketchIdx]
	if !ok {
		return &feature.Profile{}
	}
	return &feature.Profile{
		SketchPlane:  d.makePlane(sk),
		ProfilePaths: d.makePaths(sk),
	}
}

// defaultName synthesizes the conventional per-kind feature name: the
// first decoded Extrude is "Extrude1", the second "Extrude2".
// Documents whose features keep those conventional names round-trip
// their mirror and pattern name references literally.
func (d *decoder) defaultName(prefix string) string {
	d.kindCounts[prefix]++
	return fmt.Sprintf("%s%d", prefix, d.kindCounts[prefix])
}

// resolveName maps an instruction index back to the name its feature
// decoded under, falling back to a synthetic name for indices that
// never produced one.
func (d *decoder) resolveName(id int64) string {
	if name, ok := d.names[id]; ok {
		return name
	}
	return fmt.Sprintf("Feature_%d", id)
}

func (d *decoder) resolveNameList(in *instruction, key string) []string {
	ids := in.ints(key)
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = d.resolveName(id)
	}
	return out
}

func boolPtr(b bool) *bool { return &b }
