// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package vocab

import "fmt"

// Table is an immutable bidirectional name/id mapping. Construct with
// NewTable; lookups never mutate.
type Table struct {
	name    string
	forward map[string]int64
	reverse map[int64]string
}

// NewTable builds a Table from a forward mapping. Duplicate ids are a
// programming error and panic at package init rather than producing a
// table that silently drops names.
func NewTable(name string, forward map[string]int64) Table {
	reverse := make(map[int64]string, len(forward))
	for n, id := range forward {
		if prev, ok := reverse[id]; ok {
			panic(fmt.Sprintf("vocab: table %s assigns id %d to both %s and %s", name, id, prev, n))
		}
		reverse[id] = n
	}
	fwd := make(map[string]int64, len(forward))
	for n, id := range forward {
		fwd[n] = id
	}
	return Table{name: name, forward: fwd, reverse: reverse}
}

// FromSnapshot builds a Table from an embedded payload vocabulary.
// Unlike NewTable it tolerates duplicate ids: payload snapshots are
// untrusted input, and a duplicate simply collapses to one name.
func FromSnapshot(name string, forward map[string]int64) Table {
	fwd := make(map[string]int64, len(forward))
	reverse := make(map[int64]string, len(forward))
	for n, id := range forward {
		fwd[n] = id
		reverse[id] = n
	}
	return Table{name: name, forward: fwd, reverse: reverse}
}

// TableName returns the registry name, e.g. "TYPE_ID".
func (t Table) TableName() string { return t.name }

// Len returns the number of entries.
func (t Table) Len() int { return len(t.forward) }

// ID looks up the wire id for a name.
func (t Table) ID(name string) (int64, bool) {
	id, ok := t.forward[name]
	return id, ok
}

// Name looks up the name for a wire id.
func (t Table) Name(id int64) (string, bool) {
	n, ok := t.reverse[id]
	return n, ok
}

// NameOr looks up the name for a wire id, returning fallback for ids
// the table does not carry.
func (t Table) NameOr(id int64, fallback string) string {
	if n, ok := t.reverse[id]; ok {
		return n
	}
	return fallback
}

// Forward returns a copy of the name-to-id mapping. Callers may
// mutate the copy freely.
func (t Table) Forward() map[string]int64 {
	out := make(map[string]int64, len(t.forward))
	for n, id := range t.forward {
		out[n] = id
	}
	return out
}

// Instruction type discriminants. Every instruction opens with a TYPE
// slot carrying one of these. 6-8 were unassigned historically;
// PathStart and PathEnd took 6 and 7 when profile paths gained
// explicit boundaries.
const (
	TypeSketchStart     int64 = 1
	TypeLine            int64 = 2
	TypeArc             int64 = 3
	TypeCircle          int64 = 4
	TypePoint           int64 = 5
	TypePathStart       int64 = 6
	TypePathEnd         int64 = 7
	TypeSketchEnd       int64 = 9
	TypeExtrude         int64 = 10
	TypeRevolve         int64 = 11
	TypeChamfer         int64 = 12
	TypeFillet          int64 = 13
	TypeHole            int64 = 14
	TypeShell           int64 = 15
	TypeMirror          int64 = 16
	TypeRectPattern     int64 = 17
	TypeCircularPattern int64 = 18
	TypeSelection       int64 = 19
	TypeExtent          int64 = 20
)

// Type maps instruction kind names to their wire ids.
var Type = NewTable("TYPE_ID", map[string]int64{
	"SketchStart":     TypeSketchStart,
	"Line":            TypeLine,
	"Arc":             TypeArc,
	"Circle":          TypeCircle,
	"Point":           TypePoint,
	"PathStart":       TypePathStart,
	"PathEnd":         TypePathEnd,
	"SketchEnd":       TypeSketchEnd,
	"Extrude":         TypeExtrude,
	"Revolve":         TypeRevolve,
	"Chamfer":         TypeChamfer,
	"Fillet":          TypeFillet,
	"Hole":            TypeHole,
	"Shell":           TypeShell,
	"Mirror":          TypeMirror,
	"RectPattern":     TypeRectPattern,
	"CircularPattern": TypeCircularPattern,
	"Selection":       TypeSelection,
	"Extent":          TypeExtent,
})

// Boolean combine operations for solid-producing features.
const (
	OpNewBody   int64 = 0
	OpJoin      int64 = 1
	OpCut       int64 = 2
	OpIntersect int64 = 3
)

var Op = NewTable("OP_ID", map[string]int64{
	"kNewBodyOperation":   OpNewBody,
	"kJoinOperation":      OpJoin,
	"kCutOperation":       OpCut,
	"kIntersectOperation": OpIntersect,
})

// Signed extent directions.
const (
	DirPositive  int64 = 1
	DirNegative  int64 = -1
	DirSymmetric int64 = 0
)

var Dir = NewTable("DIR_ID", map[string]int64{
	"kPositiveExtentDirection":  DirPositive,
	"kNegativeExtentDirection":  DirNegative,
	"kSymmetricExtentDirection": DirSymmetric,
})

// Extent kinds.
const (
	ExtentDistance   int64 = 0
	ExtentToNext     int64 = 1
	ExtentAngle      int64 = 2
	ExtentTo         int64 = 3
	ExtentFullSweep  int64 = 4
	ExtentThroughAll int64 = 5
	ExtentFromTo     int64 = 6
)

var Extent = NewTable("EXTENT_ID", map[string]int64{
	"kDistanceExtent":   ExtentDistance,
	"kToNextExtent":     ExtentToNext,
	"kAngleExtent":      ExtentAngle,
	"kToExtent":         ExtentTo,
	"kFullSweepExtent":  ExtentFullSweep,
	"kThroughAllExtent": ExtentThroughAll,
	"kFromToExtent":     ExtentFromTo,
})

// Shell hollowing directions.
const (
	ShellDirBothSides int64 = 0
	ShellDirInside    int64 = 1
	ShellDirOutside   int64 = 2
)

var ShellDir = NewTable("SHELL_DIR_ID", map[string]int64{
	"kBothSidesShellDirection": ShellDirBothSides,
	"kInsideShellDirection":    ShellDirInside,
	"kOutsideShellDirection":   ShellDirOutside,
})

// Chamfer parameterizations.
const (
	ChamferTwoDistances     int64 = 0
	ChamferDistanceAndAngle int64 = 1
	ChamferDistance         int64 = 2
)

var ChamferType = NewTable("CHAMFER_TYPE_ID", map[string]int64{
	"kTwoDistances":     ChamferTwoDistances,
	"kDistanceAndAngle": ChamferDistanceAndAngle,
	"kDistance":         ChamferDistance,
})

// Pattern spacing strategies.
const (
	SpacingDefault         int64 = 0
	SpacingFitted          int64 = 1
	SpacingFitToPathLength int64 = 2
)

var PatternSpacingType = NewTable("PATTERN_SPACING_TYPE_ID", map[string]int64{
	"kDefault":         SpacingDefault,
	"kFitted":          SpacingFitted,
	"kFitToPathLength": SpacingFitToPathLength,
})

// Pattern recompute strategies.
const (
	ComputeIdentical     int64 = 0
	ComputeAdjustToModel int64 = 1
	ComputeOptimized     int64 = 2
)

var PatternComputeType = NewTable("PATTERN_COMPUTE_TYPE_ID", map[string]int64{
	"kIdenticalCompute":     ComputeIdentical,
	"kAdjustToModelCompute": ComputeAdjustToModel,
	"kOptimizedCompute":     ComputeOptimized,
})

// Face surface classes from the source modeling kernel.
const (
	SurfaceBSpline            int64 = 0
	SurfaceCoons              int64 = 1
	SurfaceCone               int64 = 2
	SurfaceCylinder           int64 = 3
	SurfaceEllipticalCone     int64 = 4
	SurfaceEllipticalCylinder int64 = 5
	SurfacePlane              int64 = 6
	SurfaceSphere             int64 = 7
	SurfaceTorus              int64 = 8
	SurfaceUnknown            int64 = 9
)

var SurfaceType = NewTable("SURFACE_TYPE_ID", map[string]int64{
	"kBSplineSurface":            SurfaceBSpline,
	"kCoonsSurface":              SurfaceCoons,
	"kConeSurface":               SurfaceCone,
	"kCylinderSurface":           SurfaceCylinder,
	"kEllipticalConeSurface":     SurfaceEllipticalCone,
	"kEllipticalCylinderSurface": SurfaceEllipticalCylinder,
	"kPlaneSurface":              SurfacePlane,
	"kSphereSurface":             SurfaceSphere,
	"kTorusSurface":              SurfaceTorus,
	"kUnknownSurface":            SurfaceUnknown,
})

// Edge curve classes from the source modeling kernel.
const (
	EdgeBSpline       int64 = 0
	EdgeCircle        int64 = 1
	EdgeCircularArc   int64 = 2
	EdgeEllipseFull   int64 = 3
	EdgeEllipticalArc int64 = 4
	EdgeLine          int64 = 5
	EdgeLineSegment   int64 = 6
	EdgePolyline      int64 = 7
	EdgeUnknown       int64 = 8
)

var EdgeType = NewTable("EDGE_TYPE_ID", map[string]int64{
	"kBSplineCurve":       EdgeBSpline,
	"kCircleCurve":        EdgeCircle,
	"kCircularArcCurve":   EdgeCircularArc,
	"kEllipseFullCurve":   EdgeEllipseFull,
	"kEllipticalArcCurve": EdgeEllipticalArc,
	"kLineCurve":          EdgeLine,
	"kLineSegmentCurve":   EdgeLineSegment,
	"kPolylineCurve":      EdgePolyline,
	"kUnknownCurve":       EdgeUnknown,
})

// Topological entity classes a selection can address.
const (
	EntityFace int64 = 1
	EntityEdge int64 = 2
)

var Entity = NewTable("ENTITY_ID", map[string]int64{
	"Face": EntityFace,
	"Edge": EntityEdge,
})
