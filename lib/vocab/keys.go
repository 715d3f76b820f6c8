// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package vocab

// Slot key identities. The gaps between blocks are deliberate: each
// feature family owns a hundreds-range so new fields land next to
// their siblings without renumbering.
const (
	KeyBOS  int64 = 1
	KeyEOS  int64 = 2
	KeyInsB int64 = 3 // instruction begin sentinel
	KeyInsE int64 = 4 // instruction end sentinel

	KeyType   int64 = 10
	KeyIdx    int64 = 11
	KeyParent int64 = 12
	KeyOp     int64 = 13
	KeyDir    int64 = 14

	// Sketch plane frame: origin, normal, in-plane X and Y axes.
	KeyOX int64 = 20
	KeyOY int64 = 21
	KeyOZ int64 = 22
	KeyNX int64 = 23
	KeyNY int64 = 24
	KeyNZ int64 = 25
	KeyXX int64 = 26
	KeyXY int64 = 27
	KeyXZ int64 = 28
	KeyYX int64 = 29
	KeyYY int64 = 30
	KeyYZ int64 = 31

	KeyReferPlaneIdx int64 = 32

	// 2D curve geometry.
	KeyPX  int64 = 38
	KeyPY  int64 = 39
	KeySPX int64 = 40
	KeySPY int64 = 41
	KeyEPX int64 = 42
	KeyEPY int64 = 43
	KeyCX  int64 = 44
	KeyCY  int64 = 45
	KeyR   int64 = 46
	KeySA  int64 = 47
	KeySW  int64 = 48

	KeyDist int64 = 49

	// Selection descriptors.
	KeySelectEntity  int64 = 51
	KeyArea          int64 = 52
	KeySurfType      int64 = 53
	KeyEdgeType      int64 = 54
	KeyFaceCentroidX int64 = 55
	KeyFaceCentroidY int64 = 56
	KeyFaceCentroidZ int64 = 57
	KeyEdgeLength    int64 = 58
	KeyEdgeMidpointX int64 = 59
	KeyEdgeMidpointY int64 = 60
	KeyEdgeMidpointZ int64 = 61
	KeyEdgeStartX    int64 = 62
	KeyEdgeStartY    int64 = 63
	KeyEdgeStartZ    int64 = 64
	KeyEdgeEndX      int64 = 65
	KeyEdgeEndY      int64 = 66
	KeyEdgeEndZ      int64 = 67

	// Extent fields. 75 and 76 were unassigned historically; payloads
	// that predate them decode the work-plane flags as false.
	KeyAngle               int64 = 70
	KeyToFaceID            int64 = 71
	KeyIsExtendToFace      int64 = 72
	KeyIsExtendFromFace    int64 = 73
	KeyFromFaceID          int64 = 74
	KeyIsFromFaceWorkPlane int64 = 75
	KeyIsToFaceWorkPlane   int64 = 76

	KeyExtentOne        int64 = 100
	KeyExtentOneType    int64 = 101
	KeyExtentTwo        int64 = 102
	KeyExtentTwoType    int64 = 103
	KeyIsTwoDirectional int64 = 104

	KeyAxisX    int64 = 120
	KeyAxisY    int64 = 121
	KeyAxisZ    int64 = 122
	KeyAxisDirX int64 = 123
	KeyAxisDirY int64 = 124
	KeyAxisDirZ int64 = 125

	KeyRadius        int64 = 140
	KeyFilletEdgeIdx int64 = 141

	KeyChamferType    int64 = 160
	KeyChamferDistA   int64 = 161
	KeyChamferDistB   int64 = 162
	KeyChamferAngle   int64 = 163
	KeyChamferFaceIdx int64 = 164
	KeyChamferEdgeIdx int64 = 165

	KeyDiameter       int64 = 180
	KeyDepth          int64 = 181
	KeyIsFlatBottom   int64 = 182
	KeyBottomTipAngle int64 = 183
	KeyHoleExtent     int64 = 184

	KeyShellThickness int64 = 200
	KeyShellDirection int64 = 201
	KeyShellFaceIdx   int64 = 202

	// 229-231 were unassigned historically; the encoder needed them
	// for body-mode mirrors all along.
	KeyIsMirrorBody      int64 = 220
	KeyMirrorFeatureIdx  int64 = 221
	KeyMirrorPlaneOX     int64 = 222
	KeyMirrorPlaneOY     int64 = 223
	KeyMirrorPlaneOZ     int64 = 224
	KeyMirrorPlaneNX     int64 = 225
	KeyMirrorPlaneNY     int64 = 226
	KeyMirrorPlaneNZ     int64 = 227
	KeyRemoveOriginal    int64 = 228
	KeyMirrorComputeType int64 = 229
	KeyMirrorPlaneFace   int64 = 230
	KeyMirrorOp          int64 = 231

	KeyRectIsPatternBody      int64 = 242
	KeyRectXCount             int64 = 240
	KeyRectXSpacing           int64 = 241
	KeyRectIsNaturalXDir      int64 = 243
	KeyRectXSpacingType       int64 = 244
	KeyRectXDirX              int64 = 248
	KeyRectXDirY              int64 = 249
	KeyRectXDirZ              int64 = 250
	KeyRectFeatureIdx         int64 = 251
	KeyRectPatternSpacingType int64 = 252

	KeyCircIsPatternBody int64 = 260
	KeyCircCount         int64 = 261
	KeyCircAngle         int64 = 262
	KeyCircNaturalDir    int64 = 263
	KeyCircAxisDirX      int64 = 264
	KeyCircAxisDirY      int64 = 265
	KeyCircAxisDirZ      int64 = 266
	KeyCircAxisOX        int64 = 267
	KeyCircAxisOY        int64 = 268
	KeyCircAxisOZ        int64 = 269
	KeyCircFeatureIdx    int64 = 270
)

// Key maps slot key names to their wire ids. The names are the
// snapshot/debugging vocabulary; encoders reference the typed
// constants directly.
var Key = NewTable("KEY", map[string]int64{
	"BOS":   KeyBOS,
	"EOS":   KeyEOS,
	"INS_B": KeyInsB,
	"INS_E": KeyInsE,

	"TYPE":   KeyType,
	"IDX":    KeyIdx,
	"PARENT": KeyParent,
	"OP":     KeyOp,
	"DIR":    KeyDir,

	"OX": KeyOX,
	"OY": KeyOY,
	"OZ": KeyOZ,
	"NX": KeyNX,
	"NY": KeyNY,
	"NZ": KeyNZ,
	"XX": KeyXX,
	"XY": KeyXY,
	"XZ": KeyXZ,
	"YX": KeyYX,
	"YY": KeyYY,
	"YZ": KeyYZ,

	"REFER_PLANE_IDX": KeyReferPlaneIdx,

	"PX":  KeyPX,
	"PY":  KeyPY,
	"SPX": KeySPX,
	"SPY": KeySPY,
	"EPX": KeyEPX,
	"EPY": KeyEPY,
	"CX":  KeyCX,
	"CY":  KeyCY,
	"R":   KeyR,
	"SA":  KeySA,
	"SW":  KeySW,

	"DIST": KeyDist,

	"SELECT_ENTITY":   KeySelectEntity,
	"AREA":            KeyArea,
	"SURF_TYPE":       KeySurfType,
	"EDGE_TYPE":       KeyEdgeType,
	"FACE_CENTROID_X": KeyFaceCentroidX,
	"FACE_CENTROID_Y": KeyFaceCentroidY,
	"FACE_CENTROID_Z": KeyFaceCentroidZ,
	"EDGE_LENGTH":     KeyEdgeLength,
	"EDGE_MIDPOINT_X": KeyEdgeMidpointX,
	"EDGE_MIDPOINT_Y": KeyEdgeMidpointY,
	"EDGE_MIDPOINT_Z": KeyEdgeMidpointZ,
	"EDGE_START_X":    KeyEdgeStartX,
	"EDGE_START_Y":    KeyEdgeStartY,
	"EDGE_START_Z":    KeyEdgeStartZ,
	"EDGE_END_X":      KeyEdgeEndX,
	"EDGE_END_Y":      KeyEdgeEndY,
	"EDGE_END_Z":      KeyEdgeEndZ,

	"ANGLE":                  KeyAngle,
	"TOFACE_ID":              KeyToFaceID,
	"IS_EXTEND_TO_FACE":      KeyIsExtendToFace,
	"IS_EXTEND_FROM_FACE":    KeyIsExtendFromFace,
	"FROMFACE_ID":            KeyFromFaceID,
	"IS_FROM_FACE_WORKPLANE": KeyIsFromFaceWorkPlane,
	"IS_TO_FACE_WORKPLANE":   KeyIsToFaceWorkPlane,

	"EXTENT_ONE":        KeyExtentOne,
	"EXTENT_ONE_TYPE":   KeyExtentOneType,
	"EXTENT_TWO":        KeyExtentTwo,
	"EXTENT_TWO_TYPE":   KeyExtentTwoType,
	"ISTWO_DIRECTIONAL": KeyIsTwoDirectional,

	"AXIS_X":     KeyAxisX,
	"AXIS_Y":     KeyAxisY,
	"AXIS_Z":     KeyAxisZ,
	"AXIS_DIR_X": KeyAxisDirX,
	"AXIS_DIR_Y": KeyAxisDirY,
	"AXIS_DIR_Z": KeyAxisDirZ,

	"RADIUS":          KeyRadius,
	"FILLET_EDGE_IDX": KeyFilletEdgeIdx,

	"CHAMFER_TYPE":     KeyChamferType,
	"CHAMFER_DIST_A":   KeyChamferDistA,
	"CHAMFER_DIST_B":   KeyChamferDistB,
	"CHAMFER_ANGLE":    KeyChamferAngle,
	"CHAMFER_FACE_IDX": KeyChamferFaceIdx,
	"CHAMFER_EDGE_IDX": KeyChamferEdgeIdx,

	"DIAMETER":         KeyDiameter,
	"DEPTH":            KeyDepth,
	"IS_FLAT_BOTTOM":   KeyIsFlatBottom,
	"BOTTOM_TIP_ANGLE": KeyBottomTipAngle,
	"HOLE_EXTENT":      KeyHoleExtent,

	"SHELL_THICKNESS": KeyShellThickness,
	"SHELL_DIRECTION": KeyShellDirection,
	"SHELL_FACE_IDX":  KeyShellFaceIdx,

	"IS_MIRROR_BODY":        KeyIsMirrorBody,
	"MIRROR_FEATURE_IDX":    KeyMirrorFeatureIdx,
	"MIRROR_PLANE_OX":       KeyMirrorPlaneOX,
	"MIRROR_PLANE_OY":       KeyMirrorPlaneOY,
	"MIRROR_PLANE_OZ":       KeyMirrorPlaneOZ,
	"MIRROR_PLANE_NX":       KeyMirrorPlaneNX,
	"MIRROR_PLANE_NY":       KeyMirrorPlaneNY,
	"MIRROR_PLANE_NZ":       KeyMirrorPlaneNZ,
	"REMOVE_ORIGINAL":       KeyRemoveOriginal,
	"MIRROR_COMPUTE_TYPE":   KeyMirrorComputeType,
	"MIRROR_PLANE_FACE_IDX": KeyMirrorPlaneFace,
	"MIRROR_OP":             KeyMirrorOp,

	"RECT_X_COUNT":              KeyRectXCount,
	"RECT_X_SPACING":            KeyRectXSpacing,
	"RECT_IS_PATTERN_BODY":      KeyRectIsPatternBody,
	"RECT_IS_NATURAL_X_DIR":     KeyRectIsNaturalXDir,
	"RECT_X_SPACING_TYPE":       KeyRectXSpacingType,
	"RECT_X_DIR_X":              KeyRectXDirX,
	"RECT_X_DIR_Y":              KeyRectXDirY,
	"RECT_X_DIR_Z":              KeyRectXDirZ,
	"RECT_FEATURE_IDX":          KeyRectFeatureIdx,
	"RECT_PATTERN_SPACING_TYPE": KeyRectPatternSpacingType,

	"CIRC_IS_PATTERN_BODY": KeyCircIsPatternBody,
	"CIRC_COUNT":           KeyCircCount,
	"CIRC_ANGLE":           KeyCircAngle,
	"CIRC_NATURAL_DIR":     KeyCircNaturalDir,
	"CIRC_AXIS_DIR_X":      KeyCircAxisDirX,
	"CIRC_AXIS_DIR_Y":      KeyCircAxisDirY,
	"CIRC_AXIS_DIR_Z":      KeyCircAxisDirZ,
	"CIRC_AXIS_OX":         KeyCircAxisOX,
	"CIRC_AXIS_OY":         KeyCircAxisOY,
	"CIRC_AXIS_OZ":         KeyCircAxisOZ,
	"CIRC_FEATURE_IDX":     KeyCircFeatureIdx,
})
