// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import "github.com/featseq/featseq/lib/feature"

// kindCodec binds one feature kind to its wire codec. encode returns
// the indices of the instructions the feature itself owns: one per
// fillet edge set, exactly one for every other kind. Supporting
// instructions (selections, sketches, extents) are not included.
// decode builds the feature from a grouped instruction; name is the
// resolved feature name, already defaulted when the payload carries
// none.
type kindCodec struct {
	// wireName is the TYPE vocabulary entry for the feature's own
	// instruction.
	wireName string
	// namePrefix seeds default names for decoded features,
	// e.g. "Extrude" yields "Extrude1", "Extrude2", ...
	namePrefix string

	encode func(*Encoder, feature.Feature) ([]int64, error)
	decode func(*decoder, *instruction, string) feature.Feature
}

// kinds dispatches encoding by the feature's type discriminator.
var kinds = map[string]kindCodec{
	feature.TypeExtrude:            {"Extrude", "Extrude", encodeExtrude, decodeExtrude},
	feature.TypeRevolve:            {"Revolve", "Revolve", encodeRevolve, decodeRevolve},
	feature.TypeFillet:             {"Fillet", "Fillet", encodeFillet, decodeFillet},
	feature.TypeChamfer:            {"Chamfer", "Chamfer", encodeChamfer, decodeChamfer},
	feature.TypeHole:               {"Hole", "Hole", encodeHole, decodeHole},
	feature.TypeShell:              {"Shell", "Shell", encodeShell, decodeShell},
	feature.TypeMirror:             {"Mirror", "Mirror", encodeMirror, decodeMirror},
	feature.TypeRectangularPattern: {"RectPattern", "RectPattern", encodeRectPattern, decodeRectPattern},
	feature.TypeCircularPattern:    {"CircularPattern", "CircPattern", encodeCircPattern, decodeCircPattern},
}

// wireKinds dispatches decoding by the instruction's TYPE name.
var wireKinds = func() map[string]kindCodec {
	m := make(map[string]kindCodec, len(kinds))
	for _, c := range kinds {
		m[c.wireName] = c
	}
	return m
}()
