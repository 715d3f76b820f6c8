// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

// Package feature defines the typed model of a CAD feature document:
// an ordered list of parametric modeling steps (extrude, revolve,
// fillet, chamfer, hole, shell, mirror, rectangular pattern, circular
// pattern) together with the geometry records they reference.
//
// A document is a JSON array of feature records in modeling order.
// [ParseDocument] accepts JSON with comments and trailing commas
// (JSONC) and returns the sealed [Feature] union; [MarshalDocument]
// renders it back. Records reference model entities by geometric
// signature ([Face], [Edge]) rather than transient entity ids, so a
// selection can be re-found in a rebuilt model with [Selection.SimilarTo].
//
// Exporters disagree on a few spellings (snake_case extent fields,
// "featureType" vs "type"); the unmarshalers accept the known variants
// and marshal a single canonical form.
//
// Key exports:
//
//   - [Feature] -- sealed union over the nine feature kinds
//   - [ParseDocument] / [ReadDocument] / [MarshalDocument] -- document I/O
//   - [Selection], [Face], [Edge] -- entity signatures
//   - [Extent] -- extrude/revolve/hole termination
//   - [Profile], [PlaneEntity] -- sketch geometry
//
// Depends only on lib/geometry. The sequence codec in lib/seq consumes
// this model.
package feature
