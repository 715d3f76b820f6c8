// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package vocab

// Snapshot is a point-in-time copy of the vocabulary tables, keyed by
// table name. Encoded payloads carry a snapshot so decoders resolve
// ids against the vocabulary the producer actually used rather than
// whatever revision the consumer was built with.
type Snapshot map[string]map[string]int64

// TakeSnapshot deep-copies every table into a Snapshot. Mutating the
// result never affects the package tables.
func TakeSnapshot() Snapshot {
	tables := []Table{
		Key, Type, Op, Dir, Extent, ShellDir, ChamferType,
		PatternSpacingType, PatternComputeType, SurfaceType,
		EdgeType, Entity,
	}
	snapshot := make(Snapshot, len(tables))
	for _, t := range tables {
		snapshot[t.TableName()] = t.Forward()
	}
	return snapshot
}

// Table resolves one sub-table from the snapshot. Sub-tables the
// payload omitted, or carried empty, resolve to builtin: snapshots
// from early producers never included SHELL_DIR_ID or
// PATTERN_COMPUTE_TYPE_ID.
func (s Snapshot) Table(name string, builtin Table) Table {
	forward, ok := s[name]
	if !ok || len(forward) == 0 {
		return builtin
	}
	return FromSnapshot(name, forward)
}
