// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for featseq
// commands.
//
// Configuration is loaded from a single file specified by either the
// FEATSEQ_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search; when neither is set, [Load] returns
// the defaults. The file carries CLI defaults only — codec semantics
// never depend on it, so two machines with different configurations
// still produce identical payloads for identical flags.
//
// Two environment variables override file values after loading:
// FEATSEQ_TOLERANCE and FEATSEQ_FORMAT. Nothing else in the
// environment is consulted.
//
// This package depends on no other featseq packages.
package config
