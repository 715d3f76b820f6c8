// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the featseq CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a params-struct factory, and a
// Run function. Commands are assembled into a tree in
// cmd/featseq/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// Flags are declared as tagged fields on a params struct rather than
// registered by hand: [Command.Params] returns a pointer to the struct,
// and [BindFlags] reflects over its `flag:"..."` tags to build the
// [pflag.FlagSet] before Run is called. See [BindFlags] for the tag
// grammar.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
package cli
