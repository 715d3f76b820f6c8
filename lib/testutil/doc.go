// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for featseq packages.
//
// [TempFile] writes fixture content (feature documents, payload files,
// YAML configs) to a file under the test's temporary directory and
// returns its path, removing the WriteFile/Fatalf boilerplate from
// every test that feeds a command or parser from disk.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no featseq-internal dependencies.
package testutil
