// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempFile writes content to a file called name under a fresh
// test-scoped temporary directory and returns the full path. The file
// is removed with the directory when the test completes.
//
//	path := testutil.TempFile(t, "features.json", document)
func TempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
