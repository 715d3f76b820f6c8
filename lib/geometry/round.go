// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

import "math"

// Round quantizes x to the decimal precision implied by tol: a
// tolerance of 1e-6 keeps six fractional digits. Tolerances of 1 or
// coarser collapse x to a whole number. NaN and infinities pass
// through unchanged.
func Round(x, tol float64) float64 {
	digits := 0.0
	if tol > 0 && tol < 1 {
		// The small bias guards against log10 landing just under an
		// integer for exact powers of ten.
		digits = math.Floor(-math.Log10(tol) + 1e-9)
	}
	factor := math.Pow(10, digits)
	return math.Round(x*factor) / factor
}

// Close reports whether a and b differ by at most tol.
func Close(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// CloseTriple reports whether every component of a and b differs by
// at most tol.
func CloseTriple(a, b [3]float64, tol float64) bool {
	for i := range a {
		if !Close(a[i], b[i], tol) {
			return false
		}
	}
	return true
}
