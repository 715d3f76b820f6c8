// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import "errors"

// Encode is all-or-nothing: any of the first three errors aborts the
// call with no partial output. ErrMalformedPayload is the decode-side
// counterpart, returned only for payloads that cannot be read at all;
// recoverable gaps decode to defaults instead.
var (
	// ErrVocabulary reports an enum name outside the registry, or an
	// extent type the codec does not know.
	ErrVocabulary = errors.New("vocabulary mismatch")

	// ErrMissingField reports a required feature field that is absent,
	// blank, or empty.
	ErrMissingField = errors.New("missing required field")

	// ErrUnsupportedFeature reports a feature type with no registered
	// codec.
	ErrUnsupportedFeature = errors.New("unsupported feature type")

	// ErrMalformedPayload reports a payload whose structure cannot be
	// decoded: disagreeing array lengths, or a curve instruction
	// outside any path.
	ErrMalformedPayload = errors.New("malformed payload")
)
