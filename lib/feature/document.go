// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// ParseDocument parses a feature document: a JSON array of feature
// records in modeling order. Comments and trailing commas are allowed.
func ParseDocument(data []byte) ([]Feature, error) {
	plain := jsonc.ToJSON(data)
	var records []json.RawMessage
	if err := json.Unmarshal(plain, &records); err != nil {
		return nil, fmt.Errorf("parsing feature document: %w", err)
	}
	features := make([]Feature, len(records))
	for i, record := range records {
		f, err := UnmarshalFeature(record)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		features[i] = f
	}
	return features, nil
}

// ReadDocument reads and parses the feature document at path.
func ReadDocument(path string) ([]Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading feature document: %w", err)
	}
	features, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return features, nil
}

// MarshalDocument renders features as a JSON array in modeling order.
// A nil slice marshals as an empty array.
func MarshalDocument(features []Feature) ([]byte, error) {
	if features == nil {
		features = []Feature{}
	}
	return json.Marshal(features)
}
