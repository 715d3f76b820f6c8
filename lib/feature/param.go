// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import "encoding/json"

// UnitlessValueType is the value_type assigned to parameters
// synthesized during decoding, which carry no unit information.
const UnitlessValueType = "kUnitless"

// Param is a named scalar parameter. Exported documents write
// parameters as objects carrying name and unit metadata; hand-written
// documents often use a bare number. Both forms unmarshal into the
// same struct, and a Param without metadata marshals back to a bare
// number.
type Param struct {
	Name       string
	Value      float64
	Expression string
	ValueType  string
}

// Unitless returns a parameter named name with value v.
func Unitless(name string, v float64) *Param {
	return &Param{Name: name, Value: v, ValueType: UnitlessValueType}
}

type paramJSON struct {
	Name       string  `json:"name,omitempty"`
	Value      float64 `json:"value"`
	Expression string  `json:"expression,omitempty"`
	ValueType  string  `json:"value_type,omitempty"`
}

func (p *Param) UnmarshalJSON(data []byte) error {
	var value float64
	if err := json.Unmarshal(data, &value); err == nil {
		*p = Param{Value: value}
		return nil
	}
	var obj paramJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*p = Param{Name: obj.Name, Value: obj.Value, Expression: obj.Expression, ValueType: obj.ValueType}
	return nil
}

func (p Param) MarshalJSON() ([]byte, error) {
	if p.Name == "" && p.Expression == "" && p.ValueType == "" {
		return json.Marshal(p.Value)
	}
	return json.Marshal(paramJSON{p.Name, p.Value, p.Expression, p.ValueType})
}
