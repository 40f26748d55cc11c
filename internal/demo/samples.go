/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package demo

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/rgb"
	"dirpx.dev/rgb/code"
	"dirpx.dev/rgb/reason"
	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var samplesYAML []byte

// Shape names the entry point a sample goes through.
type Shape string

const (
	ShapeTuple   Shape = "tuple"
	ShapeArray   Shape = "array"
	ShapeSlice   Shape = "slice"
	ShapeConvert Shape = "convert"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	switch v := Shape(strings.TrimSpace(string(text))); v {
	case ShapeTuple, ShapeArray, ShapeSlice, ShapeConvert:
		*s = v
		return nil
	default:
		return fmt.Errorf("demo: unknown shape %q", v)
	}
}

// Sample is one row of the sample table.
type Sample struct {
	Name   string        `yaml:"name"`
	Shape  Shape         `yaml:"shape"`
	Values []int16       `yaml:"values"`
	Expect code.Code     `yaml:"expect"`
	Reason reason.Reason `yaml:"reason"`
	Range  []int16       `yaml:"range"`
}

type sampleTable struct {
	Samples []Sample `yaml:"samples"`
}

// LoadSamples decodes a sample table.
func LoadSamples(data []byte) ([]Sample, error) {
	var tbl sampleTable
	if err := yaml.Unmarshal(data, &tbl); err != nil {
		return nil, fmt.Errorf("demo: decode samples: %w", err)
	}
	for i, s := range tbl.Samples {
		if s.Name == "" {
			return nil, fmt.Errorf("demo: sample %d has no name", i)
		}
		if s.Shape == "" {
			return nil, fmt.Errorf("demo: sample %q has no shape", s.Name)
		}
		if s.Reason != reason.Empty && s.Expect == code.Empty {
			return nil, fmt.Errorf("demo: sample %q: reason %s without an expected code", s.Name, s.Reason)
		}
		if s.Shape != ShapeSlice && s.Shape != ShapeConvert && len(s.Values) != 3 {
			return nil, fmt.Errorf("demo: sample %q: %s shape needs 3 values, got %d", s.Name, s.Shape, len(s.Values))
		}
		if s.Range != nil && len(s.Range) != 2 {
			return nil, fmt.Errorf("demo: sample %q: range needs 2 bounds, got %d", s.Name, len(s.Range))
		}
	}
	return tbl.Samples, nil
}

// Run converts the sample through its shape's entry point with cv.
func (s Sample) Run(cv *rgb.Converter) (rgb.Color, error) {
	switch s.Shape {
	case ShapeTuple:
		return cv.FromTuple(s.Values[0], s.Values[1], s.Values[2])
	case ShapeArray:
		return cv.FromArray([3]int16(s.Values))
	case ShapeConvert:
		return rgb.ConvertWith(cv, s.Values)
	default:
		return cv.FromSlice(s.Values)
	}
}

// Check reports whether res is what the sample expects.
func (s Sample) Check(res rgb.Result) error {
	if s.Expect == code.Empty {
		if !res.Ok() {
			return fmt.Errorf("demo: sample %q: want success, got %v", s.Name, res.Err)
		}
		return nil
	}
	if res.Ok() {
		return fmt.Errorf("demo: sample %q: want %s, got %s", s.Name, s.Expect, res)
	}
	var e *rgb.Error
	if !errors.As(res.Err, &e) || e.Code != s.Expect {
		return fmt.Errorf("demo: sample %q: want %s, got %v", s.Name, s.Expect, res.Err)
	}
	if s.Reason != reason.Empty && e.Reason != s.Reason {
		return fmt.Errorf("demo: sample %q: want reason %s, got %s", s.Name, s.Reason, e.Reason)
	}
	return nil
}
