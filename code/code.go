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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Code is the canonical, validated representation of an error code.
//
// It is a separate type (not just string) so that raw user input is never
// mixed up with normalized values.
type Code string

// MinLength and MaxLength define the allowed length range for a code.
const (
	// MinLength is the minimum length for a valid code.
	MinLength = 3

	// MaxLength is the maximum length for a valid code.
	MaxLength = 64
)

// codeFmt is the pattern a canonical code must match. The {2,63}
// quantifier is tied to MinLength / MaxLength.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed or validated as
// a code.
var ErrCodeInvalid = errors.New("rgb: invalid code")

var _ encoding.TextUnmarshaler = (*Code)(nil)

// Empty is the zero-value code. It never validates.
var Empty Code = ""

// Parse normalizes and validates s. On success it returns a canonical Code.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// Normalize trims surrounding spaces, lowercases the value and replaces
// '-' with '_'. The result still has to go through Parse or Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code is valid.
// The empty code ("") is considered invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// Tag returns the code as a variant name, e.g. "bad_length" becomes
// "BadLength". It is what debug output prints inside Err(...).
func (c Code) Tag() string {
	if c == Empty {
		return ""
	}
	// A Caser is stateful, so it is not shared between calls.
	caser := cases.Title(language.Und, cases.NoLower)
	segs := strings.Split(string(c), "_")
	var b strings.Builder
	b.Grow(len(c))
	for _, s := range segs {
		b.WriteString(caser.String(s))
	}
	return b.String()
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning, so YAML
// or JSON documents may spell codes as "Bad-Length".
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
