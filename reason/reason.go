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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is the canonical, validated representation of an error reason:
// a dot-separated identifier of one to four segments.
type Reason string

// Reasons emitted by the converter.
const (
	// SliceLength refines code.BadLength.
	SliceLength Reason = "rgb.slice.length"
	// ChannelRange refines code.InvalidChannel when a value falls outside
	// the converter's inclusive range.
	ChannelRange Reason = "rgb.channel.range"
	// ChannelNarrow refines code.InvalidChannel when a value passed the
	// range check but does not fit into a uint8.
	ChannelNarrow Reason = "rgb.channel.narrow"
)

// MinLength and MaxLength bound a non-empty reason.
const (
	MinLength = 3
	MaxLength = 128
)

// reasonFmt accepts 1 to 4 dot-separated segments, each [a-z][a-z0-9_]*.
// The empty string is handled separately and never reaches the regexp.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not conform to
	// the expected format.
	ErrReasonInvalidFormat = errors.New("rgb: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("rgb: invalid reason length")
)

var _ encoding.TextUnmarshaler = (*Reason)(nil)

// Empty is the zero-value reason ("not provided"). It always validates.
var Empty Reason = ""

// Normalize trims, lowercases, turns "/" into "." and "-" into "_".
// It does NOT guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string yields Empty without
// error, which is what makes a Reason optional.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// String returns the canonical string representation of the reason.
func (r Reason) String() string {
	return string(r)
}

// HasPrefix reports whether r starts with the dotted prefix p on a segment
// boundary, e.g. "rgb.channel.range" has prefix "rgb.channel" but not
// "rgb.chan".
func (r Reason) HasPrefix(p string) bool {
	s := string(r)
	if p == "" || !strings.HasPrefix(s, p) {
		return false
	}
	return len(s) == len(p) || s[len(p)] == '.'
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Whitespace-only input produces Empty.
func (r *Reason) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
