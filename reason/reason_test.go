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
	"encoding"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+lower", "  RGB.Channel.Range  ", "rgb.channel.range"},
		{"slash to dot", "rgb/slice/length", "rgb.slice.length"},
		{"dash to underscore", "rgb.channel.out-of-range", "rgb.channel.out_of_range"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Reason
	}{
		{"slice length", "rgb.slice.length", SliceLength},
		{"slashes", "RGB/Channel/Narrow", ChannelNarrow},
		{"two segments", "rgb.channel", Reason("rgb.channel")},
		{"empty is ok", "", Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"rgb..channel", ErrReasonInvalidFormat},
		{"1rgb.channel", ErrReasonInvalidFormat},
		{"rgb.channel.", ErrReasonInvalidFormat},
		{"a.b.c.d.e", ErrReasonInvalidFormat},
		{"rg", ErrReasonInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != tt.want {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestParse_TooLong(t *testing.T) {
	long := "rgb"
	for len(long) <= MaxLength {
		long += "channel"
	}
	if _, err := Parse(long); err != ErrReasonInvalidLength {
		t.Fatalf("Parse(long) error = %v, want ErrReasonInvalidLength", err)
	}
}

func TestBuiltinReasonsAreCanonical(t *testing.T) {
	for _, r := range []Reason{SliceLength, ChannelRange, ChannelNarrow} {
		got, err := Parse(string(r))
		if err != nil || got != r {
			t.Fatalf("Parse(%q) = %q, %v; want it unchanged", r, got, err)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		r    Reason
		p    string
		want bool
	}{
		{ChannelRange, "rgb.channel", true},
		{ChannelRange, "rgb", true},
		{ChannelRange, "rgb.channel.range", true},
		{ChannelRange, "rgb.chan", false},
		{ChannelRange, "rgb.slice", false},
		{ChannelRange, "", false},
		{Empty, "rgb", false},
	}
	for _, tt := range tests {
		if got := tt.r.HasPrefix(tt.p); got != tt.want {
			t.Fatalf("Reason(%q).HasPrefix(%q) = %v, want %v", tt.r, tt.p, got, tt.want)
		}
	}
}

func TestReason_UnmarshalText(t *testing.T) {
	var r Reason
	if err := r.UnmarshalText([]byte("  RGB/SLICE-LENGTH  ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if r != Reason("rgb.slice_length") {
		t.Fatalf("UnmarshalText = %q, want %q", r, "rgb.slice_length")
	}

	var r2 Reason
	if err := r2.UnmarshalText([]byte("   ")); err != nil {
		t.Fatalf("UnmarshalText(empty) unexpected error: %v", err)
	}
	if r2 != Empty {
		t.Fatalf("UnmarshalText(empty) = %q, want Empty", r2)
	}
}

func TestReason_ImplementsTextUnmarshaler(t *testing.T) {
	var _ encoding.TextUnmarshaler = (*Reason)(nil)
}
