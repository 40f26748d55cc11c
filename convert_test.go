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

package rgb

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"dirpx.dev/rgb/code"
	"dirpx.dev/rgb/reason"
)

var rust = Color{Red: 183, Green: 65, Blue: 14}

func TestFromTuple(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int16
		want    Color
		wantErr error
	}{
		{"correct", 183, 65, 14, rust, nil},
		{"bounds", 1, 255, 128, Color{1, 255, 128}, nil},
		{"out of range positive", 256, 1000, 10000, Color{}, ErrInvalidChannel},
		{"out of range negative", -1, -10, -256, Color{}, ErrInvalidChannel},
		{"sum", -1, 255, 255, Color{}, ErrInvalidChannel},
		{"zero is rejected", 0, 10, 10, Color{}, ErrInvalidChannel},
		{"zero in last channel", 10, 10, 0, Color{}, ErrInvalidChannel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromTuple(tt.r, tt.g, tt.b)
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Fatalf("FromTuple(%d, %d, %d) error = %v, want %v", tt.r, tt.g, tt.b, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("FromTuple(%d, %d, %d) = %#v, want %#v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestFromArray(t *testing.T) {
	tests := []struct {
		name    string
		in      [3]int16
		want    Color
		wantErr error
	}{
		{"correct", [3]int16{183, 65, 14}, rust, nil},
		{"out of range positive", [3]int16{1000, 10000, 256}, Color{}, ErrInvalidChannel},
		{"out of range negative", [3]int16{-10, -256, -1}, Color{}, ErrInvalidChannel},
		{"sum", [3]int16{-1, 255, 255}, Color{}, ErrInvalidChannel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromArray(tt.in)
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Fatalf("FromArray(%v) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("FromArray(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromSlice(t *testing.T) {
	tests := []struct {
		name    string
		in      []int16
		want    Color
		wantErr error
	}{
		{"correct", []int16{183, 65, 14}, rust, nil},
		{"out of range positive", []int16{10000, 256, 1000}, Color{}, ErrInvalidChannel},
		{"out of range negative", []int16{-256, -1, -10}, Color{}, ErrInvalidChannel},
		{"sum", []int16{-1, 255, 255}, Color{}, ErrInvalidChannel},
		{"excess length", []int16{0, 0, 0, 0}, Color{}, ErrBadLength},
		{"insufficient length", []int16{0, 0}, Color{}, ErrBadLength},
		{"empty", nil, Color{}, ErrBadLength},
		// length is checked before channels
		{"excess length valid values", []int16{183, 65, 14, 1}, Color{}, ErrBadLength},
		{"excess length invalid values", []int16{-1, 1000, 256, 9999}, Color{}, ErrBadLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromSlice(tt.in)
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Fatalf("FromSlice(%v) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("FromSlice(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvert_AllShapesAgree(t *testing.T) {
	a, errA := Convert(Triple{R: 183, G: 65, B: 14})
	b, errB := Convert([3]int16{183, 65, 14})
	c, errC := Convert([]int16{183, 65, 14})
	if errA != nil || errB != nil || errC != nil {
		t.Fatalf("unexpected errors: %v %v %v", errA, errB, errC)
	}
	if a != rust || b != rust || c != rust {
		t.Fatalf("shapes disagree: %#v %#v %#v", a, b, c)
	}

	if _, err := Convert([]int16{1, 2}); !errors.Is(err, ErrBadLength) {
		t.Fatalf("Convert(short slice) error = %v, want ErrBadLength", err)
	}
}

func TestConvert_ErrorDetails(t *testing.T) {
	_, err := FromTuple(10, 300, 20)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not *Error", err)
	}
	if e.Code != code.InvalidChannel || e.Reason != reason.ChannelRange {
		t.Fatalf("got %s/%s, want %s/%s", e.Code, e.Reason, code.InvalidChannel, reason.ChannelRange)
	}
	if e.Details["channel"] != "green" || e.Details["value"] != int16(300) {
		t.Fatalf("details = %v, want channel=green value=300", e.Details)
	}

	_, err = FromSlice([]int16{1, 2, 3, 4, 5})
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not *Error", err)
	}
	if e.Reason != reason.SliceLength || e.Details["length"] != 5 {
		t.Fatalf("got reason=%s details=%v", e.Reason, e.Details)
	}
}

func TestConvert_FirstFailingChannelReported(t *testing.T) {
	_, err := FromTuple(-1, 0, 999)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not *Error", err)
	}
	if e.Details["channel"] != "red" {
		t.Fatalf("channel = %v, want red", e.Details["channel"])
	}
}

func TestConvert_Deterministic(t *testing.T) {
	inputs := [][]int16{{183, 65, 14}, {0, 0, 0}, {1, 2}, {-5, 5, 5}}
	for _, in := range inputs {
		c1, err1 := FromSlice(in)
		c2, err2 := FromSlice(in)
		if c1 != c2 || ResultOf(c1, err1).String() != ResultOf(c2, err2).String() {
			t.Fatalf("FromSlice(%v) not deterministic", in)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	for _, v := range []int16{1, 2, 127, 128, 254, 255} {
		c := MustFromTuple(v, 256-v, v)
		again, err := FromTriple(c.Triple())
		if err != nil {
			t.Fatalf("FromTriple(%v) unexpected error: %v", c.Triple(), err)
		}
		if again != c {
			t.Fatalf("round trip %#v -> %#v", c, again)
		}
	}
}

func TestNewConverter_ZeroAllowed(t *testing.T) {
	cv, err := NewConverter(WithChannelRange(0, 255))
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	got, err := cv.FromTuple(0, 0, 0)
	if err != nil {
		t.Fatalf("FromTuple(0, 0, 0) unexpected error: %v", err)
	}
	if got != (Color{}) {
		t.Fatalf("FromTuple(0, 0, 0) = %#v, want black", got)
	}
	if _, err := cv.FromTuple(0, 0, 256); !errors.Is(err, ErrInvalidChannel) {
		t.Fatalf("FromTuple(0, 0, 256) error = %v, want ErrInvalidChannel", err)
	}
}

func TestNewConverter_NarrowingFailure(t *testing.T) {
	// A range wider than uint8 lets 300 through the range check; the
	// narrowing step must still reject it.
	cv, err := NewConverter(WithChannelRange(-10, 300))
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	_, err = cv.FromArray([3]int16{10, 20, 300})
	narrowed := ErrInvalidChannel.WithReason(reason.ChannelNarrow)
	if !errors.Is(err, narrowed) {
		t.Fatalf("error = %v, want InvalidChannel/%s", err, reason.ChannelNarrow)
	}
	if errors.Is(err, ErrInvalidChannel.WithReason(reason.ChannelRange)) {
		t.Fatalf("narrowing failure must not match the range reason")
	}
	var cause errNarrow
	if !errors.As(err, &cause) || cause.v != 300 {
		t.Fatalf("cause = %v, want errNarrow{300}", errors.Unwrap(err))
	}

	_, err = cv.FromTuple(-5, 20, 30)
	if !errors.Is(err, narrowed) {
		t.Fatalf("negative value: error = %v, want narrowing failure", err)
	}
}

func TestConverter_ZeroValue(t *testing.T) {
	var cv Converter
	if lo, hi := cv.Range(); lo != DefaultMinChannel || hi != DefaultMaxChannel {
		t.Fatalf("Range() = %d, %d; want %d, %d", lo, hi, DefaultMinChannel, DefaultMaxChannel)
	}
	got, err := cv.FromTuple(183, 65, 14)
	if err != nil || got != rust {
		t.Fatalf("FromTuple(183, 65, 14) = %#v, %v", got, err)
	}
	if _, err := cv.FromTuple(0, 65, 14); !errors.Is(err, ErrInvalidChannel) {
		t.Fatalf("FromTuple(0, 65, 14) error = %v, want ErrInvalidChannel", err)
	}
	if _, err := cv.FromSlice([]int16{1}); !errors.Is(err, ErrBadLength) {
		t.Fatalf("FromSlice([1]) error = %v, want ErrBadLength", err)
	}
}

func TestNewConverter_NilLogger(t *testing.T) {
	cv, err := NewConverter(WithLogger(nil), WithChannelRange(0, 0))
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	if lo, hi := cv.Range(); lo != 0 || hi != 0 {
		t.Fatalf("Range() = %d, %d; want 0, 0", lo, hi)
	}
	if _, err := cv.FromTuple(0, 0, 1); !errors.Is(err, ErrInvalidChannel) {
		t.Fatalf("FromTuple(0, 0, 1) error = %v, want ErrInvalidChannel", err)
	}
}

func TestNewConverter_InvalidRange(t *testing.T) {
	if _, err := NewConverter(WithChannelRange(10, 9)); err == nil {
		t.Fatalf("NewConverter(10, 9) expected error")
	}
}

func TestNewConverter_DefaultsMatchPackageFunctions(t *testing.T) {
	cv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	if lo, hi := cv.Range(); lo != 1 || hi != 255 {
		t.Fatalf("Range() = %d, %d; want 1, 255", lo, hi)
	}
	got, err := ConvertWith(cv, []int16{183, 65, 14})
	if err != nil || got != rust {
		t.Fatalf("ConvertWith = %#v, %v", got, err)
	}
}

func TestConverter_LogsRejections(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cv, err := NewConverter(WithLogger(logger))
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}

	if _, err := cv.FromTuple(183, 65, 14); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("successful conversion must not log, got %q", buf.String())
	}

	_, _ = cv.FromTuple(1, 2, 0)
	_, _ = cv.FromSlice([]int16{1})
	out := buf.String()
	for _, sub := range []string{
		"code=invalid_channel", "reason=rgb.channel.range", "channel=blue", "value=0",
		"code=bad_length", "length=1",
	} {
		if !strings.Contains(out, sub) {
			t.Fatalf("log output missing %q in %q", sub, out)
		}
	}
}

func TestMustFromTuple_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustFromTuple should panic on invalid input")
		}
	}()
	_ = MustFromTuple(0, 0, 0)
}
