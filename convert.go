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
	"context"
	"fmt"
	"log/slog"
	"math"

	"dirpx.dev/rgb/code"
	"dirpx.dev/rgb/reason"
)

// Triple is the fixed three-value candidate shape.
type Triple struct {
	R, G, B int16
}

// Candidate lists the accepted input shapes for Convert.
type Candidate interface {
	Triple | [3]int16 | []int16
}

// channelNames maps channel positions to names: 0 red, 1 green, 2 blue.
var channelNames = [3]string{"red", "green", "blue"}

// Converter validates candidates against an inclusive channel range and
// narrows them into a Color.
//
// A Converter is immutable after NewConverter and safe for concurrent use.
// The zero value behaves like the package-level functions: range 1..255,
// no logging.
type Converter struct {
	min, max int16
	logger   *slog.Logger
	// built is false for the zero value, which then uses the defaults.
	built bool
}

// defaultConverter backs the package-level functions.
var defaultConverter = &Converter{}

// NewConverter builds a Converter. Without options it behaves exactly like
// the package-level functions.
func NewConverter(opts ...ConverterOption) (*Converter, error) {
	b := newConverterBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if b.min > b.max {
		return nil, fmt.Errorf("rgb: invalid channel range [%d, %d]: min exceeds max", b.min, b.max)
	}
	return &Converter{min: b.min, max: b.max, logger: b.logger, built: true}, nil
}

// Range returns the inclusive channel range this converter accepts.
func (cv *Converter) Range() (lo, hi int16) {
	if !cv.built {
		return DefaultMinChannel, DefaultMaxChannel
	}
	return cv.min, cv.max
}

func (cv *Converter) log() *slog.Logger {
	if cv.logger == nil {
		return discard
	}
	return cv.logger
}

var discard = slog.New(slog.DiscardHandler)

// FromTuple converts three channel values given in red, green, blue order.
func (cv *Converter) FromTuple(r, g, b int16) (Color, error) {
	return cv.convert([3]int16{r, g, b})
}

// FromTriple converts a Triple.
func (cv *Converter) FromTriple(t Triple) (Color, error) {
	return cv.convert([3]int16{t.R, t.G, t.B})
}

// FromArray converts a fixed three-element array.
func (cv *Converter) FromArray(a [3]int16) (Color, error) {
	return cv.convert(a)
}

// FromSlice converts a slice. The length is checked first: anything but
// exactly three values yields BadLength, whatever the values are.
func (cv *Converter) FromSlice(s []int16) (Color, error) {
	if len(s) != 3 {
		err := E(code.BadLength, fmt.Sprintf("got %d values, want 3", len(s)),
			WithReasonOption(reason.SliceLength),
			WithDetailOption("length", len(s)),
		)
		return Color{}, cv.reject(err)
	}
	return cv.convert([3]int16{s[0], s[1], s[2]})
}

// convert runs the range check over all channels before narrowing any of
// them, so a Color is only built from fully validated input.
func (cv *Converter) convert(in [3]int16) (Color, error) {
	lo, hi := cv.Range()
	for i, v := range in {
		if v < lo || v > hi {
			err := E(code.InvalidChannel,
				fmt.Sprintf("%s channel %d is outside [%d, %d]", channelNames[i], v, lo, hi),
				WithReasonOption(reason.ChannelRange),
				WithDetailsOption(map[string]any{
					"channel": channelNames[i],
					"value":   v,
					"min":     lo,
					"max":     hi,
				}),
			)
			return Color{}, cv.reject(err)
		}
	}

	var out [3]uint8
	for i, v := range in {
		n, err := narrow(v)
		if err != nil {
			e := E(code.InvalidChannel,
				fmt.Sprintf("%s channel %d does not fit into uint8", channelNames[i], v),
				WithReasonOption(reason.ChannelNarrow),
				WithDetailsOption(map[string]any{
					"channel": channelNames[i],
					"value":   v,
				}),
				WithCauseOption(err),
			)
			return Color{}, cv.reject(e)
		}
		out[i] = n
	}

	return Color{Red: out[0], Green: out[1], Blue: out[2]}, nil
}

// reject logs a failed conversion at debug level and returns err.
func (cv *Converter) reject(err *Error) *Error {
	logger := cv.log()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return err
	}
	attrs := []slog.Attr{
		slog.String("code", string(err.Code)),
		slog.String("reason", string(err.Reason)),
	}
	if ch, ok := err.Details["channel"]; ok {
		attrs = append(attrs, slog.Any("channel", ch), slog.Any("value", err.Details["value"]))
	}
	if n, ok := err.Details["length"]; ok {
		attrs = append(attrs, slog.Any("length", n))
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, "rgb: candidate rejected", attrs...)
	return err
}

// errNarrow is the cause attached to narrowing failures.
type errNarrow struct{ v int16 }

func (e errNarrow) Error() string {
	return fmt.Sprintf("value %d overflows uint8", e.v)
}

// narrow is a checked int16 to uint8 conversion.
func narrow(v int16) (uint8, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, errNarrow{v: v}
	}
	return uint8(v), nil
}

// ConvertWith converts any Candidate shape with the given Converter.
func ConvertWith[T Candidate](cv *Converter, in T) (Color, error) {
	switch v := any(in).(type) {
	case Triple:
		return cv.FromTriple(v)
	case [3]int16:
		return cv.FromArray(v)
	case []int16:
		return cv.FromSlice(v)
	default:
		// unreachable: Candidate is a closed type set.
		panic(fmt.Sprintf("rgb: unsupported candidate %T", in))
	}
}

// Convert converts any Candidate shape with the default converter.
func Convert[T Candidate](in T) (Color, error) {
	return ConvertWith(defaultConverter, in)
}

// FromTuple converts three channel values with the default converter.
func FromTuple(r, g, b int16) (Color, error) {
	return defaultConverter.FromTuple(r, g, b)
}

// FromTriple converts a Triple with the default converter.
func FromTriple(t Triple) (Color, error) {
	return defaultConverter.FromTriple(t)
}

// FromArray converts an array with the default converter.
func FromArray(a [3]int16) (Color, error) {
	return defaultConverter.FromArray(a)
}

// FromSlice converts a slice with the default converter.
func FromSlice(s []int16) (Color, error) {
	return defaultConverter.FromSlice(s)
}

// MustFromTuple is the panic-on-error variant of FromTuple. It is meant
// for package-level values and tests.
func MustFromTuple(r, g, b int16) Color {
	c, err := FromTuple(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}
