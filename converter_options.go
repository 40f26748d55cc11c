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

import "log/slog"

// Default inclusive channel range. Zero is rejected on purpose; use
// WithChannelRange(0, 255) to accept it.
const (
	DefaultMinChannel int16 = 1
	DefaultMaxChannel int16 = 255
)

// ConverterOption configures a Converter at build time. Options are
// applied to an internal builder and then frozen by NewConverter.
type ConverterOption func(*converterBuilder)

type converterBuilder struct {
	min, max int16
	logger   *slog.Logger
}

func newConverterBuilder() *converterBuilder {
	return &converterBuilder{min: DefaultMinChannel, max: DefaultMaxChannel}
}

// WithChannelRange sets the inclusive range every channel must fall into.
//
// Values that pass the range but do not fit into a uint8 (a range wider
// than 0..255) are still rejected by the narrowing step with
// reason.ChannelNarrow.
func WithChannelRange(lo, hi int16) ConverterOption {
	return func(b *converterBuilder) { b.min, b.max = lo, hi }
}

// WithLogger makes the converter log rejected candidates at debug level.
// A nil logger discards.
func WithLogger(l *slog.Logger) ConverterOption {
	return func(b *converterBuilder) { b.logger = l }
}
