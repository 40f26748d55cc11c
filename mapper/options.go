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

package mapper

import "dirpx.dev/rgb/code"

// Option configures the Mapper at build time.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for a code.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.http.defaults[c] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for a code.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpc.defaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP status for a code. Overrides
// beat both prefix rules and defaults.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.http.overrides[c] = http }
}

// WithGRPCOverride registers an exact gRPC status for a code.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpc.overrides[c] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule on the reason for
// the given code. Use "*" to match a single segment.
func WithHTTPPrefix(c code.Code, prefix string, http int) Option {
	return func(b *builder) { b.http.prefixes[c] = append(b.http.prefixes[c], prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule on the reason for
// the given code.
func WithGRPCPrefix(c code.Code, prefix string, grpc int) Option {
	return func(b *builder) { b.grpc.prefixes[c] = append(b.grpc.prefixes[c], prefixRule{prefix, grpc}) }
}
