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

import (
	"fmt"
	"strings"

	"dirpx.dev/rgb/apis"
	"dirpx.dev/rgb/code"
	"dirpx.dev/rgb/mapper/internal/segmenttrie"
	"dirpx.dev/rgb/reason"
	"google.golang.org/grpc/codes"
)

// Resolution sources reported by Explain.
const (
	sourceOverride = "override"
	sourcePrefix   = "prefix"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
//
// Every rule's code must pass code.Validate, and every prefix is
// normalized with reason.Normalize and validated before it is inserted; an
// invalid code or prefix fails the whole build.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpT, err := freeze(b.http, "HTTP", func(v int) int { return v }, b.fallbackHTTP)
	if err != nil {
		return nil, err
	}
	grpcT, err := freeze(b.grpc, "gRPC", func(v int) codes.Code { return codes.Code(v) }, b.fallbackGRPC)
	if err != nil {
		return nil, err
	}
	return &mapper{http: httpT, grpc: grpcT}, nil
}

// table is the frozen rule set for one transport.
type table[T any] struct {
	defaults  map[code.Code]T
	overrides map[code.Code]T
	tries     map[code.Code]*segmenttrie.Trie[T]
	fallback  T
}

// freeze copies r into a fresh table, converting values with conv and
// compiling prefix rules into per-code tries.
func freeze[T any](r rules, transport string, conv func(int) T, fallback T) (table[T], error) {
	t := table[T]{
		defaults:  make(map[code.Code]T, len(r.defaults)),
		overrides: make(map[code.Code]T, len(r.overrides)),
		tries:     make(map[code.Code]*segmenttrie.Trie[T], len(r.prefixes)),
		fallback:  fallback,
	}
	for c, v := range r.defaults {
		if err := code.Validate(c); err != nil {
			return t, fmt.Errorf("mapper: invalid %s default code %q: %w", transport, c, err)
		}
		t.defaults[c] = conv(v)
	}
	for c, v := range r.overrides {
		if err := code.Validate(c); err != nil {
			return t, fmt.Errorf("mapper: invalid %s override code %q: %w", transport, c, err)
		}
		t.overrides[c] = conv(v)
	}
	for c, prs := range r.prefixes {
		if len(prs) == 0 {
			continue
		}
		if err := code.Validate(c); err != nil {
			return t, fmt.Errorf("mapper: invalid %s prefix code %q: %w", transport, c, err)
		}
		tr := segmenttrie.New[T]()
		for _, pr := range prs {
			p, err := normalizePrefix(pr.prefix)
			if err != nil {
				return t, fmt.Errorf("mapper: invalid %s reason-prefix %q for code %q: %w", transport, pr.prefix, c, err)
			}
			if err := tr.Insert(p, conv(pr.val)); err != nil {
				return t, fmt.Errorf("mapper: cannot insert %s prefix %q for code %q: %w", transport, p, c, err)
			}
		}
		t.tries[c] = tr
	}
	return t, nil
}

// resolve applies override, prefix, default and fallback in that order.
func (t table[T]) resolve(c code.Code, r reason.Reason) (v T, source, pattern string) {
	if v, ok := t.overrides[c]; ok {
		return v, sourceOverride, ""
	}
	if tr, ok := t.tries[c]; ok {
		if v, ok, p := tr.Lookup(string(r)); ok {
			return v, sourcePrefix, p
		}
	}
	if v, ok := t.defaults[c]; ok {
		return v, sourceDefault, ""
	}
	return t.fallback, sourceFallback, ""
}

// mapper is the immutable apis.Mapper implementation. Lookups are
// O(reason depth) and safe for concurrent use.
type mapper struct {
	http table[int]
	grpc table[codes.Code]
}

// HTTPStatus resolves an HTTP status for the given code and reason.
func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := m.http.resolve(c, r)
	return v
}

// GRPCStatus resolves a gRPC status for the given code and reason.
func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := m.grpc.resolve(c, r)
	return v
}

// Status resolves both transports with the same inputs.
func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, r),
		GRPC: m.GRPCStatus(c, r),
	}
}

// Explain produces a textual trace of the resolution, e.g.:
//
//	code="invalid_channel" reason="rgb.channel.narrow"
//	http: source=prefix pattern="rgb.channel.narrow" -> 422
//	grpc: source=default -> OUTOFRANGE(11)
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)

	hv, hsrc, hpat := m.http.resolve(c, r)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", describe(hsrc, hpat), hv)

	gv, gsrc, gpat := m.grpc.resolve(c, r)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", describe(gsrc, gpat), strings.ToUpper(gv.String()), int(gv))

	return b.String()
}

func describe(source, pattern string) string {
	if source == sourcePrefix {
		return fmt.Sprintf("source=%s pattern=%q", source, pattern)
	}
	return "source=" + source
}

// normalizePrefix brings a reason prefix into canonical form. Unlike a
// reason, a prefix may contain "*" segments but must not be empty.
func normalizePrefix(raw string) (string, error) {
	p := reason.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	return p, nil
}
