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
	"fmt"
	"sort"

	"dirpx.dev/rgb/apis"
	"dirpx.dev/rgb/code"
	"dirpx.dev/rgb/reason"
)

// Error is the conversion error returned by every entry point.
//
// It carries:
//   - Code: the tag of the failure (code.BadLength or code.InvalidChannel);
//   - Reason: which check produced it, e.g. "rgb.channel.range";
//   - Message: human-oriented description;
//   - Details: key/value payload (channel, value, min, max, length);
//   - Cause: wrapped underlying error, if any.
//
// All WithX helpers return a shallow copy, so sentinel values can be shared
// and refined freely.
type Error struct {
	// Code is the primary classification of the error.
	Code code.Code

	// Reason refines Code with the name of the failed check.
	// May be empty.
	Reason reason.Reason

	// Message is a human-readable explanation.
	Message string

	// Details is a shallow map of extra fields. It is treated as immutable:
	// WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error, if any.
	Cause error
}

// Sentinels for errors.Is. Every *Error with the same Code matches them.
var (
	// ErrBadLength is the BadLength case: a slice candidate did not hold
	// exactly three values.
	ErrBadLength = E(code.BadLength, "candidate must hold exactly 3 values")

	// ErrInvalidChannel is the InvalidChannel case: a channel value is not
	// a valid 8-bit colour channel.
	ErrInvalidChannel = E(code.InvalidChannel, "channel value is not a valid 8-bit channel")
)

var (
	_ apis.CodedError    = (*Error)(nil)
	_ apis.ReasonedError = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
)

// E is a convenience constructor for Error.
//
// Usage:
//
//	return rgb.E(code.InvalidChannel, "red channel out of range",
//	    rgb.WithReasonOption(reason.ChannelRange),
//	    rgb.WithDetailOption("channel", "red"),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// or, when Reason is present:
//
//	<code>:<reason>: <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s:%s: %s", e.Code, e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Code. A target with
// a non-empty Reason must match that Reason too. Details, Message and Cause
// are ignored.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if e.Code != t.Code {
		return false
	}
	return t.Reason == reason.Empty || e.Reason == t.Reason
}

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// ErrorReason implements apis.ReasonedError.
func (e *Error) ErrorReason() string { return string(e.Reason) }

// ErrorDetails implements apis.DetailedError.
//
// The Details map is folded into a single apis.Detail: "channel" becomes
// the Field, the last Reason segment becomes the detail Reason and every
// other key lands in Info.
func (e *Error) ErrorDetails() []apis.Detail {
	if e == nil || len(e.Details) == 0 {
		return nil
	}
	d := apis.Detail{Type: "input", Reason: lastSegment(e.Reason)}
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := e.Details[k]
		if k == "channel" {
			d.Type = "channel"
			d.Field = fmt.Sprint(v)
			continue
		}
		if d.Info == nil {
			d.Info = make(map[string]string, len(keys))
		}
		d.Info[k] = fmt.Sprint(v)
	}
	return []apis.Detail{d}
}

// WithReason returns a shallow copy of e with the given Reason set.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all kv merged into Details,
// kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given cause attached.
// If err is nil, e is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

func lastSegment(r reason.Reason) string {
	s := string(r)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}
