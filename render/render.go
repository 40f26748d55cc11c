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

package render

import (
	"errors"
	"fmt"
	"io"

	"dirpx.dev/rgb"
	"dirpx.dev/rgb/adapter"
	"dirpx.dev/rgb/apis"
	"dirpx.dev/rgb/code"
	"dirpx.dev/rgb/reason"
	"github.com/fatih/color"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Renderer writes rgb.Result values. The zero value is not usable; build
// one with New.
type Renderer struct {
	mapper apis.Mapper
	swatch bool
	color  bool
	status bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSwatch appends the colour's hex code to successful text results,
// painted on a truecolour background when colour output is enabled.
func WithSwatch() Option {
	return func(r *Renderer) { r.swatch = true }
}

// WithColor enables or disables ANSI colour output regardless of whether
// the destination is a terminal.
func WithColor(enabled bool) Option {
	return func(r *Renderer) { r.color = enabled }
}

// WithStatus appends the mapped HTTP and gRPC statuses to failed text
// results.
func WithStatus() Option {
	return func(r *Renderer) { r.status = true }
}

// New returns a Renderer resolving statuses through m.
func New(m apis.Mapper, opts ...Option) *Renderer {
	r := &Renderer{mapper: m}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Text writes one line for res, prefixed with "label: " when label is set.
func (r *Renderer) Text(w io.Writer, label string, res rgb.Result) error {
	line := res.String()
	if label != "" {
		line = label + ": " + line
	}
	switch {
	case res.Ok() && r.swatch:
		line += "  " + r.paint(res.Color)
	case !res.Ok() && r.status:
		st := r.statusOf(res.Err)
		line += fmt.Sprintf(" [http %d, grpc %s]", st.HTTP, st.GRPC)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// JSON writes res as a single-line JSON document followed by a newline.
func (r *Renderer) JSON(w io.Writer, label string, res rgb.Result) error {
	doc, err := structpb.NewStruct(r.document(label, res))
	if err != nil {
		return fmt.Errorf("render: build document: %w", err)
	}
	b, err := protojson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("render: marshal document: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func (r *Renderer) document(label string, res rgb.Result) map[string]any {
	doc := map[string]any{"ok": res.Ok()}
	if label != "" {
		doc["sample"] = label
	}
	if res.Ok() {
		c := res.Color
		doc["color"] = map[string]any{
			"red":   int(c.Red),
			"green": int(c.Green),
			"blue":  int(c.Blue),
			"hex":   c.String(),
		}
		return doc
	}

	v := adapter.ToView(res.Err)
	st := r.statusOf(res.Err)
	e := map[string]any{
		"code":        v.Code,
		"tag":         code.Code(v.Code).Tag(),
		"message":     v.Message,
		"http_status": st.HTTP,
		"grpc_code":   st.GRPC.String(),
	}
	if v.Reason != "" {
		e["reason"] = v.Reason
	}
	if len(v.Details) > 0 {
		ds := make([]any, 0, len(v.Details))
		for _, d := range v.Details {
			info := make(map[string]any, len(d.Info))
			for k, s := range d.Info {
				info[k] = s
			}
			ds = append(ds, map[string]any{
				"type":   d.Type,
				"field":  d.Field,
				"reason": d.Reason,
				"info":   info,
			})
		}
		e["details"] = ds
	}
	doc["error"] = e
	return doc
}

// statusOf resolves err through the mapper. Errors without a code map to
// code.Internal.
func (r *Renderer) statusOf(err error) apis.Status {
	var e *rgb.Error
	if errors.As(err, &e) {
		return r.mapper.Status(e.Code, e.Reason)
	}
	return r.mapper.Status(code.Internal, reason.Empty)
}

func (r *Renderer) paint(c rgb.Color) string {
	p := color.BgRGB(int(c.Red), int(c.Green), int(c.Blue))
	if r.color {
		p.EnableColor()
	} else {
		p.DisableColor()
	}
	return p.Sprint(c.String())
}
