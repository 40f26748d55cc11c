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

// Package demo runs the sample table through the converter and prints the
// results, followed by the pattern-binding demonstration.
package demo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"dirpx.dev/rgb"
	"dirpx.dev/rgb/adapter"
	"dirpx.dev/rgb/apis"
	"dirpx.dev/rgb/code"
	"dirpx.dev/rgb/grpcx"
	"dirpx.dev/rgb/mapper"
	"dirpx.dev/rgb/render"
	"google.golang.org/grpc/codes"
)

// mapperOptions report narrowing failures as unprocessable rather than out
// of range: the value passed the range check and still cannot be a channel.
// Errors without a conversion code stay a plain 500.
var mapperOptions = []mapper.Option{
	mapper.WithHTTPPrefix(code.InvalidChannel, "rgb.channel.narrow", http.StatusUnprocessableEntity),
	mapper.WithGRPCPrefix(code.InvalidChannel, "rgb.*.narrow", int(codes.InvalidArgument)),
	mapper.WithHTTPOverride(code.Internal, http.StatusInternalServerError),
}

type config struct {
	logger *slog.Logger
	json   bool
	color  bool
	table  []byte
}

// Option configures Run.
type Option func(*config)

// WithLogger routes converter and demo logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithJSON additionally prints every result as JSON.
func WithJSON() Option {
	return func(c *config) { c.json = true }
}

// WithColor paints swatches with ANSI truecolour.
func WithColor(enabled bool) Option {
	return func(c *config) { c.color = enabled }
}

// WithSamples replaces the embedded sample table.
func WithSamples(yamlDoc []byte) Option {
	return func(c *config) { c.table = yamlDoc }
}

// Run prints every sample's result to w. It fails if the table cannot be
// decoded or if a sample does not produce the result it expects.
func Run(w io.Writer, opts ...Option) error {
	cfg := config{logger: slog.New(slog.DiscardHandler), table: samplesYAML}
	for _, opt := range opts {
		opt(&cfg)
	}

	samples, err := LoadSamples(cfg.table)
	if err != nil {
		return err
	}
	cfg.logger.Info("demo: samples loaded", slog.Int("count", len(samples)))

	m, err := mapper.New(mapperOptions...)
	if err != nil {
		return fmt.Errorf("demo: build mapper: %w", err)
	}
	results, err := convertAll(samples, m, cfg.logger)
	if err != nil {
		return err
	}

	text := render.New(m, render.WithSwatch(), render.WithStatus(), render.WithColor(cfg.color))
	if _, err := fmt.Fprintln(w, "== conversions =="); err != nil {
		return err
	}
	for i, s := range samples {
		if err := text.Text(w, s.Name, results[i]); err != nil {
			return err
		}
	}

	if cfg.json {
		if err := printJSON(w, m, samples, results); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "== pattern binding =="); err != nil {
		return err
	}
	return bindPoint(w)
}

func convertAll(samples []Sample, m apis.Mapper, logger *slog.Logger) ([]rgb.Result, error) {
	def, err := rgb.NewConverter(rgb.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("demo: build converter: %w", err)
	}
	results := make([]rgb.Result, len(samples))
	for i, s := range samples {
		cv := def
		if s.Range != nil {
			cv, err = rgb.NewConverter(rgb.WithChannelRange(s.Range[0], s.Range[1]), rgb.WithLogger(logger))
			if err != nil {
				return nil, fmt.Errorf("demo: sample %q: %w", s.Name, err)
			}
		}
		res := rgb.ResultOf(s.Run(cv))
		if err := s.Check(res); err != nil {
			return nil, err
		}
		var e *rgb.Error
		if errors.As(res.Err, &e) {
			d := adapter.ToDescriptor(e, m.Status(e.Code, e.Reason))
			st := grpcx.Status(m, e)
			logger.Info("demo: sample rejected",
				slog.String("sample", s.Name),
				slog.Any("error", d),
				slog.String("grpc", st.Code().String()),
				slog.Int("grpc_details", len(st.Details())),
			)
			logger.Debug("demo: status resolved",
				slog.String("sample", s.Name),
				slog.String("explain", m.Explain(e.Code, e.Reason)),
			)
		}
		results[i] = res
	}
	return results, nil
}

func printJSON(w io.Writer, m apis.Mapper, samples []Sample, results []rgb.Result) error {
	if _, err := fmt.Fprintln(w, "== conversions (json) =="); err != nil {
		return err
	}
	js := render.New(m)
	for i, s := range samples {
		if err := js.JSON(w, s.Name, results[i]); err != nil {
			return err
		}
	}
	return nil
}
