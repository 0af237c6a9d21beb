// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"pii-recognition/internal/detector"
	"pii-recognition/internal/formatters"
	"pii-recognition/internal/formatters/shared"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML document listing every finding as a flat record"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) NewSink(w io.Writer, options formatters.FormatterOptions) formatters.Sink {
	return &sink{w: w, options: options}
}

// Response represents the top-level YAML document
type Response struct {
	Results []shared.Record `yaml:"results"`
}

// sink buffers records and marshals a single document on Close
type sink struct {
	w        io.Writer
	options  formatters.FormatterOptions
	response Response
}

// Emit implements formatters.Sink
func (s *sink) Emit(rf detector.RowFindings) error {
	s.response.Results = append(s.response.Results, shared.ConvertRowToRecords(rf, s.options.ShowContext)...)
	return nil
}

// Close implements formatters.Sink
func (s *sink) Close() error {
	if s.response.Results == nil {
		s.response.Results = []shared.Record{}
	}
	enc := yaml.NewEncoder(s.w)
	enc.SetIndent(2)
	if err := enc.Encode(s.response); err != nil {
		return fmt.Errorf("error formatting YAML: %w", err)
	}
	return enc.Close()
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
