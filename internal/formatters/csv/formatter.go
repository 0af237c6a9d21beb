// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"pii-recognition/internal/detector"
	"pii-recognition/internal/formatters"
	"pii-recognition/internal/formatters/shared"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import, one finding per line"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) NewSink(w io.Writer, options formatters.FormatterOptions) formatters.Sink {
	return &sink{w: csv.NewWriter(w), options: options}
}

var headers = []string{"Row", "Category", "Value", "Start", "End", "Context"}

type sink struct {
	w          *csv.Writer
	options    formatters.FormatterOptions
	headerDone bool
}

func (s *sink) writeHeader() error {
	if s.headerDone {
		return nil
	}
	s.headerDone = true
	return s.w.Write(headers)
}

// Emit implements formatters.Sink
func (s *sink) Emit(rf detector.RowFindings) error {
	if err := s.writeHeader(); err != nil {
		return err
	}
	for _, r := range shared.ConvertRowToRecords(rf, true) {
		if err := s.w.Write(s.createCSVRow(r)); err != nil {
			return err
		}
	}
	return nil
}

// Close implements formatters.Sink. The header is written even when no
// findings were emitted.
func (s *sink) Close() error {
	if err := s.writeHeader(); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// createCSVRow creates a CSV row for a record
func (s *sink) createCSVRow(r shared.Record) []string {
	return []string{
		strconv.Itoa(r.Row),
		r.Category,
		r.Value,
		strconv.Itoa(r.Start),
		strconv.Itoa(r.End),
		r.Context,
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
