// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"pii-recognition/internal/detector"
	"pii-recognition/internal/formatters"
)

// Formatter implements human-readable console output
type Formatter struct{}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable table with colored categories"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) NewSink(w io.Writer, options formatters.FormatterOptions) formatters.Sink {
	return newSink(w, options)
}

const (
	categoryWidth = 20
	spanWidth     = 11
	maxValueWidth = 40
)

type sink struct {
	w       *bufio.Writer
	options formatters.FormatterOptions
	colors  map[string]*color.Color

	headerDone bool
	rows       int
	findings   int
	err        error
}

func newSink(w io.Writer, options formatters.FormatterOptions) *sink {
	s := &sink{
		w:       bufio.NewWriter(w),
		options: options,
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"blue":   color.New(color.FgBlue),
			"white":  color.New(color.FgWhite, color.Bold),
			"dimmed": color.New(color.Faint),
		},
	}
	if options.NoColor {
		for _, c := range s.colors {
			c.DisableColor()
		}
	}
	return s
}

// Emit implements formatters.Sink
func (s *sink) Emit(rf detector.RowFindings) error {
	if s.err != nil || rf.Empty() {
		return s.err
	}
	if !s.headerDone {
		s.appendHeaders()
		s.headerDone = true
	}
	for _, cf := range rf.Categories {
		for _, f := range cf.Findings {
			s.appendFinding(rf.Index, f)
			s.findings++
		}
	}
	s.rows++
	return s.err
}

// Close implements formatters.Sink
func (s *sink) Close() error {
	if s.err != nil {
		return s.err
	}
	if s.findings == 0 {
		s.printf("%s\n", s.colors["green"].Sprint("No PII found."))
	} else {
		s.printf("\n%s\n", s.colors["white"].Sprintf("%d finding(s) in %d row(s)", s.findings, s.rows))
	}
	if s.err == nil {
		s.err = s.w.Flush()
	}
	return s.err
}

func (s *sink) appendHeaders() {
	header := fmt.Sprintf("%-6s %-*s %-*s %s", "ROW", categoryWidth, "CATEGORY", spanWidth, "SPAN", "VALUE")
	s.printf("%s\n", s.colors["white"].Sprint(header))
	s.printf("%s\n", s.colors["white"].Sprint(strings.Repeat("-", len(header)+maxValueWidth-len("VALUE"))))
}

func (s *sink) appendFinding(row int, f detector.Finding) {
	s.printf("%s %s %s %s\n",
		s.colors["blue"].Sprintf("%-6d", row),
		s.colors["cyan"].Sprintf("%-*s", categoryWidth, f.Category),
		fmt.Sprintf("%-*s", spanWidth, f.Span()),
		s.colors["red"].Sprint(truncate(f.Value, maxValueWidth)),
	)
	if s.options.ShowContext && f.Context != "" {
		s.printf("%s\n", s.colors["dimmed"].Sprintf("       %s", strings.ReplaceAll(f.Context, "\t", " ")))
	}
}

func (s *sink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// truncate shortens str to at most width characters
func truncate(str string, width int) string {
	runes := []rune(str)
	if len(runes) <= width {
		return str
	}
	return string(runes[:width-3]) + "..."
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
