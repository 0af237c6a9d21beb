// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"pii-recognition/internal/detector"
	"pii-recognition/internal/formatters"
)

// Formatter implements the streaming JSON artifact format
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Single JSON document keyed by row, written incrementally"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) NewSink(w io.Writer, options formatters.FormatterOptions) formatters.Sink {
	return NewStreamWriter(w)
}

// StreamWriter writes findings as they arrive in the layout
//
//	[{"<row>":{"<category>": [[category, value, "start - end", context], ...], ...},
//	"<row>":{...}}]
//
// Entries after the first are preceded by ",\n", so the document is valid
// at Close without rewriting earlier output. An empty scan yields [{}].
// Row objects use ", " and ": " separators and escape every non-ASCII
// character as \uXXXX.
type StreamWriter struct {
	w       *bufio.Writer
	started bool
	closed  bool
	rows    int
	err     error
}

// NewStreamWriter creates a stream writer on w
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: bufio.NewWriter(w)}
}

// Emit implements formatters.Sink. Empty rows are skipped.
func (s *StreamWriter) Emit(rf detector.RowFindings) error {
	if s.closed {
		return errors.New("json stream: emit after close")
	}
	if s.err != nil {
		return s.err
	}
	if rf.Empty() {
		return nil
	}

	if !s.started {
		s.writeString("[{")
		s.started = true
	}
	if s.rows > 0 {
		s.writeString(",\n")
	}
	s.writeString(`"` + strconv.Itoa(rf.Index) + `":`)
	s.writeRow(rf)
	s.rows++
	return s.err
}

// Close implements formatters.Sink. It terminates the document and flushes.
func (s *StreamWriter) Close() error {
	if s.closed {
		return s.err
	}
	s.closed = true
	if s.err != nil {
		return s.err
	}
	if !s.started {
		s.writeString("[{")
	}
	s.writeString("}]\n")
	if s.err == nil {
		s.err = s.w.Flush()
	}
	return s.err
}

// Rows returns the number of rows written so far
func (s *StreamWriter) Rows() int {
	return s.rows
}

func (s *StreamWriter) writeRow(rf detector.RowFindings) {
	s.writeString("{")
	for i, cf := range rf.Categories {
		if i > 0 {
			s.writeString(", ")
		}
		s.writeQuoted(cf.Category)
		s.writeString(": [")
		for j, f := range cf.Findings {
			if j > 0 {
				s.writeString(", ")
			}
			s.writeString("[")
			s.writeQuoted(f.Category)
			s.writeString(", ")
			s.writeQuoted(f.Value)
			s.writeString(", ")
			s.writeQuoted(f.Span())
			s.writeString(", ")
			s.writeQuoted(f.Context)
			s.writeString("]")
		}
		s.writeString("]")
	}
	s.writeString("}")
}

func (s *StreamWriter) writeString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.WriteString(str)
}

func (s *StreamWriter) writeQuoted(str string) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.WriteString(QuoteASCII(str))
}

const hexDigits = "0123456789abcdef"

// QuoteASCII returns str as a JSON string literal containing only printable
// ASCII. Characters outside the space..tilde range are written as \uXXXX
// (surrogate pairs above the BMP), except for the short escapes \b \f \n \r
// \t. Invalid UTF-8 bytes are written as \ufffd.
func QuoteASCII(str string) string {
	buf := make([]byte, 0, len(str)+2)
	buf = append(buf, '"')
	for _, r := range str {
		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			switch {
			case r >= 0x20 && r <= 0x7e:
				buf = append(buf, byte(r))
			case r > 0xffff:
				r -= 0x10000
				buf = appendUnicode(buf, 0xd800+(r>>10))
				buf = appendUnicode(buf, 0xdc00+(r&0x3ff))
			default:
				buf = appendUnicode(buf, r)
			}
		}
	}
	buf = append(buf, '"')
	return string(buf)
}

func appendUnicode(buf []byte, r rune) []byte {
	return append(buf, '\\', 'u',
		hexDigits[(r>>12)&0xf], hexDigits[(r>>8)&0xf], hexDigits[(r>>4)&0xf], hexDigits[r&0xf])
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
