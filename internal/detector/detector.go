// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validator decides whether a candidate string is a genuine instance of a
// category. It returns the value to report (the candidate itself or a
// normalized form) and true, or "" and false when the candidate is rejected.
//
// Implementations must be pure and must not panic on malformed input.
type Validator interface {
	Validate(candidate string) (string, bool)
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(candidate string) (string, bool)

// Validate calls f(candidate).
func (f ValidatorFunc) Validate(candidate string) (string, bool) {
	return f(candidate)
}

// Row is one line of input text.
type Row struct {
	Index  int
	Text   string
	Length int // character count, not bytes
}

// NewRow builds a Row with its character length computed.
func NewRow(index int, text string) Row {
	return Row{Index: index, Text: text, Length: utf8.RuneCountInString(text)}
}

// SplitRows splits text on "\n" into ordered rows. A trailing newline
// produces a final empty row, which simply yields no findings.
func SplitRows(text string) []Row {
	lines := strings.Split(text, "\n")
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = NewRow(i, line)
	}
	return rows
}

// Candidate is a pattern match that has not been validated yet.
type Candidate struct {
	Category string
	Value    string // trimmed match text
	Start    int    // character offset of the untrimmed match
	End      int
}

// Finding is a confirmed detection.
type Finding struct {
	Category string
	Value    string
	Start    int
	End      int
	Context  string
}

// Span renders the character span the way the JSON artifact records it.
func (f Finding) Span() string {
	return strconv.Itoa(f.Start) + " - " + strconv.Itoa(f.End)
}

// CategoryFindings groups the findings of one category within a row.
type CategoryFindings struct {
	Category string
	Findings []Finding
}

// RowFindings holds every non-empty category for one row, in corpus order.
type RowFindings struct {
	Index      int
	Categories []CategoryFindings
}

// Empty reports whether the row produced no findings at all.
func (rf RowFindings) Empty() bool {
	return len(rf.Categories) == 0
}

// Count returns the total number of findings in the row.
func (rf RowFindings) Count() int {
	n := 0
	for _, cf := range rf.Categories {
		n += len(cf.Findings)
	}
	return n
}

// Diagnostic records a fault that was isolated while scanning a row.
type Diagnostic struct {
	Row      int
	Category string
	Message  string
}

// Result is the sparse mapping row index -> category -> findings.
// Rows and categories without findings are never present.
type Result map[int]map[string][]Finding

// Add merges the findings of one row into the result. Empty rows and empty
// categories are skipped.
func (r Result) Add(rf RowFindings) {
	for _, cf := range rf.Categories {
		if len(cf.Findings) == 0 {
			continue
		}
		cats, ok := r[rf.Index]
		if !ok {
			cats = make(map[string][]Finding)
			r[rf.Index] = cats
		}
		cats[cf.Category] = append(cats[cf.Category], cf.Findings...)
	}
}

// Rows returns the row indices with findings in ascending order.
func (r Result) Rows() []int {
	idx := make([]int, 0, len(r))
	for i := range r {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Len returns the total number of findings.
func (r Result) Len() int {
	n := 0
	for _, cats := range r {
		for _, fs := range cats {
			n += len(fs)
		}
	}
	return n
}

// Triple identifies a finding independent of its context snippet.
type Triple struct {
	Row      int
	Category string
	Value    string
	Span     string
}

// Triples flattens the result into a sorted list of triples, which makes
// results from different sinks directly comparable.
func (r Result) Triples() []Triple {
	var out []Triple
	for row, cats := range r {
		for cat, fs := range cats {
			for _, f := range fs {
				out = append(out, Triple{Row: row, Category: cat, Value: f.Value, Span: f.Span()})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Span != b.Span {
			return a.Span < b.Span
		}
		return a.Value < b.Value
	})
	return out
}
