// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scanner applies corpus categories to rows: it finds candidates,
// validates them and aggregates the confirmed findings per row.
package scanner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"pii-recognition/internal/corpus"
	"pii-recognition/internal/detector"
)

// Scanner scans rows against a corpus. It holds no mutable state and is safe
// for concurrent use.
type Scanner struct {
	categories []corpus.Category
	logger     *zap.Logger
}

// New creates a scanner for c. A nil logger discards diagnostics.
func New(c *corpus.Corpus, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{categories: c.Categories(), logger: logger}
}

// Candidates returns the non-overlapping matches of the category's pattern
// in the row, left to right. Values are trimmed; offsets are those of the
// untrimmed match, in characters. Matches that are empty after trimming are
// dropped, as are matches of a bounded category that sit inside a word.
func Candidates(row detector.Row, cat corpus.Category) []detector.Candidate {
	locs := cat.Pattern.FindAllStringIndex(row.Text, -1)
	if len(locs) == 0 {
		return nil
	}

	candidates := make([]detector.Candidate, 0, len(locs))
	for _, loc := range locs {
		if cat.Bounded && touchesWord(row.Text, loc[0], loc[1]) {
			continue
		}
		value := strings.TrimSpace(row.Text[loc[0]:loc[1]])
		if value == "" {
			continue
		}
		start, end := detector.RuneOffsets(row.Text, loc[0], loc[1])
		candidates = append(candidates, detector.Candidate{
			Category: cat.Name,
			Value:    value,
			Start:    start,
			End:      end,
		})
	}
	return candidates
}

func touchesWord(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return true
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Verify runs the category's validator over candidates and builds findings
// with their context. Structural categories accept every candidate as-is.
func Verify(row detector.Row, cat corpus.Category, candidates []detector.Candidate) []detector.Finding {
	var findings []detector.Finding
	for _, c := range candidates {
		value := c.Value
		if cat.Validator != nil {
			v, ok := cat.Validator.Validate(c.Value)
			if !ok {
				continue
			}
			value = v
		}
		findings = append(findings, detector.Finding{
			Category: cat.Name,
			Value:    value,
			Start:    c.Start,
			End:      c.End,
			Context:  detector.ContextSnippet(row.Text, row.Length, c.Start, c.End),
		})
	}
	return findings
}

// ScanRow scans one row against every category in corpus order. Categories
// with no findings are omitted. A fault inside one category is recorded as a
// diagnostic and scanning continues with the next category.
func (s *Scanner) ScanRow(row detector.Row) (detector.RowFindings, []detector.Diagnostic) {
	rf := detector.RowFindings{Index: row.Index}
	var diags []detector.Diagnostic

	for _, cat := range s.categories {
		findings, err := s.scanCategory(row, cat)
		if err != nil {
			diags = append(diags, detector.Diagnostic{Row: row.Index, Category: cat.Name, Message: err.Error()})
			s.logger.Warn("category scan failed",
				zap.Int("row", row.Index),
				zap.String("category", cat.Name),
				zap.Error(err))
			continue
		}
		if len(findings) > 0 {
			rf.Categories = append(rf.Categories, detector.CategoryFindings{Category: cat.Name, Findings: findings})
		}
	}
	return rf, diags
}

func (s *Scanner) scanCategory(row detector.Row, cat corpus.Category) (findings []detector.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			err = detector.NewRowError(row.Index, fmt.Sprintf("%s: %v", cat.Name, r), nil)
		}
	}()
	return Verify(row, cat, Candidates(row, cat)), nil
}

// Scan scans every row and returns the sparse result and any diagnostics.
func (s *Scanner) Scan(rows []detector.Row) (detector.Result, []detector.Diagnostic) {
	result := detector.Result{}
	var diags []detector.Diagnostic
	for _, row := range rows {
		rf, d := s.ScanRow(row)
		result.Add(rf)
		diags = append(diags, d...)
	}
	return result, diags
}
