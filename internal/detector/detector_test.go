// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextSnippet(t *testing.T) {
	long := strings.Repeat("abcdefghij", 8) // 80 chars

	tests := []struct {
		name       string
		text       string
		start, end int
		want       string
	}{
		{"windowed", long, 40, 50, long[20:70]},
		{"clamped left", long, 5, 10, long[0:30]},
		{"clamped right", long, 70, 80, long[50:80]},
		{"short row is whole", strings.Repeat("x", 30), 3, 6, strings.Repeat("x", 30)},
		{"exactly threshold is whole", strings.Repeat("y", 50), 0, 1, strings.Repeat("y", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NewRow(0, tt.text)
			got := ContextSnippet(row.Text, row.Length, tt.start, tt.end)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextSnippetCountsCharacters(t *testing.T) {
	text := strings.Repeat("é", 60) + "4111111111111111" + strings.Repeat("ü", 10)
	row := NewRow(0, text)
	require.Equal(t, 86, row.Length)

	got := ContextSnippet(row.Text, row.Length, 60, 76)
	assert.Equal(t, strings.Repeat("é", 20)+"4111111111111111"+strings.Repeat("ü", 10), got)
}

func TestRuneOffsets(t *testing.T) {
	text := "naïve 123"
	bs := strings.Index(text, "123")
	start, end := RuneOffsets(text, bs, bs+3)
	assert.Equal(t, 6, start)
	assert.Equal(t, 9, end)

	start, end = RuneOffsets("abc 123", 4, 7)
	assert.Equal(t, 4, start)
	assert.Equal(t, 7, end)
}

func TestSplitRows(t *testing.T) {
	rows := SplitRows("first\nsecond\n")
	require.Len(t, rows, 3)
	assert.Equal(t, Row{Index: 0, Text: "first", Length: 5}, rows[0])
	assert.Equal(t, 1, rows[1].Index)
	assert.Equal(t, "", rows[2].Text)
}

func TestResultIsSparse(t *testing.T) {
	r := Result{}
	r.Add(RowFindings{Index: 3})
	r.Add(RowFindings{Index: 4, Categories: []CategoryFindings{{Category: "ssn"}}})
	assert.Empty(t, r)

	r.Add(RowFindings{Index: 7, Categories: []CategoryFindings{
		{Category: "ssn", Findings: []Finding{{Category: "ssn", Value: "123-45-6789", Start: 0, End: 11}}},
		{Category: "email"},
	}})
	require.Len(t, r, 1)
	assert.Len(t, r[7], 1)
	assert.Equal(t, []int{7}, r.Rows())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []Triple{{Row: 7, Category: "ssn", Value: "123-45-6789", Span: "0 - 11"}}, r.Triples())
}

func TestValidatorFunc(t *testing.T) {
	var v Validator = ValidatorFunc(func(s string) (string, bool) {
		return strings.ToUpper(s), s != ""
	})
	got, ok := v.Validate("abc")
	assert.True(t, ok)
	assert.Equal(t, "ABC", got)
}

func TestScanErrors(t *testing.T) {
	cause := errors.New("permission denied")
	err := fmt.Errorf("reading input: %w", NewInputError("cannot read file", "/tmp/in.txt", cause))

	assert.True(t, IsInputError(err))
	assert.False(t, IsOutputError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "input: cannot read file (path: /tmp/in.txt): permission denied")

	rowErr := NewRowError(4, "scan failed", nil)
	assert.Equal(t, "row: scan failed (row: 4)", rowErr.Error())

	_, ok := ErrorTypeOf(errors.New("plain"))
	assert.False(t, ok)
}
