// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pii-recognition/internal/detector"
	"pii-recognition/internal/formatters"
)

func TestSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewFormatter().NewSink(&buf, formatters.FormatterOptions{ShowContext: true})

	require.NoError(t, s.Emit(detector.RowFindings{Index: 1, Categories: []detector.CategoryFindings{
		{Category: "gender", Findings: []detector.Finding{{Category: "gender", Value: "Male", Start: 0, End: 3, Context: "man"}}},
		{Category: "age", Findings: []detector.Finding{{Category: "age", Value: "age 3", Start: 4, End: 9, Context: "man age 3"}}},
	}}))
	require.NoError(t, s.Close())

	var got Response
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Results, 2)
	assert.Equal(t, "gender", got.Results[0].Category)
	assert.Equal(t, "0 - 3", got.Results[0].Span)
	assert.Equal(t, "man age 3", got.Results[1].Context)
}

func TestSinkEmpty(t *testing.T) {
	var buf bytes.Buffer
	s := NewFormatter().NewSink(&buf, formatters.FormatterOptions{})
	require.NoError(t, s.Close())
	assert.Equal(t, "results: []\n", buf.String())
}
