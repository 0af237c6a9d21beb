// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-recognition/internal/corpus"
)

func TestShowChecksList(t *testing.T) {
	c := corpus.Default(corpus.Options{})
	var buf bytes.Buffer
	NewSystem(c, true).ShowChecksList(&buf)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Available checks (29)\n"))
	assert.Contains(t, out, "PAYMENT\n")
	assert.Contains(t, out, "NATIONAL_ID\n")
	for _, name := range c.Names() {
		assert.Contains(t, out, "  "+name+" ")
	}
	// payment is listed before national ids
	assert.Less(t, strings.Index(out, "credit_card"), strings.Index(out, "china_id"))
	assert.NotContains(t, out, "\x1b[")
}

func TestShowCheckHelp(t *testing.T) {
	s := NewSystem(corpus.Default(corpus.Options{}), true)

	var buf bytes.Buffer
	require.NoError(t, s.ShowCheckHelp(&buf, " SSN "))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "ssn\n"))
	assert.Contains(t, out, "validated")
	assert.Contains(t, out, "national_id")

	buf.Reset()
	require.NoError(t, s.ShowCheckHelp(&buf, "email"))
	assert.Contains(t, buf.String(), "pattern")

	err := s.ShowCheckHelp(&buf, "bogus")
	assert.EqualError(t, err, `unknown check "bogus"`)
}
