// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		candidate string
		valid     bool
	}{
		{"valid", "AB1234563", true},
		{"nine as second letter", "M91234563", true},
		{"check digit mutated", "AB1234564", false},
		{"letters in digits", "AB12345X3", false},
		{"short", "AB123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := v.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "AB1234563", Pattern.FindString("DEA# AB1234563 on file"))
}
