// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package vin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		candidate string
		want      string
		valid     bool
	}{
		{"check digit X", "1M8GDM9AXKP042788", "1M8GDM9AXKP042788", true},
		{"honda", "1HGCM82633A004352", "1HGCM82633A004352", true},
		{"all ones", "11111111111111111", "11111111111111111", true},
		{"lower case", "1hgcm82633a004352", "1HGCM82633A004352", true},
		{"check digit mutated", "1HGCM82643A004352", "", false},
		{"letter O", "1HGCM82633O004352", "", false},
		{"short", "1HGCM82633A00435", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransliterate(t *testing.T) {
	tests := map[byte]int{'A': 1, 'H': 8, 'J': 1, 'N': 5, 'P': 7, 'R': 9, 'S': 2, 'Z': 9, '7': 7}
	for c, want := range tests {
		got, ok := transliterate(c)
		assert.True(t, ok, string(c))
		assert.Equal(t, want, got, string(c))
	}
	_, ok := transliterate('Q')
	assert.False(t, ok)
}
