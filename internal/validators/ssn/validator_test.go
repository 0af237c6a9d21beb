// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

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
		{"dashed", "123-45-6789", true},
		{"plain", "123456789", true},
		{"spaced", "123 45 6789", true},
		{"highest issued area", "771-12-3456", true},
		{"area above issued range", "772-12-3456", false},
		{"area 000", "000-12-3456", false},
		{"area 666", "666-12-3456", false},
		{"group 00", "123-00-6789", false},
		{"serial 0000", "123-45-0000", false},
		{"eight digits", "12345678", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.candidate, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestPatternRequiresNineDigits(t *testing.T) {
	assert.Equal(t, "775329234", Pattern.FindString("fake ssn 775329234 3 castle hill close"))
	assert.Empty(t, Pattern.FindString("only 12345678 here"))
}
