// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package creditcard

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
		{"visa", "4111111111111111", "4111111111111111", true},
		{"visa with dashes", "4111-1111-1111-1111", "4111111111111111", true},
		{"visa with spaces", "4111 1111 1111 1111", "4111111111111111", true},
		{"amex", "378282246310005", "378282246310005", true},
		{"mastercard", "5555555555554444", "5555555555554444", true},
		{"check digit mutated", "4111111111111112", "", false},
		{"unsupported prefix", "1234567812345670", "", false},
		{"too short", "41111111111", "", false},
		{"too long", "41111111111111111111", "", false},
		{"empty", "", "", false},
		{"letters only", "abcd", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPattern(t *testing.T) {
	assert.True(t, Pattern.MatchString("card 4111 1111 1111 1111 exp"))
	assert.False(t, Pattern.MatchString("order 12345"))
}
