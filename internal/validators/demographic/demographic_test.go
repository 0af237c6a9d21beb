// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package demographic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGender(t *testing.T) {
	g := NewGender()

	tests := []struct {
		candidate string
		want      string
		valid     bool
	}{
		{"female", Female, true},
		{"WOMAN", Female, true},
		{"Girl", Female, true},
		{"male", Male, true},
		{"MAN", Male, true},
		{"boY", Male, true},
		{"person", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			got, ok := g.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenderPattern(t *testing.T) {
	assert.Equal(t, []string{"Male", "woman"}, GenderPattern.FindAllString("Male patient, woman nurse, manager", -1))
}

func TestAge(t *testing.T) {
	tests := []struct {
		candidate string
		valid     bool
	}{
		{"age 42", true},
		{"aged: 7", true},
		{"110 years old", true},
		{"111 years old", false},
		{"age 250", false},
		{"age", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			got, ok := Age{}.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
			if ok {
				assert.Equal(t, tt.candidate, got)
			}
		})
	}
}

func TestAgePattern(t *testing.T) {
	tests := map[string]string{
		"patient age 42 today":     "age 42",
		"a 35-year old":            "",
		"she is 35 years old":      "35 years old",
		"Aged:61, retired":         "Aged:61",
		"boy, 12 y/o":              "12 y/o",
		"no numbers in this line.": "",
	}
	for text, want := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, want, AgePattern.FindString(text))
		})
	}
}
