// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubTagger tags tokens from a fixed table and everything else as NNP.
type stubTagger map[string]string

func (s stubTagger) Tag(sentence string) []TaggedToken {
	var out []TaggedToken
	for _, tok := range strings.Fields(sentence) {
		tag, ok := s[tok]
		if !ok {
			tag = "NNP"
		}
		out = append(out, TaggedToken{Token: tok, Tag: tag})
	}
	return out
}

func TestValidator(t *testing.T) {
	v := NewValidator(stubTagger{"The": "DT", "In": "IN", "Ran": "VBD", "Doctors": "NNS"})

	tests := []struct {
		name      string
		candidate string
		want      string
		valid     bool
	}{
		{"two names", "John Smith", "John Smith", true},
		{"drops determiner", "The Doctor", "Doctor", true},
		{"keeps plural nouns", "The Doctors", "Doctors", true},
		{"three names", "Mary-Jane Watson Parker", "Mary-Jane Watson Parker", true},
		{"no nouns", "In The", "", false},
		{"verb and determiner", "Ran The", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatorWithoutTagger(t *testing.T) {
	_, ok := NewValidator(nil).Validate("John Smith")
	assert.False(t, ok)
}

func TestPattern(t *testing.T) {
	tests := map[string]string{
		"contact John Smith today":          "John Smith",
		"signed by Mary-Jane Watson Parker": "Mary-Jane Watson Parker",
		"Dr. Jones will see you":            "Dr. Jones",
		"all lower case here":               "",
	}
	for text, want := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, want, Pattern.FindString(text))
		})
	}
}
