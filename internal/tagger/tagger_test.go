// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pii-recognition/internal/validators/personname"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		sentence string
		want     []string
	}{
		{"John Smith", []string{"John", "Smith"}},
		{"Dr. Jones arrived.", []string{"Dr.", "Jones", "arrived", "."}},
		{"Hello, (Mary)!", []string{"Hello", ",", "(", "Mary", ")", "!"}},
		{"J. R. Tolkien", []string{"J.", "R.", "Tolkien"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.sentence))
		})
	}
}

func TestTag(t *testing.T) {
	got := New().Tag("The Doctor and John Smith said 42 things quickly")
	want := []personname.TaggedToken{
		{Token: "The", Tag: "DT"},
		{Token: "Doctor", Tag: "NNP"},
		{Token: "and", Tag: "CC"},
		{Token: "John", Tag: "NNP"},
		{Token: "Smith", Tag: "NNP"},
		{Token: "said", Tag: "VBD"},
		{Token: "42", Tag: "CD"},
		{Token: "things", Tag: "NNS"},
		{Token: "quickly", Tag: "RB"},
	}
	assert.Equal(t, want, got)
}

func TestTaggerDrivesNameValidator(t *testing.T) {
	v := personname.NewValidator(New())

	tests := []struct {
		candidate string
		want      string
		valid     bool
	}{
		{"John Smith", "John Smith", true},
		{"The Doctor", "Doctor", true},
		{"Dr. Jones", "Dr. Jones", true},
		{"In The", "", false},
		{"He Was", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			got, ok := v.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
