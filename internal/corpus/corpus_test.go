// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-recognition/internal/validators/personname"
	"pii-recognition/internal/validators/phone"
)

type nounTagger struct{}

func (nounTagger) Tag(sentence string) []personname.TaggedToken {
	var out []personname.TaggedToken
	for _, tok := range strings.Fields(sentence) {
		out = append(out, personname.TaggedToken{Token: tok, Tag: "NNP"})
	}
	return out
}

func TestNewRejectsInvalidTables(t *testing.T) {
	p := regexp.MustCompile(`x`)

	tests := []struct {
		name       string
		categories []Category
		wantErr    string
	}{
		{"duplicate", []Category{{Name: "a", Pattern: p}, {Name: "a", Pattern: p}}, "duplicate category name: a"},
		{"no pattern", []Category{{Name: "a"}}, "category a has no pattern"},
		{"no name", []Category{{Pattern: p}}, "has no name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.categories...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default(Options{AreaCodes: phone.AreaCodes{"212": {}}, Tagger: nounTagger{}})

	names := c.Names()
	assert.Equal(t, "gender", names[0])
	assert.Equal(t, "singapore_nric", names[len(names)-1])
	assert.Contains(t, names, "person_name")
	assert.Equal(t, 30, c.Len())

	// The two partitions cover the corpus exactly once.
	assert.Equal(t, c.Len(), len(c.Structural())+len(c.Verified()))
	for _, cat := range c.Structural() {
		assert.Nil(t, cat.Validator, cat.Name)
	}
	for _, cat := range c.Verified() {
		assert.NotNil(t, cat.Validator, cat.Name)
	}

	email, ok := c.Get("email")
	require.True(t, ok)
	assert.True(t, email.Structural())
	assert.NotEmpty(t, email.Description)
}

func TestDefaultWithoutTagger(t *testing.T) {
	c := Default(Options{})
	_, ok := c.Get("person_name")
	assert.False(t, ok)
	assert.Equal(t, 29, c.Len())
}

func TestSelect(t *testing.T) {
	c := Default(Options{})

	all, err := c.Select([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, c.Len(), all.Len())

	sub, err := c.Select([]string{"ssn", " EMAIL ", "gender"})
	require.NoError(t, err)
	assert.Equal(t, []string{"gender", "email", "ssn"}, sub.Names())

	_, err = c.Select([]string{"ssn", "nope", "bogus"})
	require.Error(t, err)
	assert.Equal(t, "unknown categories: bogus, nope", err.Error())
}

func TestParseNames(t *testing.T) {
	assert.Equal(t, []string{"ssn", "email"}, ParseNames("ssn, email,,"))
	assert.Nil(t, ParseNames(""))
}

func TestStructuralPatterns(t *testing.T) {
	tests := []struct {
		pattern *regexp.Regexp
		text    string
		want    string
	}{
		{emailPattern, "mail jane.doe@example.com now", "jane.doe@example.com"},
		{emailPattern, "Mail John@Mail.Example.ORG", "John@Mail.Example.ORG"},
		{usPassportPattern, "passport C12345678", "C12345678"},
		{germanPassportPattern, "pass C01X00T47", "C01X00T47"},
		{germanPassportPattern, "pass A01X00T47", ""},
		{streetAddressPattern, "fake ssn 775329234 3 castle hill close", "3 castle hill close"},
		{streetAddressPattern, "lives at 1600 Pennsylvania Avenue NW", "1600 Pennsylvania Avenue"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.FindString(tt.text))
		})
	}
}
