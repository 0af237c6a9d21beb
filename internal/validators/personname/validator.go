// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"regexp"
	"strings"
)

// Pattern matches two or three capitalized words, each optionally
// hyphenated ("Mary-Jane") or abbreviated with a trailing period ("J.").
var Pattern = regexp.MustCompile(`\b[A-Z][a-z]*(?:-[A-Z][a-z]*)?\.?\s[A-Z][a-z]*(?:-[A-Z][a-z]*)?\.?(?:\s[A-Z][a-z]*(?:-[A-Z][a-z]*)?\.?)?`)

// TaggedToken is a token with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Token string
	Tag   string
}

// Tagger assigns part-of-speech tags to the tokens of a sentence, in order.
type Tagger interface {
	Tag(sentence string) []TaggedToken
}

// nounTags are the tags kept as name parts.
var nounTags = map[string]bool{
	"NN":   true,
	"NNS":  true,
	"NNP":  true,
	"NNPS": true,
}

// Validator keeps the noun tokens of a candidate, joined by single spaces.
// A candidate without nouns is rejected.
type Validator struct {
	tagger Tagger
}

// NewValidator creates a person name validator backed by tagger.
func NewValidator(tagger Tagger) *Validator {
	return &Validator{tagger: tagger}
}

// Validate implements detector.Validator.
func (v *Validator) Validate(candidate string) (string, bool) {
	if v.tagger == nil {
		return "", false
	}
	var parts []string
	for _, tt := range v.tagger.Tag(candidate) {
		if nounTags[tt.Tag] {
			parts = append(parts, tt.Token)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}
