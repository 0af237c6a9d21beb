// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package tagger provides a lightweight rule-based part-of-speech tagger
// producing Penn Treebank tags. It knows the closed word classes and falls
// back to capitalization and suffix rules for open classes, which is enough
// to separate name parts from function words in short candidates.
package tagger

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"pii-recognition/internal/validators/personname"
)

var lexicon = map[string]string{}

func init() {
	classes := map[string][]string{
		"DT":   {"a", "an", "the", "this", "that", "these", "those", "each", "every", "some", "any", "no", "all", "another"},
		"IN":   {"in", "on", "at", "of", "for", "with", "by", "from", "into", "about", "after", "before", "under", "over", "between", "through", "during", "without", "within", "since", "until", "upon", "near", "per", "via", "if", "because", "as"},
		"TO":   {"to"},
		"CC":   {"and", "or", "but", "nor", "yet", "so", "plus"},
		"PRP":  {"i", "you", "he", "she", "it", "we", "they", "me", "him", "us", "them"},
		"PRP$": {"my", "your", "his", "her", "its", "our", "their"},
		"WP":   {"who", "what", "whom", "which"},
		"WRB":  {"when", "where", "why", "how"},
		"MD":   {"will", "would", "can", "could", "should", "may", "might", "must", "shall"},
		"VBZ":  {"is", "has", "does"},
		"VBP":  {"are", "am", "have", "do"},
		"VBD":  {"was", "were", "had", "did", "said"},
		"VB":   {"be"},
		"VBN":  {"been"},
		"VBG":  {"being"},
		"RB":   {"not", "very", "also", "just", "only", "then", "here", "now", "never", "always"},
		"EX":   {"there"},
		"UH":   {"hello", "hi", "yes", "ok", "okay", "dear"},
	}
	for tag, words := range classes {
		for _, w := range words {
			lexicon[w] = tag
		}
	}
}

// Tagger is the default rule-based tagger.
type Tagger struct{}

// New creates a tagger.
func New() *Tagger {
	return &Tagger{}
}

// Tag implements personname.Tagger.
func (t *Tagger) Tag(sentence string) []personname.TaggedToken {
	tokens := Tokenize(sentence)
	out := make([]personname.TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, personname.TaggedToken{Token: tok, Tag: tagOf(tok)})
	}
	return out
}

func tagOf(tok string) string {
	lower := strings.ToLower(tok)
	if tag, ok := lexicon[lower]; ok {
		return tag
	}

	first, _ := utf8.DecodeRuneInString(tok)
	switch {
	case isPunct(tok):
		return tok
	case isNumber(tok):
		return "CD"
	case unicode.IsUpper(first):
		return "NNP"
	case strings.HasSuffix(lower, "ly"):
		return "RB"
	case strings.HasSuffix(lower, "ing"):
		return "VBG"
	case strings.HasSuffix(lower, "ed"):
		return "VBD"
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		return "NNS"
	default:
		return "NN"
	}
}

// Tokenize splits a sentence on whitespace and peels trailing punctuation
// off each word. Short capitalized abbreviations such as "Dr." and "J." keep
// their period.
func Tokenize(sentence string) []string {
	var tokens []string
	for _, word := range strings.Fields(sentence) {
		var trailing []string
		for len(word) > 1 {
			last := word[len(word)-1]
			if !strings.ContainsRune(".,;:!?)\"'", rune(last)) {
				break
			}
			if last == '.' && isAbbreviation(word) {
				break
			}
			trailing = append([]string{string(last)}, trailing...)
			word = word[:len(word)-1]
		}
		for len(word) > 1 && strings.ContainsRune("(\"'", rune(word[0])) {
			tokens = append(tokens, string(word[0]))
			word = word[1:]
		}
		tokens = append(tokens, word)
		tokens = append(tokens, trailing...)
	}
	return tokens
}

func isAbbreviation(word string) bool {
	body := strings.TrimSuffix(word, ".")
	if body == "" || len(body) > 3 || strings.Contains(body, ".") {
		return false
	}
	first, _ := utf8.DecodeRuneInString(body)
	return unicode.IsUpper(first)
}

func isPunct(tok string) bool {
	for _, r := range tok {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

func isNumber(tok string) bool {
	hasDigit := false
	for _, r := range tok {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '.' || r == ',' || r == '-':
		default:
			return false
		}
	}
	return hasDigit
}
