// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "unicode/utf8"

const (
	// ContextWindow is the number of characters kept on each side of a match.
	ContextWindow = 20

	// ContextThreshold is the row length above which the context is windowed.
	// Rows at or below it are reported whole.
	ContextThreshold = 50
)

// ContextSnippet returns the text surrounding the span [start, end) of a row.
// Offsets and length are in characters.
func ContextSnippet(text string, length, start, end int) string {
	if length <= ContextThreshold {
		return text
	}
	lo := max(0, start-ContextWindow)
	hi := min(length, end+ContextWindow)
	if lo >= hi {
		return ""
	}
	if isASCII(text) {
		return text[lo:hi]
	}
	runes := []rune(text)
	hi = min(hi, len(runes))
	return string(runes[lo:hi])
}

// RuneOffsets converts byte offsets into text to character offsets.
func RuneOffsets(text string, byteStart, byteEnd int) (int, int) {
	if isASCII(text[:byteEnd]) {
		return byteStart, byteEnd
	}
	start := utf8.RuneCountInString(text[:byteStart])
	end := start + utf8.RuneCountInString(text[byteStart:byteEnd])
	return start, end
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
