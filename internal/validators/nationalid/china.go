// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

// ChinaPattern matches an 18-character resident identity number: region,
// birth date in the 1900s or 2000s, sequence and check character.
var ChinaPattern = regexp.MustCompile(`\b\d{6}(?:19|20)\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{3}[\dXx]\b`)

// China validates PRC resident identity numbers (GB 11643).
type China struct{}

// Validate implements detector.Validator. The value is reported upper-cased.
func (China) Validate(candidate string) (string, bool) {
	id := stripSeparators(candidate)
	if len(id) != 18 || !checksum.IsDigits(id[:17]) {
		return "", false
	}

	// The first 17 digits read as a base-13 number, reduced mod 11.
	v := 0
	for i := 0; i < 17; i++ {
		v = (v*13 + int(id[i]-'0')) % 11
	}
	check := ((1-2*v)%11 + 11) % 11

	want := byte('0' + check)
	if check == 10 {
		want = 'X'
	}
	if id[17] != want {
		return "", false
	}
	return id, true
}
