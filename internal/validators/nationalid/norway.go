// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

// NorwayPattern matches DDMMYY followed by a five digit personal number.
var NorwayPattern = regexp.MustCompile(`\b\d{6} ?\d{5}\b`)

var (
	fnrK1Weights = []int{3, 7, 6, 1, 8, 9, 4, 5, 2}
	fnrK2Weights = []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// dNumberOffset is added to the day of birth in D-numbers.
const dNumberOffset = 40

// Norway validates Norwegian fødselsnummer and D-numbers.
type Norway struct{}

// Validate implements detector.Validator.
func (Norway) Validate(candidate string) (string, bool) {
	digits := stripSeparators(candidate)
	if len(digits) != 11 || !checksum.IsDigits(digits) {
		return "", false
	}

	day, month := atoi2(digits[0:2]), atoi2(digits[2:4])
	if day > dNumberOffset {
		day -= dNumberOffset
	}
	if !validDate(month, day) {
		return "", false
	}

	k1, ok := checksum.Mod11Complement(checksum.Weighted(digits, fnrK1Weights))
	if !ok || int(digits[9]-'0') != k1 {
		return "", false
	}
	k2, ok := checksum.Mod11Complement(checksum.Weighted(digits, fnrK2Weights))
	if !ok || int(digits[10]-'0') != k2 {
		return "", false
	}
	return digits, true
}
