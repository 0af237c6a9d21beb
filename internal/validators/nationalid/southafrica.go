// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

// SouthAfricaPattern matches 13 consecutive digits.
var SouthAfricaPattern = regexp.MustCompile(`\b\d{13}\b`)

// SouthAfrica validates South African identity numbers: YYMMDD birth date,
// gender sequence, citizenship digit, a legacy digit and a Luhn check digit.
type SouthAfrica struct{}

// Validate implements detector.Validator.
func (SouthAfrica) Validate(candidate string) (string, bool) {
	digits := stripSeparators(candidate)
	if len(digits) != 13 || !checksum.IsDigits(digits) {
		return "", false
	}
	if !validDate(atoi2(digits[2:4]), atoi2(digits[4:6])) {
		return "", false
	}
	// 0 citizen, 1 permanent resident, 2 refugee
	if digits[10] > '2' {
		return "", false
	}
	if !checksum.Luhn(digits) {
		return "", false
	}
	return digits, true
}
