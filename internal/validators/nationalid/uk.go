// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

// UKNHSPattern matches a ten digit NHS number, optionally grouped 3-3-4.
var UKNHSPattern = regexp.MustCompile(`\b\d{3}[ -]?\d{3}[ -]?\d{4}\b`)

var nhsWeights = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}

// UKNHS validates NHS numbers for England, Wales and the Isle of Man.
type UKNHS struct{}

// Validate implements detector.Validator.
func (UKNHS) Validate(candidate string) (string, bool) {
	digits := stripSeparators(candidate)
	if len(digits) != 10 || !checksum.IsDigits(digits) {
		return "", false
	}
	check, ok := checksum.Mod11Complement(checksum.Weighted(digits, nhsWeights))
	if !ok || int(digits[9]-'0') != check {
		return "", false
	}
	return candidate, true
}
