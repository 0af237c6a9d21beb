// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

// SouthKoreaPattern matches a resident registration number, YYMMDD followed
// by a gender/century digit and six more digits.
var SouthKoreaPattern = regexp.MustCompile(`\b\d{6}-?[1-8]\d{6}\b`)

var rrnWeights = []int{2, 3, 4, 5, 6, 7, 8, 9, 2, 3, 4, 5}

// SouthKorea validates South Korean resident registration numbers.
type SouthKorea struct{}

// Validate implements detector.Validator. The value is reported as
// "YYMMDD-NNNNNNN".
func (SouthKorea) Validate(candidate string) (string, bool) {
	digits := stripSeparators(candidate)
	if len(digits) != 13 || !checksum.IsDigits(digits) {
		return "", false
	}
	check := (11 - checksum.Weighted(digits, rrnWeights)%11) % 10
	if int(digits[12]-'0') != check {
		return "", false
	}
	return digits[:6] + "-" + digits[6:], true
}
