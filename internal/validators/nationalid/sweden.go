// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

// SwedenPattern matches a personnummer with an optional century prefix.
var SwedenPattern = regexp.MustCompile(`\b(?:19|20)?\d{6}[-+]?\d{4}\b`)

// coordinationOffset is added to the day of birth in samordningsnummer.
const coordinationOffset = 60

// Sweden validates Swedish personal identity and coordination numbers.
type Sweden struct{}

// Validate implements detector.Validator. The value is reported as
// "YYMMDD-NNNC".
func (Sweden) Validate(candidate string) (string, bool) {
	digits := stripSeparators(candidate)
	if !checksum.IsDigits(digits) {
		return "", false
	}
	if len(digits) == 12 {
		digits = digits[2:]
	}
	if len(digits) != 10 {
		return "", false
	}

	month, day := atoi2(digits[2:4]), atoi2(digits[4:6])
	if day > coordinationOffset {
		day -= coordinationOffset
	}
	if !validDate(month, day) {
		return "", false
	}
	if !checksum.Luhn(digits) {
		return "", false
	}
	return digits[:6] + "-" + digits[6:], true
}
