// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package dea validates US Drug Enforcement Administration registration
// numbers.
package dea

import (
	"regexp"
	"strings"

	"pii-recognition/internal/validators/checksum"
)

// Pattern matches a registrant type letter, the first letter of the
// registrant's name (or 9), and seven digits.
var Pattern = regexp.MustCompile(`\b[A-Z][A-Z9]\d{7}\b`)

// Validator accepts DEA numbers whose last digit equals the last digit of
// (d1+d3+d5) + 2*(d2+d4+d6).
type Validator struct{}

// NewValidator creates a DEA validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.Validator.
func (v *Validator) Validate(candidate string) (string, bool) {
	dea := strings.ToUpper(strings.TrimSpace(candidate))
	if len(dea) != 9 {
		return "", false
	}
	digits := dea[2:]
	if !checksum.IsDigits(digits) {
		return "", false
	}

	odd := checksum.Weighted(digits, []int{1, 0, 1, 0, 1, 0})
	even := checksum.Weighted(digits, []int{0, 1, 0, 1, 0, 1})
	check := (odd + 2*even) % 10
	if int(digits[6]-'0') != check {
		return "", false
	}
	return dea, true
}
