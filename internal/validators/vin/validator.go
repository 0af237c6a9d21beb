// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package vin validates ISO 3779 vehicle identification numbers.
package vin

import (
	"regexp"
	"strings"
)

// Pattern matches 17 characters from the VIN alphabet (no I, O or Q).
var Pattern = regexp.MustCompile(`\b[A-HJ-NPR-Z0-9]{17}\b`)

var weights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// checkPosition is the index of the check digit.
const checkPosition = 8

// Validator accepts VINs whose ninth character matches the weighted mod 11
// check digit, with 10 written as X.
type Validator struct{}

// NewValidator creates a VIN validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.Validator.
func (v *Validator) Validate(candidate string) (string, bool) {
	vin := strings.ToUpper(candidate)
	if len(vin) != 17 {
		return "", false
	}

	sum := 0
	for i := 0; i < len(vin); i++ {
		value, ok := transliterate(vin[i])
		if !ok {
			return "", false
		}
		sum += value * weights[i]
	}

	expected := byte('0' + sum%11)
	if sum%11 == 10 {
		expected = 'X'
	}
	if vin[checkPosition] != expected {
		return "", false
	}
	return vin, true
}

// transliterate maps a VIN character to its numeric value.
func transliterate(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'H':
		return int(c-'A') + 1, true
	case c >= 'J' && c <= 'N':
		return int(c-'J') + 1, true
	case c == 'P':
		return 7, true
	case c == 'R':
		return 9, true
	case c >= 'S' && c <= 'Z':
		return int(c-'S') + 2, true
	default:
		return 0, false
	}
}
