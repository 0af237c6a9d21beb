// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

var (
	// AustraliaTFNPattern matches eight or nine digit tax file numbers,
	// optionally grouped in threes.
	AustraliaTFNPattern = regexp.MustCompile(`\b\d{3}[ -]?\d{3}[ -]?\d{2,3}\b`)

	// AustraliaMedicarePattern matches a ten digit Medicare card number with
	// an optional individual reference number.
	AustraliaMedicarePattern = regexp.MustCompile(`\b[2-6]\d{3} ?\d{5} ?\d(?:[ /]?[1-9])?\b`)
)

var (
	tfnWeights9      = []int{1, 4, 3, 7, 5, 8, 6, 9, 10}
	tfnWeights8      = []int{10, 7, 8, 4, 6, 3, 5, 1}
	medicareWeights  = []int{1, 3, 7, 9, 1, 3, 7, 9}
	medicareCheckPos = 8
)

// AustraliaTFN validates Australian tax file numbers.
type AustraliaTFN struct{}

// Validate implements detector.Validator. The value is reported in groups of
// three, for example "123 456 782".
func (AustraliaTFN) Validate(candidate string) (string, bool) {
	digits := stripSeparators(candidate)
	if !checksum.IsDigits(digits) {
		return "", false
	}

	var weights []int
	switch len(digits) {
	case 9:
		weights = tfnWeights9
	case 8:
		weights = tfnWeights8
	default:
		return "", false
	}
	if checksum.Weighted(digits, weights)%11 != 0 {
		return "", false
	}
	return digits[:3] + " " + digits[3:6] + " " + digits[6:], true
}

// AustraliaMedicare validates Australian Medicare card numbers.
type AustraliaMedicare struct{}

// Validate implements detector.Validator. The value is reported as digits.
func (AustraliaMedicare) Validate(candidate string) (string, bool) {
	digits := stripSeparators(candidate)
	if (len(digits) != 10 && len(digits) != 11) || !checksum.IsDigits(digits) {
		return "", false
	}
	if digits[0] < '2' || digits[0] > '6' {
		return "", false
	}
	// issue number
	if digits[9] == '0' {
		return "", false
	}
	if checksum.Weighted(digits, medicareWeights)%10 != int(digits[medicareCheckPos]-'0') {
		return "", false
	}
	return digits, true
}
