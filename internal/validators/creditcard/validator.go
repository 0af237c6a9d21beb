// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package creditcard

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

// Pattern matches 12 to 19 digits optionally grouped by spaces or dashes.
// It is deliberately looser than the card rules; Validator decides.
var Pattern = regexp.MustCompile(`\b(?:\d[ -]?){11,18}\d\b`)

// Validator accepts payment card numbers that start with a major industry
// identifier in {3, 4, 5, 6, 8}, have 12 to 19 digits and pass Luhn.
// The reported value is the digits only.
type Validator struct{}

// NewValidator creates a credit card validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.Validator.
func (v *Validator) Validate(candidate string) (string, bool) {
	digits := v.cleanCreditCardNumber(candidate)
	if !v.isValidLength(digits) || !v.hasCardPrefix(digits) {
		return "", false
	}
	if !checksum.Luhn(digits) {
		return "", false
	}
	return digits, true
}

func (v *Validator) cleanCreditCardNumber(number string) string {
	return checksum.Digits(number)
}

func (v *Validator) isValidLength(number string) bool {
	return len(number) >= 12 && len(number) <= 19
}

func (v *Validator) hasCardPrefix(number string) bool {
	switch number[0] {
	case '3', '4', '5', '6', '8':
		return true
	default:
		return false
	}
}
