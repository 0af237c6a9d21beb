// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

var (
	// USPattern matches ten-digit North American numbers with an optional
	// leading country code and the usual separators.
	USPattern = regexp.MustCompile(`(?:\+?\b1[-.\s]?)?(?:\(\d{3}\)|\b\d{3})[-.\s/]?\d{3}[-.\s]?\d{4}\b`)

	// IntlPattern matches international numbers written as country and area
	// groups followed by a five-digit subscriber number.
	IntlPattern = regexp.MustCompile(`\+?\b(?:\d{2}[-.\s]?){1,3}\d{3}[-.\s]?\d{5}\b|\(?\b\d{3}\)?[-.\s/]{0,3}\d{3}[-.\s]?\d{5}\b`)
)

// tollFree lists the non-geographic toll-free area codes.
var tollFree = map[string]bool{
	"800": true, "833": true, "844": true, "855": true,
	"866": true, "877": true, "888": true,
}

// fictionalArea is reserved for fiction and never assigned.
const fictionalArea = "555"

// Validator accepts US phone numbers whose area code is geographic and in
// service according to the injected lookup.
type Validator struct {
	areaCodes AreaCodeLookup
}

// NewValidator creates a phone validator backed by lookup. A nil lookup uses
// the built-in table.
func NewValidator(lookup AreaCodeLookup) *Validator {
	if lookup == nil {
		lookup = DefaultAreaCodes()
	}
	return &Validator{areaCodes: lookup}
}

// Validate implements detector.Validator. Accepted numbers are reported as
// written in the text.
func (v *Validator) Validate(candidate string) (string, bool) {
	digits := v.cleanPhoneNumber(candidate)
	if len(digits) != 10 {
		return "", false
	}

	area, exchange, line := digits[0:3], digits[3:6], digits[6:10]
	if tollFree[area] || area == fictionalArea {
		return "", false
	}
	if v.isFictionalNumber(exchange, line) {
		return "", false
	}
	if !v.areaCodes.Contains(area) {
		return "", false
	}
	return candidate, true
}

// cleanPhoneNumber strips formatting and a leading country code 1.
func (v *Validator) cleanPhoneNumber(phone string) string {
	digits := checksum.Digits(phone)
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	return digits
}

// isFictionalNumber reports numbers in 555-0100 through 555-0199, which are
// reserved for fictional use in every area code.
func (v *Validator) isFictionalNumber(exchange, line string) bool {
	return exchange == fictionalArea && line >= "0100" && line <= "0199"
}
