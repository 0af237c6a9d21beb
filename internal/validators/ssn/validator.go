// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import (
	"regexp"
	"strconv"

	"pii-recognition/internal/validators/checksum"
)

// Pattern matches nine digits written as AAA-GG-SSSS, AAA GG SSSS or plain.
var Pattern = regexp.MustCompile(`\b\d{3}[- ]?\d{2}[- ]?\d{4}\b`)

// maxArea is the first area number that has never been issued.
const maxArea = 772

// Validator accepts US Social Security Numbers whose area, group and serial
// fields are all in issued ranges.
type Validator struct{}

// NewValidator creates an SSN validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.Validator. The candidate is reported as-is.
func (v *Validator) Validate(candidate string) (string, bool) {
	if !v.isValidSSN(v.cleanSSN(candidate)) {
		return "", false
	}
	return candidate, true
}

func (v *Validator) cleanSSN(ssn string) string {
	return checksum.Digits(ssn)
}

func (v *Validator) isValidSSN(ssn string) bool {
	if len(ssn) != 9 {
		return false
	}

	if !v.isValidAreaNumber(ssn[0:3]) {
		return false
	}

	// Group number (middle 2 digits)
	if ssn[3:5] == "00" {
		return false
	}

	// Serial number (last 4 digits)
	return ssn[5:9] != "0000"
}

func (v *Validator) isValidAreaNumber(area string) bool {
	if area == "000" || area == "666" {
		return false
	}
	areaNum, err := strconv.Atoi(area)
	if err != nil {
		return false
	}
	return areaNum < maxArea
}
