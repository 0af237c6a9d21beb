// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package demographic recognizes ages and genders.
package demographic

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// GenderPattern matches gender words regardless of case.
	GenderPattern = regexp.MustCompile(`(?i)\b(?:male|female|man|woman|girl|boy)\b`)

	// AgePattern matches ages stated as "age 42", "aged: 42", "42 years old"
	// or "42 y/o".
	AgePattern = regexp.MustCompile(`(?i)\b(?:aged?\s*:?\s*\d{1,3}|\d{1,3}\s*(?:years?|yrs?)[\s-]*old|\d{1,3}\s*y/o)\b`)

	number = regexp.MustCompile(`\d+`)
)

// MaxAge is the first age that is rejected as implausible.
const MaxAge = 111

const (
	Female = "Female"
	Male   = "Male"
)

var genders = map[string]string{
	"girl":   Female,
	"woman":  Female,
	"female": Female,
	"boy":    Male,
	"man":    Male,
	"male":   Male,
}

// Gender normalizes gender words to Female or Male.
type Gender struct{}

// NewGender creates a gender validator.
func NewGender() *Gender {
	return &Gender{}
}

// Validate implements detector.Validator.
func (g *Gender) Validate(candidate string) (string, bool) {
	// A Caser is stateful and must not be shared between scan workers.
	word := cases.Fold().String(strings.TrimSpace(candidate))
	value, ok := genders[word]
	return value, ok
}

// Age accepts stated ages below MaxAge.
type Age struct{}

// Validate implements detector.Validator. The candidate is reported as-is.
func (Age) Validate(candidate string) (string, bool) {
	digits := number.FindString(candidate)
	if digits == "" {
		return "", false
	}
	age, err := strconv.Atoi(digits)
	if err != nil || age >= MaxAge {
		return "", false
	}
	return candidate, true
}
