// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"
	"strconv"
)

// SpainPattern matches a DNI (eight digits) or NIE (X, Y or Z and seven
// digits) followed by the control letter.
var SpainPattern = regexp.MustCompile(`\b(?:\d{8}|[XYZ]\d{7})-?[A-Z]\b`)

const dniLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// SpainDNI validates Spanish DNI and NIE numbers.
type SpainDNI struct{}

// Validate implements detector.Validator. The value is reported without
// separators.
func (SpainDNI) Validate(candidate string) (string, bool) {
	id := stripSeparators(candidate)
	if len(id) != 9 {
		return "", false
	}

	number := id[:8]
	switch number[0] {
	case 'X':
		number = "0" + number[1:]
	case 'Y':
		number = "1" + number[1:]
	case 'Z':
		number = "2" + number[1:]
	}
	n, err := strconv.Atoi(number)
	if err != nil || n < 0 {
		return "", false
	}
	if id[8] != dniLetters[n%23] {
		return "", false
	}
	return id, true
}
