// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

// HongKongPattern matches one or two letters, six digits and a check
// character that may be wrapped in parentheses.
var HongKongPattern = regexp.MustCompile(`\b[A-Z]{1,2}\d{6}(?:\([0-9A]\)|[0-9A]\b)`)

// hkSpace is the value of the implicit leading space on single-letter IDs.
const hkSpace = 36

// HongKong validates Hong Kong identity card numbers.
type HongKong struct{}

// Validate implements detector.Validator. The value is reported as
// "A123456(3)".
func (HongKong) Validate(candidate string) (string, bool) {
	id := stripSeparators(candidate)
	if len(id) < 8 || len(id) > 9 {
		return "", false
	}
	body, check := id[:len(id)-1], id[len(id)-1]
	letters, digits := body[:len(body)-6], body[len(body)-6:]
	if !checksum.IsDigits(digits) {
		return "", false
	}

	sum := 0
	switch len(letters) {
	case 1:
		if !isUpper(letters[0]) {
			return "", false
		}
		sum = hkSpace*9 + letterValue(letters[0])*8
	case 2:
		if !isUpper(letters[0]) || !isUpper(letters[1]) {
			return "", false
		}
		sum = letterValue(letters[0])*9 + letterValue(letters[1])*8
	default:
		return "", false
	}
	sum += checksum.Weighted(digits, []int{7, 6, 5, 4, 3, 2})

	var want byte
	switch r := sum % 11; r {
	case 0:
		want = '0'
	case 1:
		want = 'A'
	default:
		want = byte('0' + 11 - r)
	}
	if check != want {
		return "", false
	}
	return body + "(" + string(check) + ")", true
}

// letterValue maps A..Z to 10..35.
func letterValue(c byte) int {
	return int(c) - 55
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
