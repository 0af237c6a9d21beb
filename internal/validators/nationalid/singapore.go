// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

// SingaporePattern matches an NRIC or FIN: prefix letter, seven digits and
// the check letter.
var SingaporePattern = regexp.MustCompile(`\b[STFG]\d{7}[A-Z]\b`)

var nricWeights = []int{2, 7, 6, 5, 4, 3, 2}

const (
	citizenLetters   = "JZIHGFEDCBA" // S and T
	foreignerLetters = "XWUTRQPNMLK" // F and G
	centuryOffset    = 4             // T and G, born in 2000 or later
)

// Singapore validates Singapore NRIC and FIN numbers.
type Singapore struct{}

// Validate implements detector.Validator.
func (Singapore) Validate(candidate string) (string, bool) {
	id := stripSeparators(candidate)
	if len(id) != 9 || !checksum.IsDigits(id[1:8]) {
		return "", false
	}

	sum := checksum.Weighted(id[1:8], nricWeights)
	var table string
	switch id[0] {
	case 'S':
		table = citizenLetters
	case 'T':
		table = citizenLetters
		sum += centuryOffset
	case 'F':
		table = foreignerLetters
	case 'G':
		table = foreignerLetters
		sum += centuryOffset
	default:
		return "", false
	}
	if id[8] != table[sum%11] {
		return "", false
	}
	return id, true
}
