// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"

	"pii-recognition/internal/validators/checksum"
)

// BrazilCPFPattern matches an 11 digit CPF, plain or as NNN.NNN.NNN-NN.
var BrazilCPFPattern = regexp.MustCompile(`\b\d{3}\.?\d{3}\.?\d{3}-?\d{2}\b`)

var (
	cpfD1Weights = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfD2Weights = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
)

// BrazilCPF validates Brazilian individual taxpayer numbers.
type BrazilCPF struct{}

// Validate implements detector.Validator. The value is reported as
// "NNN.NNN.NNN-NN".
func (BrazilCPF) Validate(candidate string) (string, bool) {
	digits := stripSeparators(candidate)
	if len(digits) != 11 || !checksum.IsDigits(digits) {
		return "", false
	}
	// Repeated digits pass both checks but are never issued.
	if checksum.Same(digits) {
		return "", false
	}

	if cpfDigit(digits, cpfD1Weights) != int(digits[9]-'0') {
		return "", false
	}
	if cpfDigit(digits, cpfD2Weights) != int(digits[10]-'0') {
		return "", false
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:], true
}

func cpfDigit(digits string, weights []int) int {
	return (checksum.Weighted(digits, weights) * 10 % 11) % 10
}
