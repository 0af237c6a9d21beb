// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import (
	"regexp"
	"strconv"
	"strings"
)

// FrancePattern matches a 15 character NIR: sex, year, month, department
// (including Corsica 2A/2B), commune, order and the two digit key.
var FrancePattern = regexp.MustCompile(`\b[12] ?\d{2} ?\d{2} ?(?:\d{2}|2[AB]) ?\d{3} ?\d{3} ?\d{2}\b`)

// FranceNIR validates French social security numbers.
type FranceNIR struct{}

// Validate implements detector.Validator. The value is reported without
// spaces.
func (FranceNIR) Validate(candidate string) (string, bool) {
	nir := stripSeparators(candidate)
	if len(nir) != 15 {
		return "", false
	}

	body := nir[:13]
	switch nir[5:7] {
	case "2A":
		body = body[:5] + "19" + body[7:]
	case "2B":
		body = body[:5] + "18" + body[7:]
	}
	if strings.ContainsAny(body, "AB") {
		return "", false
	}

	n, err := strconv.ParseUint(body, 10, 64)
	if err != nil {
		return "", false
	}
	key, err := strconv.Atoi(nir[13:])
	if err != nil {
		return "", false
	}
	if uint64(key) != 97-n%97 {
		return "", false
	}
	return nir, true
}
