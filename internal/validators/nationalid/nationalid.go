// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package nationalid validates national identity numbers by their published
// check digit rules.
package nationalid

import "strings"

// stripSeparators removes spaces, dashes, dots, slashes and parentheses and
// upper-cases the rest.
func stripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '-', '.', '/', '(', ')', '+', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// validDate reports whether month and day are plausible calendar values.
// The year is not checked.
func validDate(month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
