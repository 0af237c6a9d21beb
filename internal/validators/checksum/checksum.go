// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package checksum holds the digit arithmetic shared by the validators.
package checksum

// Digits returns s with every non-ASCII-digit character removed.
func Digits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Luhn reports whether a digit string passes the mod 10 Luhn check.
// The caller must pass digits only.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	isDouble := false

	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')

		if isDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		isDouble = !isDouble
	}

	return sum%10 == 0
}

// Weighted returns the sum of digits[i]*weights[i] over the shorter of the
// two. The caller must pass digits only.
func Weighted(digits string, weights []int) int {
	sum := 0
	for i := 0; i < len(digits) && i < len(weights); i++ {
		sum += int(digits[i]-'0') * weights[i]
	}
	return sum
}

// Mod11Complement returns 11 - sum%11 folded so that 11 becomes 0. A result
// of 10 has no single-digit representation and is reported as invalid.
func Mod11Complement(sum int) (int, bool) {
	check := 11 - sum%11
	if check == 11 {
		check = 0
	}
	return check, check != 10
}

// Same reports whether every character of s is identical.
func Same(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
