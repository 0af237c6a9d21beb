// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package network validates hardware and IP addresses.
package network

import (
	"net/netip"
	"regexp"
	"strconv"
	"strings"
)

var (
	// MACPattern matches six colon or dash separated hex octets.
	MACPattern = regexp.MustCompile(`\b[0-9A-Fa-f]{2}(?:[:-][0-9A-Fa-f]{2}){5}\b`)

	// IPv4Pattern matches dotted quads with every octet in 0-255.
	IPv4Pattern = regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\b`)

	// IPv6Pattern is a loose match for colon-separated hex groups,
	// including "::" compression. It has no word boundaries, so callers
	// must reject matches embedded in identifiers.
	IPv6Pattern = regexp.MustCompile(`(?i)(?:[0-9a-f]{0,4}:){2,7}[0-9a-f]{0,4}`)
)

// localBit is the universal/local administration bit of the first octet.
const localBit = 0x02

// LocalMAC accepts MAC addresses whose first octet has the locally
// administered bit set.
type LocalMAC struct{}

// Validate implements detector.Validator.
func (LocalMAC) Validate(candidate string) (string, bool) {
	if len(candidate) < 2 {
		return "", false
	}
	octet, err := strconv.ParseUint(candidate[:2], 16, 8)
	if err != nil {
		return "", false
	}
	if octet&localBit == 0 {
		return "", false
	}
	return candidate, true
}

// IPv6 accepts candidates that parse as IPv6 addresses and reports them in
// canonical RFC 5952 form. A bare "::" is punctuation, not an address.
type IPv6 struct{}

// Validate implements detector.Validator.
func (IPv6) Validate(candidate string) (string, bool) {
	if !strings.ContainsAny(candidate, "0123456789abcdefABCDEF") {
		return "", false
	}
	addr, err := netip.ParseAddr(candidate)
	if err != nil || !addr.Is6() {
		return "", false
	}
	return addr.String(), true
}
