// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalMAC(t *testing.T) {
	tests := []struct {
		candidate string
		valid     bool
	}{
		{"02:00:00:00:00:00", true},
		{"0A-1B-2C-3D-4E-5F", true},
		{"fe:ed:fa:ce:be:ef", true},
		{"00:00:00:00:00:00", false},
		{"00:1A:2B:3C:4D:5E", false},
		{"zz:00:00:00:00:00", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			got, ok := LocalMAC{}.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
			if ok {
				assert.Equal(t, tt.candidate, got)
			}
		})
	}
}

func TestIPv6(t *testing.T) {
	tests := []struct {
		candidate string
		want      string
		valid     bool
	}{
		{"2001:0db8:0000:0000:0000:ff00:0042:8329", "2001:db8::ff00:42:8329", true},
		{"fe80::1", "fe80::1", true},
		{"::1", "::1", true},
		{"02:00:00:00:00:00", "", false},
		{"12:30:45", "", false},
		{"1.2.3.4", "", false},
		{"::", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			got, ok := IPv6{}.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatterns(t *testing.T) {
	assert.Equal(t, "02:00:00:00:00:00", MACPattern.FindString("hw 02:00:00:00:00:00 up"))
	assert.Equal(t, "192.168.1.254", IPv4Pattern.FindString("host 192.168.1.254 ok"))
	assert.Empty(t, IPv4Pattern.FindString("version 999.1.1.1"))
	assert.Equal(t, "fe80::1", IPv6Pattern.FindString("link fe80::1 up"))
}
