// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"pii-recognition/internal/validators/checksum"
)

//go:embed areacodes.txt
var embeddedAreaCodes string

// AreaCodeLookup answers whether a three-digit area code is in service.
type AreaCodeLookup interface {
	Contains(code string) bool
}

// AreaCodes is a set of area codes.
type AreaCodes map[string]struct{}

// Contains implements AreaCodeLookup.
func (a AreaCodes) Contains(code string) bool {
	_, ok := a[code]
	return ok
}

// Len returns the number of codes in the set.
func (a AreaCodes) Len() int {
	return len(a)
}

// DefaultAreaCodes returns the built-in table of US area codes.
func DefaultAreaCodes() AreaCodes {
	codes, err := ParseAreaCodes(strings.NewReader(embeddedAreaCodes))
	if err != nil {
		panic(fmt.Sprintf("phone: embedded area code table is invalid: %v", err))
	}
	return codes
}

// ParseAreaCodes reads one three-digit code per line. Blank lines and lines
// starting with '#' are ignored. Anything after the first field on a line is
// ignored, so "212 New York" is accepted.
func ParseAreaCodes(r io.Reader) (AreaCodes, error) {
	codes := make(AreaCodes)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		field := strings.Fields(text)[0]
		if len(field) != 3 || !checksum.IsDigits(field) {
			return nil, fmt.Errorf("line %d: invalid area code %q", line, field)
		}
		codes[field] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

// LoadAreaCodesFile reads an area code table from path.
func LoadAreaCodesFile(path string) (AreaCodes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open area code file: %w", err)
	}
	defer f.Close()

	codes, err := ParseAreaCodes(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse area code file %s: %w", path, err)
	}
	return codes, nil
}
