// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// errBinaryFile is returned for files that look like binary data
var errBinaryFile = errors.New("file appears to be binary")

// PlainTextPreprocessor passes text files through unchanged
type PlainTextPreprocessor struct{}

// NewPlainTextPreprocessor creates a new plain text preprocessor
func NewPlainTextPreprocessor() *PlainTextPreprocessor {
	return &PlainTextPreprocessor{}
}

// GetName returns the name of this preprocessor
func (ptp *PlainTextPreprocessor) GetName() string {
	return "Plain Text Preprocessor"
}

// GetSupportedExtensions returns nil: any file not claimed by another
// preprocessor is read as text.
func (ptp *PlainTextPreprocessor) GetSupportedExtensions() []string {
	return nil
}

// CanProcess checks if this preprocessor can handle the given file
func (ptp *PlainTextPreprocessor) CanProcess(filePath string) bool {
	return true
}

// Process reads the file content as text
func (ptp *PlainTextPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if isBinary(data) {
		return nil, errBinaryFile
	}

	content := string(data)
	if !utf8.ValidString(content) {
		content = string(bytes.ToValidUTF8(data, []byte("\uFFFD")))
	}
	return newContent(filePath, content, "Plain Text", "plaintext"), nil
}

// isBinary checks the first 512 bytes for NUL bytes
func isBinary(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.IndexByte(head, 0) >= 0
}
