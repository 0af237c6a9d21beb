// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ImageMetadataPreprocessor turns the EXIF tags of an image into text, one
// "Tag: value" row per tag in tag-name order.
type ImageMetadataPreprocessor struct{}

// NewImageMetadataPreprocessor creates a new image metadata preprocessor
func NewImageMetadataPreprocessor() *ImageMetadataPreprocessor {
	return &ImageMetadataPreprocessor{}
}

// GetName returns the name of this preprocessor
func (ip *ImageMetadataPreprocessor) GetName() string {
	return "Image Metadata Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (ip *ImageMetadataPreprocessor) GetSupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".tif", ".tiff"}
}

// CanProcess checks if this preprocessor can handle the given file
func (ip *ImageMetadataPreprocessor) CanProcess(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range ip.GetSupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// exifWalker implements the Walker interface to extract all EXIF tags
type exifWalker struct {
	tags map[string]string
}

// Walk implements the Walker interface
func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag != nil {
		w.tags[string(name)] = strings.Trim(tag.String(), `"`)
	}
	return nil
}

// Process decodes the EXIF block and renders its tags
func (ip *ImageMetadataPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	f, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("no EXIF data found: %w", err)
	}

	walker := &exifWalker{tags: make(map[string]string)}
	if err := x.Walk(walker); err != nil {
		return nil, fmt.Errorf("error reading EXIF tags: %w", err)
	}
	if lat, long, err := x.LatLong(); err == nil {
		walker.tags["GPSPosition"] = fmt.Sprintf("%.6f, %.6f", lat, long)
	}

	return newContent(filePath, renderTags(walker.tags), "Image Metadata", "image_metadata"), nil
}

// renderTags formats tags as sorted "Name: value" lines
func renderTags(tags map[string]string) string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = name + ": " + tags[name]
	}
	return strings.Join(lines, "\n")
}
