// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	units "github.com/docker/go-units"
	"go.uber.org/zap"

	"pii-recognition/internal/detector"
	"pii-recognition/internal/observability"
)

// ProcessedContent represents content that has been processed by a preprocessor
type ProcessedContent struct {
	// Original file information, empty for literal text
	OriginalPath string
	Filename     string

	// Extracted content
	Text string

	// Content metadata
	Format    string
	PageCount int
	LineCount int

	// Processing information
	ProcessorType string
}

// newContent fills in the derived fields of a ProcessedContent
func newContent(path, text, format, processorType string) *ProcessedContent {
	pc := &ProcessedContent{
		OriginalPath:  path,
		Text:          text,
		Format:        format,
		LineCount:     strings.Count(text, "\n") + 1,
		ProcessorType: processorType,
	}
	if path != "" {
		pc.Filename = filepath.Base(path)
	}
	return pc
}

// Preprocessor interface defines methods for preprocessing files
type Preprocessor interface {
	// CanProcess checks if this preprocessor can handle the given file
	CanProcess(filePath string) bool

	// Process extracts content from the file
	Process(filePath string) (*ProcessedContent, error)

	// GetName returns the name of this preprocessor
	GetName() string

	// GetSupportedExtensions returns the file extensions this preprocessor supports
	GetSupportedExtensions() []string
}

// Options limits what the preprocessors will read
type Options struct {
	// MaxBytes rejects input files larger than this; zero disables the check
	MaxBytes int64

	// MaxPDFPages caps the number of PDF pages extracted; zero means all
	MaxPDFPages int
}

// PreprocessorManager manages all available preprocessors
type PreprocessorManager struct {
	preprocessors []Preprocessor
	options       Options
	observer      *observability.StandardObserver
}

// NewPreprocessorManager creates a manager with the PDF, image and plain
// text preprocessors registered. Plain text is the fallback for any file the
// others do not claim.
func NewPreprocessorManager(options Options, observer *observability.StandardObserver) *PreprocessorManager {
	if observer == nil {
		observer = observability.Nop()
	}
	pm := &PreprocessorManager{options: options, observer: observer}
	pm.RegisterPreprocessor(NewPDFPreprocessor(options.MaxPDFPages))
	pm.RegisterPreprocessor(NewImageMetadataPreprocessor())
	pm.RegisterPreprocessor(NewPlainTextPreprocessor())
	return pm
}

// RegisterPreprocessor adds a preprocessor to the manager
func (pm *PreprocessorManager) RegisterPreprocessor(p Preprocessor) {
	pm.preprocessors = append(pm.preprocessors, p)
}

// GetPreprocessor returns the appropriate preprocessor for a file, or nil if none found
func (pm *PreprocessorManager) GetPreprocessor(filePath string) Preprocessor {
	for _, p := range pm.preprocessors {
		if p.CanProcess(filePath) {
			return p
		}
	}
	return nil
}

// ProcessFile checks the file against the size limit and extracts its text
// with the first preprocessor that claims it. Every failure is an input
// error carrying the path.
func (pm *PreprocessorManager) ProcessFile(filePath string) (*ProcessedContent, error) {
	finishTiming := pm.observer.StartTiming("preprocessors", "process_file", filePath)

	content, err := pm.processFile(filePath)
	if err != nil {
		finishTiming(false, zap.Error(err))
		return nil, err
	}
	finishTiming(true,
		zap.String("processor", content.ProcessorType),
		zap.Int("lines", content.LineCount))
	return content, nil
}

func (pm *PreprocessorManager) processFile(filePath string) (*ProcessedContent, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, detector.NewInputError("cannot read input file", filePath, err)
	}
	if info.IsDir() {
		return nil, detector.NewInputError("input is a directory", filePath, nil)
	}
	if pm.options.MaxBytes > 0 && info.Size() > pm.options.MaxBytes {
		msg := fmt.Sprintf("input file is %s, limit is %s",
			units.BytesSize(float64(info.Size())), units.BytesSize(float64(pm.options.MaxBytes)))
		return nil, detector.NewInputError(msg, filePath, nil)
	}

	p := pm.GetPreprocessor(filePath)
	if p == nil {
		return nil, detector.NewInputError("unsupported file type", filePath, nil)
	}
	content, err := p.Process(filePath)
	if err != nil {
		return nil, detector.NewInputError(fmt.Sprintf("%s failed", p.GetName()), filePath, err)
	}
	return content, nil
}

// Source yields the raw text to scan
type Source interface {
	Load(ctx context.Context) (*ProcessedContent, error)
}

// TextSource serves literal text given on the command line
type TextSource struct {
	Text string
}

// Load implements Source
func (s TextSource) Load(ctx context.Context) (*ProcessedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return newContent("", s.Text, "Literal Text", "literal"), nil
}

// FileSource reads a file through a PreprocessorManager
type FileSource struct {
	Path    string
	Manager *PreprocessorManager
}

// Load implements Source
func (s FileSource) Load(ctx context.Context) (*ProcessedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Manager.ProcessFile(s.Path)
}
