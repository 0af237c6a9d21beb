// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"pii-recognition/internal/corpus"
	"pii-recognition/internal/detector"
	"pii-recognition/internal/formatters"
	"pii-recognition/internal/observability"
	"pii-recognition/internal/parallel"
	"pii-recognition/internal/preprocessors"
	"pii-recognition/internal/scanner"
)

// ScanConfig holds configuration for scanning operations.
type ScanConfig struct {
	Source  preprocessors.Source
	Corpus  *corpus.Corpus
	Workers int

	// Sink receives rows with findings in ascending order and is closed
	// when the scan ends. It may be nil when only the returned result is
	// wanted.
	Sink formatters.Sink

	Observer *observability.StandardObserver
}

// ScanResult holds the results of a scanning operation.
type ScanResult struct {
	Result      detector.Result
	Diagnostics []detector.Diagnostic
	Content     *preprocessors.ProcessedContent

	Rows             int
	RowsWithFindings int
}

// Findings returns the total number of findings
func (r *ScanResult) Findings() int {
	return r.Result.Len()
}

// Scan loads the input, splits it into rows, scans them on a worker pool
// and streams every row with findings to the sink. Input and output
// failures are returned as detector.ScanError values; faults inside a
// single row are isolated and reported in ScanResult.Diagnostics.
func Scan(ctx context.Context, cfg ScanConfig) (*ScanResult, error) {
	observer := cfg.Observer
	if observer == nil {
		observer = observability.Nop()
	}
	if cfg.Corpus == nil {
		return nil, detector.NewConfigError("no categories to scan for", "", nil)
	}
	if cfg.Source == nil {
		return nil, detector.NewInputError("no input given", "", nil)
	}

	finishTiming := observer.StartTiming("core", "scan", "")

	content, err := cfg.Source.Load(ctx)
	if err != nil {
		finishTiming(false, zap.Error(err))
		return nil, err
	}
	if content.Text == "" {
		err := detector.NewInputError("input is empty", content.OriginalPath, nil)
		finishTiming(false, zap.Error(err))
		return nil, err
	}

	memory := formatters.NewMemorySink()
	sink := formatters.Tee{memory}
	if cfg.Sink != nil {
		sink = append(sink, cfg.Sink)
	}

	rows := detector.SplitRows(content.Text)
	result := &ScanResult{Content: content, Rows: len(rows)}

	s := scanner.New(cfg.Corpus, observer.Logger())
	pool := parallel.NewWorkerPool(cfg.Workers, observer)

	runErr := pool.Run(ctx, rows, s.ScanRow, func(r *parallel.Result) error {
		result.Diagnostics = append(result.Diagnostics, r.Diagnostics...)
		if r.Findings.Empty() {
			return nil
		}
		result.RowsWithFindings++
		if err := sink.Emit(r.Findings); err != nil {
			return detector.NewOutputError("cannot write results", "", err)
		}
		return nil
	})

	closeErr := sink.Close()
	if runErr == nil && closeErr != nil {
		runErr = detector.NewOutputError("cannot finish results", "", closeErr)
	}
	if runErr != nil {
		finishTiming(false, zap.Error(runErr))
		if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
			return nil, fmt.Errorf("scan cancelled: %w", runErr)
		}
		return nil, runErr
	}

	result.Result = memory.Result()
	finishTiming(true,
		zap.Int("rows", result.Rows),
		zap.Int("rows_with_findings", result.RowsWithFindings),
		zap.Int("findings", result.Findings()),
		zap.Int("diagnostics", len(result.Diagnostics)),
		zap.String("processor", content.ProcessorType))
	return result, nil
}
