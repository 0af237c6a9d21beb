// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"errors"

	"pii-recognition/internal/detector"
)

// MemorySink accumulates findings into a detector.Result
type MemorySink struct {
	result detector.Result
}

// NewMemorySink creates an empty in-memory sink
func NewMemorySink() *MemorySink {
	return &MemorySink{result: detector.Result{}}
}

// Emit implements Sink
func (m *MemorySink) Emit(rf detector.RowFindings) error {
	m.result.Add(rf)
	return nil
}

// Close implements Sink
func (m *MemorySink) Close() error {
	return nil
}

// Result returns the accumulated findings
func (m *MemorySink) Result() detector.Result {
	return m.result
}

// Tee forwards every row to several sinks in order
type Tee []Sink

// Emit implements Sink. It stops at the first failing sink.
func (t Tee) Emit(rf detector.RowFindings) error {
	for _, s := range t {
		if err := s.Emit(rf); err != nil {
			return err
		}
	}
	return nil
}

// Close implements Sink. Every sink is closed even if one fails.
func (t Tee) Close() error {
	var errs []error
	for _, s := range t {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
