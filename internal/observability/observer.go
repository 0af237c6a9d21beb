// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StandardObserver times operations and logs them with a run identifier
type StandardObserver struct {
	logger *zap.Logger
	runID  string
}

// NewStandardObserver creates an observer logging to logger. A nil logger
// discards everything.
func NewStandardObserver(logger *zap.Logger) *StandardObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()
	return &StandardObserver{
		logger: logger.With(zap.String("run_id", runID)),
		runID:  runID,
	}
}

// Nop returns an observer that logs nothing
func Nop() *StandardObserver {
	return NewStandardObserver(nil)
}

// Logger returns the run-scoped logger
func (o *StandardObserver) Logger() *zap.Logger {
	return o.logger
}

// RunID returns the identifier attached to every log entry of this run
func (o *StandardObserver) RunID() string {
	return o.runID
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, source string) func(success bool, fields ...zap.Field) {
	start := time.Now()

	return func(success bool, fields ...zap.Field) {
		all := append([]zap.Field{
			zap.String("component", component),
			zap.String("operation", operation),
			zap.Duration("duration", time.Since(start)),
			zap.Bool("success", success),
		}, fields...)
		if source != "" {
			all = append(all, zap.String("source", source))
		}

		if success {
			o.logger.Debug("operation completed", all...)
		} else {
			o.logger.Warn("operation failed", all...)
		}
	}
}
