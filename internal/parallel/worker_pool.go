// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pii-recognition/internal/detector"
	"pii-recognition/internal/observability"
)

// ScanFunc scans a single row. It must be safe for concurrent use.
type ScanFunc func(row detector.Row) (detector.RowFindings, []detector.Diagnostic)

// EmitFunc receives results in ascending row order. It is never called
// concurrently.
type EmitFunc func(result *Result) error

// Result represents the outcome of scanning one row
type Result struct {
	Findings    detector.RowFindings
	Diagnostics []detector.Diagnostic
	Duration    time.Duration

	seq int
}

// WorkerPool scans rows on a fixed number of goroutines and re-sequences the
// results so they are emitted in input order. At most Window rows are in
// flight past the last emitted one, so a slow row holds back a bounded
// number of buffered results.
type WorkerPool struct {
	workers  int
	observer *observability.StandardObserver
}

// NewWorkerPool creates a pool with the given number of workers. Values
// below one are treated as one, which reproduces sequential scanning.
func NewWorkerPool(workers int, observer *observability.StandardObserver) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	if observer == nil {
		observer = observability.Nop()
	}
	return &WorkerPool{workers: workers, observer: observer}
}

// Workers returns the number of worker goroutines
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

// Window returns how many rows may be dispatched but not yet emitted
func (wp *WorkerPool) Window() int {
	return wp.workers * 2
}

// Run scans rows and passes every result to emit in row order. Rows are
// checked for cancellation before they are scanned; a cancelled context or a
// failing emit stops the run and its error is returned.
func (wp *WorkerPool) Run(ctx context.Context, rows []detector.Row, scan ScanFunc, emit EmitFunc) error {
	finishTiming := wp.observer.StartTiming("worker_pool", "run", "")

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	jobs := make(chan int)
	results := make(chan *Result, wp.workers*2)
	// one slot per dispatched row, released when the row is emitted
	inFlight := make(chan struct{}, wp.Window())

	g.Go(func() error {
		defer close(jobs)
		for i := range rows {
			select {
			case inFlight <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for w := 0; w < wp.workers; w++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return wp.worker(gctx, rows, jobs, results, scan)
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	emitted, emitErr := wp.collect(results, inFlight, emit, cancel)
	err := g.Wait()
	if emitErr != nil {
		err = emitErr
	} else if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}

	finishTiming(err == nil, zap.Int("rows", len(rows)), zap.Int("emitted", emitted), zap.Int("workers", wp.workers))
	if err != nil {
		return fmt.Errorf("row scan stopped after %d of %d rows: %w", emitted, len(rows), err)
	}
	return nil
}

// worker processes rows from the queue
func (wp *WorkerPool) worker(ctx context.Context, rows []detector.Row, jobs <-chan int, results chan<- *Result, scan ScanFunc) error {
	for i := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		findings, diags := scan(rows[i])
		result := &Result{Findings: findings, Diagnostics: diags, Duration: time.Since(start), seq: i}

		select {
		case results <- result:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// collect buffers out-of-order results and emits them in sequence, freeing
// an in-flight slot per emitted row. After an emit error it cancels the run
// and drains the remaining results.
func (wp *WorkerPool) collect(results <-chan *Result, inFlight <-chan struct{}, emit EmitFunc, cancel context.CancelFunc) (int, error) {
	pending := make(map[int]*Result)
	next := 0
	var emitErr error

	for result := range results {
		if emitErr != nil {
			continue
		}
		pending[result.seq] = result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			if err := emit(r); err != nil {
				emitErr = err
				cancel()
				break
			}
			<-inFlight
			next++
		}
	}
	return next, emitErr
}
