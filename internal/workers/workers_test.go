// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
)

// funcWorker adapts a function to the Worker interface.
type funcWorker struct {
	name string
	run  func(ctx context.Context) error
}

func (f *funcWorker) Name() string                  { return f.name }
func (f *funcWorker) Run(ctx context.Context) error { return f.run(ctx) }

// ── Workers.Run ──────────────────────────────────────────────────────────────

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	var calls atomic.Int32
	newWorker := func(name string) Worker {
		return &funcWorker{name: name, run: func(context.Context) error {
			calls.Add(1)
			return nil
		}}
	}

	ws := NewWorkers(logger.Nop(), newWorker("a"), newWorker("b"), newWorker("c"))
	require.NoError(t, ws.Run(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	assert.NoError(t, ws.Run(context.Background()))
	assert.Zero(t, ws.Len())
}

func TestWorkers_Run_Concurrent(t *testing.T) {
	// Each worker waits for the other; sequential execution would deadlock.
	a, b := make(chan struct{}), make(chan struct{})
	ws := NewWorkers(logger.Nop(),
		&funcWorker{name: "a", run: func(context.Context) error {
			close(a)
			<-b
			return nil
		}},
		&funcWorker{name: "b", run: func(context.Context) error {
			close(b)
			<-a
			return nil
		}},
	)

	done := make(chan error, 1)
	go func() { done <- ws.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not run concurrently")
	}
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	var stoppedByCancel atomic.Bool

	ws := NewWorkers(logger.Nop())
	ws.Add(&funcWorker{name: "failing", run: func(context.Context) error {
		return boom
	}})
	ws.Add(&funcWorker{name: "blocking", run: func(ctx context.Context) error {
		<-ctx.Done()
		stoppedByCancel.Store(true)
		return nil
	}})
	assert.Equal(t, 2, ws.Len())

	err := ws.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "worker failing")
	assert.True(t, stoppedByCancel.Load())
}

func TestWorkers_Run_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(logger.Nop(), &funcWorker{name: "blocking", run: func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}})

	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("workers ignored cancellation")
	}
}
