// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs every
// worker concurrently and stops them together.
package workers

import (
	"context"

	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker can no longer make
// progress. Returning nil means a clean stop; a non-nil error stops every
// other worker of the same Workers aggregate.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Name() string { return "my-worker" }
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// NotificationStream is a closable feed of notification envelopes.
// *syncserver.Observer satisfies it.
type NotificationStream interface {
	ID() string
	C() <-chan models.NotificationEnvelope
	Err() error
	Dropped() uint64
	Close()
}

// NotificationHandler processes one delivered envelope. An error is logged
// and does not stop the worker.
type NotificationHandler func(ctx context.Context, env models.NotificationEnvelope) error
