// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"sync"
	"sync/atomic"

	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// Observer is an independent cursor over the notifications of one client.
//
// Each Observer owns a bounded queue. When the queue is full the oldest
// undelivered envelope is discarded and counted by Dropped; a slow observer
// never stalls the connection or other observers. The channel returned by C
// is closed when the connection closes or Close is called; Err then reports
// the reason.
type Observer struct {
	id    string
	kinds map[models.NotificationKind]struct{}
	scope *scopeKey

	mu      sync.Mutex
	ch      chan models.NotificationEnvelope
	closed  bool
	err     error
	dropped atomic.Uint64

	detach func(id string)
}

// ObserveOption customizes an Observer.
type ObserveOption func(*Observer)

// WithScope binds the observer to one subscription scope: it receives
// notifications only while that (target, context) scope is live and
// matches them.
func WithScope(target models.Target, ctx models.SubscriptionContext) ObserveOption {
	return func(o *Observer) {
		key := newScopeKey(target, ctx)
		o.scope = &key
	}
}

// WithBuffer overrides the queue length of the observer.
func WithBuffer(n int) ObserveOption {
	return func(o *Observer) {
		if n > 0 {
			o.ch = make(chan models.NotificationEnvelope, n)
		}
	}
}

func newObserver(id string, buffer int, kinds []models.NotificationKind, opts ...ObserveOption) *Observer {
	if buffer <= 0 {
		buffer = 1
	}
	o := &Observer{
		id: id,
		ch: make(chan models.NotificationEnvelope, buffer),
	}
	if len(kinds) > 0 {
		o.kinds = make(map[models.NotificationKind]struct{}, len(kinds))
		for _, k := range kinds {
			o.kinds[k] = struct{}{}
		}
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ID returns the observer identifier used in logs.
func (o *Observer) ID() string {
	return o.id
}

// C returns the delivery channel.
func (o *Observer) C() <-chan models.NotificationEnvelope {
	return o.ch
}

// Dropped returns how many envelopes were discarded because the queue was
// full.
func (o *Observer) Dropped() uint64 {
	return o.dropped.Load()
}

// Err returns nil while the observer is open, adapter.ErrConnectionClosed
// (possibly wrapping the cause) after the connection closed, or
// ErrObserverClosed after Close.
func (o *Observer) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

// Close detaches the observer and closes its channel. Undelivered envelopes
// remain readable.
func (o *Observer) Close() {
	if o.terminate(ErrObserverClosed) && o.detach != nil {
		o.detach(o.id)
	}
}

func (o *Observer) wants(env models.NotificationEnvelope, matches []scopeKey) bool {
	if o.kinds != nil {
		if _, ok := o.kinds[env.Kind]; !ok {
			return false
		}
	}
	if o.scope == nil {
		return true
	}
	for _, m := range matches {
		if m == *o.scope {
			return true
		}
	}
	return false
}

// publish enqueues env without blocking, discarding the oldest queued
// envelope when full. It reports false when one was discarded. Only the
// read loop publishes, so the retry after a discard cannot fail.
func (o *Observer) publish(env models.NotificationEnvelope) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return true
	}

	select {
	case o.ch <- env:
		return true
	default:
	}

	select {
	case <-o.ch:
		o.dropped.Add(1)
	default:
	}

	select {
	case o.ch <- env:
	default:
		o.dropped.Add(1)
	}
	return false
}

// terminate closes the channel once and records err. It reports whether
// this call closed it.
func (o *Observer) terminate(err error) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return false
	}
	o.closed = true
	o.err = err
	close(o.ch)
	return true
}
