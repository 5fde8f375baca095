// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"encoding/json"
	"sync"
	"time"
)

type result struct {
	payload json.RawMessage
	err     error
}

// pendingRequest is one outstanding request. It is completed exactly once:
// whoever removes it from the correlator owns the completion.
type pendingRequest struct {
	id       uint64
	method   string
	issuedAt time.Time
	done     chan result

	// onComplete runs on the read loop before the caller is woken, so state
	// it records is visible to every frame that follows the response.
	onComplete func(json.RawMessage)
}

// correlator assigns request ids and matches responses to waiting callers.
type correlator struct {
	mu      sync.Mutex
	pending map[uint64]*pendingRequest
	next    uint64
	closed  error
}

func newCorrelator() *correlator {
	return &correlator{pending: make(map[uint64]*pendingRequest)}
}

// issue registers a new pending request. The id skips zero and any id still
// pending, so counter wraparound cannot collide with an outstanding request.
func (c *correlator) issue(method string, onComplete func(json.RawMessage)) (*pendingRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed != nil {
		return nil, c.closed
	}

	for {
		c.next++
		if c.next == 0 {
			continue
		}
		if _, busy := c.pending[c.next]; !busy {
			break
		}
	}

	p := &pendingRequest{
		id:         c.next,
		method:     method,
		issuedAt:   time.Now(),
		done:       make(chan result, 1),
		onComplete: onComplete,
	}
	c.pending[p.id] = p
	return p, nil
}

// take removes and returns the pending request with id.
func (c *correlator) take(id uint64) (*pendingRequest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
	}
	return p, ok
}

// complete resolves id with payload. It reports false when no request with
// that id is pending, e.g. after the caller gave up waiting.
func (c *correlator) complete(id uint64, payload json.RawMessage) bool {
	p, ok := c.take(id)
	if !ok {
		return false
	}
	if p.onComplete != nil {
		p.onComplete(payload)
	}
	p.done <- result{payload: payload}
	return true
}

// fail resolves id with err.
func (c *correlator) fail(id uint64, err error) bool {
	p, ok := c.take(id)
	if !ok {
		return false
	}
	p.done <- result{err: err}
	return true
}

// abandon forgets id without resolving it. A late response for id is then
// dropped by the read loop.
func (c *correlator) abandon(id uint64) bool {
	_, ok := c.take(id)
	return ok
}

// failAll resolves every pending request with err and makes later issue
// calls fail with err. It returns the number of requests failed.
func (c *correlator) failAll(err error) int {
	c.mu.Lock()
	if c.closed == nil {
		c.closed = err
	}
	pending := c.pending
	c.pending = make(map[uint64]*pendingRequest)
	c.mu.Unlock()

	for _, p := range pending {
		p.done <- result{err: err}
	}
	return len(pending)
}

func (c *correlator) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
