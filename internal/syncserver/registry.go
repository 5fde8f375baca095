// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"strings"
	"sync"

	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// scopeKey identifies one subscription scope. Re-subscribing the same
// target in the same context maps to the same key.
type scopeKey struct {
	target  models.Target
	context models.SubscriptionContext
}

func newScopeKey(target models.Target, ctx models.SubscriptionContext) scopeKey {
	return scopeKey{target: normalizeTarget(target), context: ctx.OrDefault()}
}

func normalizeTarget(t models.Target) models.Target {
	return models.Target{
		ProjectID:     strings.TrimSpace(t.ProjectID),
		CollectionID:  strings.TrimSpace(t.CollectionID),
		CollectionKey: strings.TrimSpace(t.CollectionKey),
		DataID:        strings.TrimSpace(t.DataID),
	}
}

// covers reports whether a notification for n belongs to scope target s.
// A project scope covers everything in the project; a collection scope,
// addressed by id or key, covers every object in it; a data scope covers
// one object.
func covers(s, n models.Target) bool {
	if s.ProjectID != n.ProjectID {
		return false
	}
	if s.IsProject() {
		return true
	}

	sameCollection := (s.CollectionID != "" && s.CollectionID == n.CollectionID) ||
		(s.CollectionKey != "" && s.CollectionKey == n.CollectionKey)
	if !sameCollection {
		return false
	}

	return s.DataID == "" || s.DataID == n.DataID
}

// registry tracks the live subscription scopes of one connection.
type registry struct {
	mu     sync.RWMutex
	scopes map[scopeKey]struct{}
	closed bool
}

func newRegistry() *registry {
	return &registry{scopes: make(map[scopeKey]struct{})}
}

// add records a scope and reports whether it was new. It is a no-op once
// the registry is cleared by connection shutdown.
func (r *registry) add(key scopeKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	if _, ok := r.scopes[key]; ok {
		return false
	}
	r.scopes[key] = struct{}{}
	return true
}

// remove drops a scope and reports whether it was present.
func (r *registry) remove(key scopeKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scopes[key]; !ok {
		return false
	}
	delete(r.scopes, key)
	return true
}

func (r *registry) contains(key scopeKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.scopes[key]
	return ok
}

// matching returns every live scope covering target.
func (r *registry) matching(target models.Target) []scopeKey {
	target = normalizeTarget(target)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []scopeKey
	for key := range r.scopes {
		if covers(key.target, target) {
			out = append(out, key)
		}
	}
	return out
}

// dropContext removes every scope bound to ctx and returns how many were
// removed.
func (r *registry) dropContext(ctx models.SubscriptionContext) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for key := range r.scopes {
		if key.context == ctx {
			delete(r.scopes, key)
			n++
		}
	}
	return n
}

// clear removes every scope and rejects later additions.
func (r *registry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.scopes = make(map[scopeKey]struct{})
}

func (r *registry) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.scopes)
}
