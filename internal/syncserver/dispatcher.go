// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"sync"

	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
	"github.com/Syncano/syncano-dotnet-sub001/internal/utils"
	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// dispatcher fans notifications out to observers.
type dispatcher struct {
	mu        sync.RWMutex
	observers map[string]*Observer
	closedErr error

	buffer int
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func newDispatcher(buffer int, log *logger.Logger) *dispatcher {
	return &dispatcher{
		observers: make(map[string]*Observer),
		buffer:    buffer,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}
}

// register adds an observer for kinds (all kinds when empty). After the
// connection closed the returned observer is already terminated.
func (d *dispatcher) register(kinds []models.NotificationKind, opts ...ObserveOption) *Observer {
	o := newObserver(d.ids.Generate(), d.buffer, kinds, opts...)
	o.detach = d.unregister

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closedErr != nil {
		o.terminate(d.closedErr)
		return o
	}
	d.observers[o.id] = o
	return o
}

func (d *dispatcher) unregister(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.observers, id)
}

// dispatch publishes env to every observer that wants it given the live
// scopes in matches. With no matching scope the envelope is dropped. Each
// observer receives env at most once. It returns the number of deliveries.
func (d *dispatcher) dispatch(env models.NotificationEnvelope, matches []scopeKey) int {
	if len(matches) == 0 {
		d.logger.Debug().
			Str("kind", string(env.Kind)).
			Str("project_id", env.Target.ProjectID).
			Msg("notification without live scope dropped")
		return 0
	}

	d.mu.RLock()
	targets := make([]*Observer, 0, len(d.observers))
	for _, o := range d.observers {
		if o.wants(env, matches) {
			targets = append(targets, o)
		}
	}
	d.mu.RUnlock()

	for _, o := range targets {
		if !o.publish(env) {
			d.logger.Warn().
				Str("observer", o.id).
				Uint64("dropped", o.Dropped()).
				Msg("observer queue full, oldest notification dropped")
		}
	}
	return len(targets)
}

// closeAll terminates every observer with err and rejects later
// registrations.
func (d *dispatcher) closeAll(err error) {
	d.mu.Lock()
	d.closedErr = err
	observers := d.observers
	d.observers = make(map[string]*Observer)
	d.mu.Unlock()

	for _, o := range observers {
		o.terminate(err)
	}
}

func (d *dispatcher) size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.observers)
}
