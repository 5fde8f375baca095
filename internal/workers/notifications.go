// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
	"github.com/Syncano/syncano-dotnet-sub001/internal/syncserver"
	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// NotificationWorker drains a NotificationStream and hands every envelope
// to its handler.
type NotificationWorker struct {
	name    string
	stream  NotificationStream
	handle  NotificationHandler
	logger  *logger.Logger
	handled atomic.Uint64
}

// NewNotificationWorker returns a worker draining stream. A nil handler
// logs every envelope at Info level.
func NewNotificationWorker(name string, stream NotificationStream, handle NotificationHandler, log *logger.Logger) *NotificationWorker {
	w := &NotificationWorker{
		name:   name,
		stream: stream,
		handle: handle,
		logger: log.GetChildLogger(),
	}
	w.logger.Logger = w.logger.With().Str("worker", name).Str("observer", stream.ID()).Logger()

	if w.handle == nil {
		w.handle = LogNotification(w.logger)
	}
	return w
}

func (w *NotificationWorker) Name() string {
	return w.name
}

// Handled returns the number of envelopes passed to the handler. It is safe
// to call while Run is draining the stream.
func (w *NotificationWorker) Handled() uint64 {
	return w.handled.Load()
}

// Run returns nil when ctx is cancelled or the stream was closed on
// purpose, and the stream error when the connection was lost.
func (w *NotificationWorker) Run(ctx context.Context) error {
	defer func() {
		w.logger.Info().
			Uint64("handled", w.handled.Load()).
			Uint64("dropped", w.stream.Dropped()).
			Msg("notification stream drained")
	}()

	for {
		select {
		case <-ctx.Done():
			w.stream.Close()
			return nil
		case env, ok := <-w.stream.C():
			if !ok {
				return streamError(w.stream.Err())
			}
			w.handled.Add(1)
			if err := w.handle(ctx, env); err != nil {
				w.logger.Warn().Err(err).
					Str("kind", string(env.Kind)).
					Str("project_id", env.Target.ProjectID).
					Msg("notification handler failed")
			}
		}
	}
}

// streamError maps the close reason of a stream onto the worker result.
// An explicit Close of the observer or the client is not a failure.
func streamError(err error) error {
	if err == nil || errors.Is(err, syncserver.ErrObserverClosed) || err == adapter.ErrConnectionClosed {
		return nil
	}
	return err
}

// LogNotification returns a handler that writes one log record per
// envelope.
func LogNotification(log *logger.Logger) NotificationHandler {
	return func(_ context.Context, env models.NotificationEnvelope) error {
		event := log.Info().
			Str("kind", string(env.Kind)).
			Str("project_id", env.Target.ProjectID).
			Time("received_at", env.ReceivedAt)

		if env.Target.CollectionID != "" {
			event = event.Str("collection_id", env.Target.CollectionID)
		}
		if env.Target.CollectionKey != "" {
			event = event.Str("collection_key", env.Target.CollectionKey)
		}
		if env.Target.DataID != "" {
			event = event.Str("data_id", env.Target.DataID)
		}
		if env.Data != nil {
			event = event.Str("title", env.Data.Title)
		}
		event.Msg("notification received")
		return nil
	}
}
