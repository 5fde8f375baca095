// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/internal/config"
	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
	"github.com/Syncano/syncano-dotnet-sub001/internal/service"
	"github.com/Syncano/syncano-dotnet-sub001/internal/syncserver"
	"github.com/Syncano/syncano-dotnet-sub001/internal/workers"
	"github.com/Syncano/syncano-dotnet-sub001/models"
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	adapter  adapter.ServerAdapter
	sync     *syncserver.Client
	services *service.Services
}

var _ Client = (*App)(nil)

// Option customizes NewApp.
type Option func(*options)

type options struct {
	syncOpts []syncserver.Option
}

// WithSyncOptions forwards opts to the sync client.
func WithSyncOptions(opts ...syncserver.Option) Option {
	return func(o *options) {
		o.syncOpts = append(o.syncOpts, opts...)
	}
}

// NewApp builds the backend selected by cfg.Adapter.Backend and the CRUD
// services bound to it. No I/O happens until Run.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	app := &App{cfg: cfg, buildInfo: buildInfo, logger: log}

	switch cfg.Adapter.Backend {
	case config.BackendSync:
		app.sync = syncserver.New(syncserver.SettingsFromConfig(cfg.Adapter, cfg.Workers), log, o.syncOpts...)
		app.adapter = app.sync
	case config.BackendHTTP:
		httpAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("create http adapter: %w", err)
		}
		app.adapter = httpAdapter
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalidAdapterConfigs, cfg.Adapter.Backend)
	}

	app.services = service.NewServices(app.adapter)
	return app, nil
}

// Services returns the CRUD services bound to the backend.
func (a *App) Services() *service.Services {
	return a.services
}

// Run logs in and serves until ctx is cancelled. The backend is closed on
// return.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Str("version", a.buildInfo.BuildVersion()).
		Str("date", a.buildInfo.BuildDate()).
		Str("commit", a.buildInfo.BuildCommit()).
		Str("backend", string(a.cfg.Adapter.Backend)).
		Str("instance", a.cfg.App.Instance).
		Msg("client starting")

	defer func() {
		if err := a.adapter.Close(); err != nil {
			a.logger.Err(err).Msg("close backend")
		}
	}()

	if a.sync != nil {
		return a.runSync(ctx)
	}
	return a.runHTTP(ctx)
}

func (a *App) runHTTP(ctx context.Context) error {
	if a.cfg.App.StartSession {
		return fmt.Errorf("start session: %w", adapter.ErrNotSupported)
	}
	if err := a.adapter.Login(ctx, a.cfg.App.APIKey, a.cfg.App.Instance); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	// Login is local on this backend; the first call checks the credentials.
	projects, err := a.services.Projects.Get(ctx)
	if err != nil {
		return fmt.Errorf("verify credentials: %w", err)
	}

	a.logger.Info().Int("projects", len(projects)).Msg("connected to backend")
	return nil
}

func (a *App) runSync(ctx context.Context) error {
	if err := a.sync.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := a.sync.Login(ctx, a.cfg.App.APIKey, a.cfg.App.Instance); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if a.cfg.App.StartSession {
		session, err := a.sync.StartSession(ctx, a.cfg.App.Timezone)
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		a.logger.Info().Str("session_id", session.ID).Str("timezone", session.Timezone).Msg("session started")
	}

	// Observers are attached before subscribing so no early notification
	// is missed.
	ws := a.notificationWorkers()

	if err := a.subscribe(ctx); err != nil {
		return err
	}

	return ws.Run(ctx)
}

func (a *App) notificationWorkers() *workers.Workers {
	ws := workers.NewWorkers(a.logger)
	ws.Add(workers.NewNotificationWorker("new-data", a.sync.ObserveNewData(), nil, a.logger))
	ws.Add(workers.NewNotificationWorker("data-changes", a.sync.ObserveDataChanges(), nil, a.logger))
	ws.Add(workers.NewNotificationWorker("data-deletes", a.sync.ObserveDataDeletes(), nil, a.logger))
	return ws
}

func (a *App) subscribe(ctx context.Context) error {
	sctx := a.cfg.Subscriptions.Context

	for _, projectID := range a.cfg.Subscriptions.Projects {
		ok, err := a.sync.SubscribeProject(ctx, projectID, sctx)
		if err != nil {
			return fmt.Errorf("subscribe to project %s: %w", projectID, err)
		}
		a.logger.Info().Str("project_id", projectID).Bool("acknowledged", ok).Str("context", string(sctx)).Msg("subscribed to project")
	}

	for _, ref := range a.cfg.Subscriptions.Collections {
		ok, err := a.sync.SubscribeCollection(ctx, ref, sctx)
		if err != nil {
			return fmt.Errorf("subscribe to collection %s/%s%s: %w", ref.ProjectID, ref.CollectionID, ref.CollectionKey, err)
		}
		a.logger.Info().
			Str("project_id", ref.ProjectID).
			Str("collection_id", ref.CollectionID).
			Str("collection_key", ref.CollectionKey).
			Bool("acknowledged", ok).
			Str("context", string(sctx)).
			Msg("subscribed to collection")
	}

	return nil
}
