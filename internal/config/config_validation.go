// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/Syncano/syncano-dotnet-sub001/models"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured view carries raw values only; every semantic rule lives in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.APIKey == "" || cfg.App.Instance == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Adapter.Backend {
	case BackendSync:
		if cfg.Adapter.SyncAddress == "" {
			return ErrInvalidAdapterConfigs
		}
	case BackendHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return ErrInvalidAdapterConfigs
		}
	default:
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.ConnectTimeout < 0 || cfg.Adapter.PingInterval < 0 {
		return ErrInvalidAdapterConfigs
	}

	if !cfg.Subscriptions.Context.Valid() {
		return ErrInvalidSubscriptionConfigs
	}
	if cfg.Subscriptions.Context == models.ContextSession && !cfg.App.StartSession {
		return ErrInvalidSubscriptionConfigs
	}
	if cfg.Adapter.Backend == BackendHTTP && (len(cfg.Subscriptions.Projects) > 0 || len(cfg.Subscriptions.Collections) > 0) {
		return ErrInvalidSubscriptionConfigs
	}

	if cfg.Workers.ObserverBuffer < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
