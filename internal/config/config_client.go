// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// BackendKind selects the [adapter.ServerAdapter] implementation.
type BackendKind string

const (
	// BackendSync is the persistent websocket connection with live
	// notifications.
	BackendSync BackendKind = "sync"
	// BackendHTTP is the stateless JSON-RPC over HTTP backend.
	BackendHTTP BackendKind = "http"
)

// Defaults applied by [GetClientConfig] to unset fields.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultConnectTimeout = 10 * time.Second
	DefaultPingInterval   = 30 * time.Second
	DefaultObserverBuffer = 64
)

// ClientApp holds the login credentials and the optional session settings.
type ClientApp struct {
	// APIKey is the key passed to Login.
	APIKey string
	// Instance is the instance name passed to Login.
	Instance string
	// StartSession requests a session right after login.
	StartSession bool
	// Timezone is the optional IANA timezone of the session.
	Timezone string
}

// ClientAdapter holds backend selection and network settings used by the
// client transport layer.
type ClientAdapter struct {
	// Backend selects the transport.
	Backend BackendKind
	// HTTPAddress is the JSON-RPC base URL used by the HTTP backend.
	HTTPAddress string
	// SyncAddress is the websocket URL used by the sync backend.
	SyncAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// ConnectTimeout bounds the websocket handshake.
	ConnectTimeout time.Duration
	// PingInterval is the keep-alive period of the sync connection.
	PingInterval time.Duration
}

// ClientSubscriptions lists the targets subscribed after login.
type ClientSubscriptions struct {
	// Projects holds project IDs.
	Projects []string
	// Collections holds collection references.
	Collections []models.CollectionRef
	// Context is the lifetime binding of every configured subscription.
	Context models.SubscriptionContext
}

// ClientWorkers contains notification worker settings.
type ClientWorkers struct {
	// ObserverBuffer is the per-observer queue length.
	ObserverBuffer int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains credentials and session settings.
	App ClientApp
	// Adapter contains backend selection, addresses and timeouts.
	Adapter ClientAdapter
	// Subscriptions contains the targets to subscribe to.
	Subscriptions ClientSubscriptions
	// Workers contains notification worker settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields to
// their typed client form, fills defaults for unset timeouts and buffers,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	collections := make([]models.CollectionRef, 0, len(cfg.Subscriptions.Collections))
	for _, raw := range cfg.Subscriptions.Collections {
		ref, err := ParseCollectionRef(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSubscriptionConfigs, err)
		}
		collections = append(collections, ref)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			APIKey:       strings.TrimSpace(cfg.App.APIKey),
			Instance:     strings.TrimSpace(cfg.App.Instance),
			StartSession: cfg.App.StartSession,
			Timezone:     strings.TrimSpace(cfg.App.Timezone),
		},
		Adapter: ClientAdapter{
			Backend:        BackendKind(strings.ToLower(strings.TrimSpace(cfg.Adapter.Backend))),
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			SyncAddress:    cfg.Adapter.SyncAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ConnectTimeout: cfg.Adapter.ConnectTimeout,
			PingInterval:   cfg.Adapter.PingInterval,
		},
		Subscriptions: ClientSubscriptions{
			Projects:    cfg.Subscriptions.Projects,
			Collections: collections,
			Context:     models.SubscriptionContext(strings.ToLower(cfg.Subscriptions.Context)).OrDefault(),
		},
		Workers: ClientWorkers{ObserverBuffer: cfg.Workers.ObserverBuffer},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.Backend == "" {
		cfg.Adapter.Backend = BackendSync
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.ConnectTimeout == 0 {
		cfg.Adapter.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.Adapter.PingInterval == 0 {
		cfg.Adapter.PingInterval = DefaultPingInterval
	}
	if cfg.Workers.ObserverBuffer == 0 {
		cfg.Workers.ObserverBuffer = DefaultObserverBuffer
	}
}

// ParseCollectionRef parses "project:collectionID" or
// "project:key=collectionKey".
func ParseCollectionRef(raw string) (models.CollectionRef, error) {
	projectID, collection, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || projectID == "" || collection == "" {
		return models.CollectionRef{}, fmt.Errorf("collection %q must be in a form `project:collection`", raw)
	}

	if key, isKey := strings.CutPrefix(collection, "key="); isKey {
		if key == "" {
			return models.CollectionRef{}, fmt.Errorf("collection %q has an empty key", raw)
		}
		return models.CollectionRef{ProjectID: projectID, CollectionKey: key}, nil
	}

	return models.CollectionRef{ProjectID: projectID, CollectionID: collection}, nil
}
