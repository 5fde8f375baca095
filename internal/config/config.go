// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// syncano client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with SYNCANO_.
type StructuredConfig struct {
	// App holds the credentials and session settings used to log in.
	App App `envPrefix:"APP_"`

	// Adapter selects the backend and holds its addresses and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Subscriptions lists the targets subscribed after login.
	Subscriptions Subscriptions `envPrefix:"SUBSCRIPTIONS_"`

	// Workers holds configuration for the notification workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the SYNCANO_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the login credentials and the optional session settings.
type App struct {
	// APIKey is the backend or user API key used by Login.
	// Env: SYNCANO_APP_API_KEY
	APIKey string `env:"API_KEY"`

	// Instance is the name of the instance the key belongs to.
	// Env: SYNCANO_APP_INSTANCE
	Instance string `env:"INSTANCE"`

	// StartSession requests a session after login. Session-scoped
	// subscriptions require it.
	// Env: SYNCANO_APP_START_SESSION
	StartSession bool `env:"START_SESSION"`

	// Timezone is the optional IANA timezone sent with StartSession
	// (e.g. "Europe/Warsaw").
	// Env: SYNCANO_APP_TIMEZONE
	Timezone string `env:"TIMEZONE"`
}

// Adapter holds backend selection, addresses and timeouts.
type Adapter struct {
	// Backend is "sync" for the persistent connection or "http" for the
	// stateless JSON-RPC backend.
	// Env: SYNCANO_ADAPTER_BACKEND
	Backend string `env:"BACKEND"`

	// HTTPAddress is the base URL of the JSON-RPC endpoint
	// (e.g. "https://my-instance.syncano.com").
	// Env: SYNCANO_ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// SyncAddress is the websocket URL of the sync server
	// (e.g. "wss://api.syncano.com/sync").
	// Env: SYNCANO_ADAPTER_SYNC_ADDRESS
	SyncAddress string `env:"SYNC_ADDRESS"`

	// RequestTimeout bounds the wait for a single response when the
	// caller's context carries no deadline (e.g. "30s").
	// Env: SYNCANO_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConnectTimeout bounds the websocket handshake.
	// Env: SYNCANO_ADAPTER_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// PingInterval is the keep-alive period of the sync connection.
	// Env: SYNCANO_ADAPTER_PING_INTERVAL
	PingInterval time.Duration `env:"PING_INTERVAL"`
}

// Subscriptions lists the targets the client subscribes to after login.
type Subscriptions struct {
	// Projects is a comma-separated list of project IDs.
	// Env: SYNCANO_SUBSCRIPTIONS_PROJECTS
	Projects []string `env:"PROJECTS"`

	// Collections is a comma-separated list of "project:collection" or
	// "project:key=collectionKey" entries.
	// Env: SYNCANO_SUBSCRIPTIONS_COLLECTIONS
	Collections []string `env:"COLLECTIONS"`

	// Context is "connection" (default) or "session".
	// Env: SYNCANO_SUBSCRIPTIONS_CONTEXT
	Context string `env:"CONTEXT"`
}

// Workers holds configuration for the notification workers.
type Workers struct {
	// ObserverBuffer is the per-observer queue length. When the queue is
	// full the oldest pending notification is dropped.
	// Env: SYNCANO_WORKERS_OBSERVER_BUFFER
	ObserverBuffer int `env:"OBSERVER_BUFFER"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
