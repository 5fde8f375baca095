// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// stringList is a repeatable, comma-splitting flag value.
// It implements the flag.Value interface.
type stringList []string

// String returns the comma-joined list.
func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

// Set appends every non-empty comma-separated item of s.
func (l *stringList) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-k api key
//	-i instance name
//	-backend backend kind: "sync" or "http"
//	-http-address JSON-RPC base URL
//	-sync-address sync server websocket URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-connect-timeout websocket handshake timeout
//	-ping-interval keep-alive period
//	-session start a session after login
//	-timezone session timezone (IANA name)
//	-project project ID to subscribe to (repeatable, comma-separated)
//	-collection project:collection to subscribe to (repeatable, comma-separated)
//	-context subscription context: "connection" or "session"
//	-observer-buffer per-observer queue length
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("syncano-client", flag.ContinueOnError)

	var apiKey, instance, timezone string
	var backend, httpAddress, syncAddress string
	var requestTimeout, connectTimeout, pingInterval time.Duration
	var startSession bool
	var projects, collections stringList
	var subscriptionContext string
	var observerBuffer int
	var jsonConfigPath string

	fs.StringVar(&apiKey, "k", "", "API key")
	fs.StringVar(&instance, "i", "", "Instance name")
	fs.StringVar(&backend, "backend", "", `Backend kind: "sync" or "http"`)
	fs.StringVar(&httpAddress, "http-address", "", "JSON-RPC base URL")
	fs.StringVar(&syncAddress, "sync-address", "", "Sync server websocket URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Websocket handshake timeout")
	fs.DurationVar(&pingInterval, "ping-interval", 0, "Keep-alive period")
	fs.BoolVar(&startSession, "session", false, "Start a session after login")
	fs.StringVar(&timezone, "timezone", "", "Session timezone (IANA name)")
	fs.Var(&projects, "project", "Project ID to subscribe to")
	fs.Var(&collections, "collection", "project:collection to subscribe to")
	fs.StringVar(&subscriptionContext, "context", "", `Subscription context: "connection" or "session"`)
	fs.IntVar(&observerBuffer, "observer-buffer", 0, "Per-observer queue length")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			APIKey:       apiKey,
			Instance:     instance,
			StartSession: startSession,
			Timezone:     timezone,
		},
		Adapter: Adapter{
			Backend:        backend,
			HTTPAddress:    httpAddress,
			SyncAddress:    syncAddress,
			RequestTimeout: requestTimeout,
			ConnectTimeout: connectTimeout,
			PingInterval:   pingInterval,
		},
		Subscriptions: Subscriptions{
			Projects:    projects,
			Collections: collections,
			Context:     subscriptionContext,
		},
		Workers:      Workers{ObserverBuffer: observerBuffer},
		JSONFilePath: jsonConfigPath,
	}, nil
}
