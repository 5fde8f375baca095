// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"time"

	"github.com/Syncano/syncano-dotnet-sub001/internal/config"
)

// Settings tune one sync connection. Zero durations disable the matching
// deadline or timer.
type Settings struct {
	// Address is the websocket URL of the sync server.
	Address string
	// HandshakeTimeout bounds Connect.
	HandshakeTimeout time.Duration
	// WriteTimeout bounds a single frame write.
	WriteTimeout time.Duration
	// ReadTimeout is the longest silence tolerated from the server. Every
	// inbound message and pong extends it.
	ReadTimeout time.Duration
	// PingInterval is the keep-alive period.
	PingInterval time.Duration
	// RequestTimeout bounds the wait for a response when the caller's
	// context has no deadline.
	RequestTimeout time.Duration
	// ObserverBuffer is the queue length of each Observer.
	ObserverBuffer int
}

// DefaultSettings returns the settings used when no configuration is given.
func DefaultSettings(address string) Settings {
	pingInterval := config.DefaultPingInterval
	return Settings{
		Address:          address,
		HandshakeTimeout: config.DefaultConnectTimeout,
		WriteTimeout:     5 * time.Second,
		ReadTimeout:      2 * pingInterval,
		PingInterval:     pingInterval,
		RequestTimeout:   config.DefaultRequestTimeout,
		ObserverBuffer:   config.DefaultObserverBuffer,
	}
}

// SettingsFromConfig maps the client configuration onto Settings.
func SettingsFromConfig(adapterCfg config.ClientAdapter, workersCfg config.ClientWorkers) Settings {
	s := DefaultSettings(adapterCfg.SyncAddress)
	if adapterCfg.ConnectTimeout > 0 {
		s.HandshakeTimeout = adapterCfg.ConnectTimeout
	}
	if adapterCfg.PingInterval > 0 {
		s.PingInterval = adapterCfg.PingInterval
		s.ReadTimeout = 2 * adapterCfg.PingInterval
	}
	if adapterCfg.RequestTimeout > 0 {
		s.RequestTimeout = adapterCfg.RequestTimeout
	}
	if workersCfg.ObserverBuffer > 0 {
		s.ObserverBuffer = workersCfg.ObserverBuffer
	}
	return s
}
