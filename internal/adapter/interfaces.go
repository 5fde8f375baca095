// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-agnostic contract for talking to the
// Syncano backend and its stateless HTTP implementation.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. Two backends implement it: the
// JSON-RPC over HTTP adapter in this package ([NewHTTPServerAdapter]) and the
// persistent-connection client in internal/syncserver, which additionally
// supports live notifications. The backend is chosen by configuration.
//
// Error values defined in errors.go form the taxonomy every backend reports
// so callers can use [errors.Is] for protocol-agnostic handling (for example
// [ErrValidation] for local argument checks, [ErrServer] for backend
// rejections).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the backend.
// Implementations are responsible for serialisation, credential handling,
// and mapping transport-level failures onto the sentinel errors of this
// package.
type ServerAdapter interface {
	// Login authenticates subsequent calls with the given API key against
	// the named instance. Both arguments are required; an empty one yields
	// [ErrValidation] without any I/O. A rejection by the backend yields a
	// [*ServerError].
	Login(ctx context.Context, apiKey, instanceName string) error

	// Call invokes a backend method (e.g. "project.get_one") with params
	// and decodes the result into result, which may be nil when the caller
	// does not need the response body. It blocks until the response
	// arrives, ctx is done, or the transport fails.
	Call(ctx context.Context, method string, params any, result any) error

	// Close releases the adapter. Calls made afterwards fail with
	// [ErrConnectionClosed]. Close is idempotent.
	Close() error
}
