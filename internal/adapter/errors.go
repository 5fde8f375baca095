// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every backend. Callers inspect errors with
// [errors.Is]; the concrete error usually wraps one of these sentinels
// together with the underlying cause.
var (
	// ErrValidation marks a missing or malformed argument detected locally.
	// It is always returned before any network I/O.
	ErrValidation = errors.New("validation error")

	// ErrConnection marks a failure to establish or use the transport
	// (dial refused, handshake timeout, HTTP transport failure).
	ErrConnection = errors.New("connection error")

	// ErrProtocol marks a malformed inbound frame or a response payload
	// that does not decode. It is fatal for the persistent connection.
	ErrProtocol = errors.New("protocol error")

	// ErrServer marks a well-formed request rejected by the backend.
	ErrServer = errors.New("server error")

	// ErrConnectionClosed marks an operation attempted on, or in flight
	// during the closure of, a terminated connection.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrTimeout marks a local wait deadline that elapsed without a
	// matching response. The backend may still process the request.
	ErrTimeout = errors.New("timeout")

	// ErrNotSupported is returned by a backend that cannot serve an
	// operation, e.g. live subscriptions over the stateless HTTP backend.
	ErrNotSupported = errors.New("operation not supported by backend")
)

// ServerError is a rejection reported by the backend for one request.
// It matches [ErrServer] via [errors.Is].
type ServerError struct {
	// Code is the backend's machine-readable error code.
	Code string `json:"code"`
	// Message is the backend's human-readable description.
	Message string `json:"message"`
}

func (e *ServerError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("server error: %s", e.Message)
	}
	return fmt.Sprintf("server error: %s: %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrServer) report true.
func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// NewValidationError marks err as a local validation failure.
func NewValidationError(err error) error {
	if err == nil || errors.Is(err, ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
