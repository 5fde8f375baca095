// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import "errors"

var (
	// ErrNotConnected is returned for requests made before Connect. It is
	// joined with adapter.ErrConnection.
	ErrNotConnected = errors.New("client is not connected")
	// ErrAlreadyConnected is returned by a second Connect.
	ErrAlreadyConnected = errors.New("client is already connected")
	// ErrNotAuthenticated is returned by operations that need a successful
	// Login. It is joined with adapter.ErrValidation.
	ErrNotAuthenticated = errors.New("client is not authenticated")
	// ErrNoSession is returned for session-scoped subscriptions made before
	// StartSession. It is joined with adapter.ErrValidation.
	ErrNoSession = errors.New("no active session")
	// ErrObserverClosed is reported by an Observer closed by its owner.
	ErrObserverClosed = errors.New("observer closed")
)
