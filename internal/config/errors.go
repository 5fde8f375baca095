// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, unknown backend or missing address for the selected one).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates missing credentials.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSubscriptionConfigs indicates malformed subscription targets
	// or a session context without a session.
	ErrInvalidSubscriptionConfigs = errors.New("invalid subscription configuration")
	// ErrInvalidWorkerConfigs indicates invalid notification worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
