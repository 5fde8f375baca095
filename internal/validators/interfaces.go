// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides local argument validation for every call the
// client sends to the backend.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Inject a Validator into a service or the sync client.
//  2. Call Validate with context, value, and optional field names before any
//     network I/O.
//  3. Join the returned error with adapter.ErrValidation.
//
// Two implementations are provided: [SubscriptionValidator] for login,
// session and subscription arguments, and [RequestValidator] for CRUD
// request types.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
