// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/internal/validators"
)

// remote is the call path shared by every service: validate locally, then
// forward to the backend.
type remote struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

// call validates req and invokes method with it. result may be nil.
func (r remote) call(ctx context.Context, method string, req any, result any, fields ...string) error {
	if err := r.validator.Validate(ctx, req, fields...); err != nil {
		return adapter.NewValidationError(err)
	}
	return r.invoke(ctx, method, req, result)
}

// invoke skips validation; used by calls that take no arguments.
func (r remote) invoke(ctx context.Context, method string, params any, result any) error {
	if err := r.adapter.Call(ctx, method, params, result); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
