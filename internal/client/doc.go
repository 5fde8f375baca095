// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It builds the backend selected by configuration, logs in, and on the sync
// backend optionally starts a session, subscribes to the configured targets
// and runs notification workers until the process is signalled or the
// connection is lost. On the HTTP backend it verifies the credentials with
// a single call and exits.
package client
