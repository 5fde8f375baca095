// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package syncserver implements the persistent-connection client of the
// Syncano sync server.
//
// One [Client] owns one websocket [Transport]. Callers issue requests
// concurrently; every request frame carries an identifier assigned by the
// request correlator and the single read loop routes each inbound frame
// either to the waiting caller or, for push notifications, through the
// subscription registry to every live [Observer].
//
// Connection lifecycle:
//
//	Disconnected -> Connecting -> Connected -> Authenticated -> Closed
//
// Closed is terminal. When the transport fails, the server sends a malformed
// frame, or Close is called, every pending request fails with
// adapter.ErrConnectionClosed, every subscription scope is dropped, every
// observer channel is closed, and later calls fail without network I/O.
// There is no automatic reconnect: build a new Client and subscribe again.
//
// Wire format: each websocket text message is one JSON [Frame].
package syncserver
