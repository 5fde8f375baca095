// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
	"github.com/gorilla/websocket"
)

const (
	maxMessageSize = 4 << 20
	inboundBuffer  = 64
	closeGrace     = time.Second
)

// Transport is one duplex frame channel to the sync server.
//
// Send is safe for concurrent use; writes are serialized. Frames yields
// every inbound frame from a single read loop and is closed when the loop
// exits. Close is idempotent and unblocks pending reads and writes.
type Transport interface {
	Send(ctx context.Context, f Frame) error
	Frames() <-chan Frame
	// Done is closed once the transport has stopped.
	Done() <-chan struct{}
	// Err reports why the transport stopped, or nil while it runs.
	Err() error
	Close() error
}

// Dialer opens a Transport. DialWebSocket is the production Dialer.
type Dialer func(ctx context.Context, settings Settings, log *logger.Logger) (Transport, error)

type wsTransport struct {
	conn     *websocket.Conn
	settings Settings
	frames   chan Frame

	writeMu sync.Mutex

	done      chan struct{}
	closeOnce sync.Once
	errMu     sync.Mutex
	err       error

	logger *logger.Logger
}

// DialWebSocket connects to settings.Address and starts the read loop and,
// when PingInterval is set, the keep-alive loop. Failures wrap
// adapter.ErrConnection.
func DialWebSocket(ctx context.Context, settings Settings, log *logger.Logger) (Transport, error) {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: settings.HandshakeTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, settings.Address, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("%w: dial %s: status %d: %w", adapter.ErrConnection, settings.Address, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("%w: dial %s: %w", adapter.ErrConnection, settings.Address, err)
	}

	t := &wsTransport{
		conn:     conn,
		settings: settings,
		frames:   make(chan Frame, inboundBuffer),
		done:     make(chan struct{}),
		logger:   log,
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetPongHandler(func(string) error {
		t.extendReadDeadline()
		return nil
	})
	t.extendReadDeadline()

	go t.readLoop()
	if settings.PingInterval > 0 {
		go t.pingLoop()
	}

	log.Debug().Str("address", settings.Address).Msg("sync transport connected")
	return t, nil
}

func (t *wsTransport) Frames() <-chan Frame {
	return t.frames
}

func (t *wsTransport) Done() <-chan struct{} {
	return t.done
}

func (t *wsTransport) Err() error {
	t.errMu.Lock()
	defer t.errMu.Unlock()
	return t.err
}

// Send writes f as one text message. A failed write is fatal for the
// transport.
func (t *wsTransport) Send(ctx context.Context, f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("%w: encode frame: %w", adapter.ErrValidation, err)
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	select {
	case <-t.done:
		return t.closedError()
	default:
	}

	if err = t.conn.SetWriteDeadline(t.writeDeadline(ctx)); err != nil {
		return t.failWith(fmt.Errorf("%w: set write deadline: %w", adapter.ErrConnection, err))
	}
	if err = t.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return t.failWith(fmt.Errorf("%w: write: %w", adapter.ErrConnection, err))
	}

	return nil
}

// Close stops the transport. In-flight reads and writes return with an
// error once the underlying connection is closed.
func (t *wsTransport) Close() error {
	t.fail(nil)
	return nil
}

func (t *wsTransport) readLoop() {
	defer close(t.frames)

	for {
		messageType, data, err := t.conn.ReadMessage()
		if err != nil {
			t.fail(t.readError(err))
			return
		}
		t.extendReadDeadline()

		if messageType != websocket.TextMessage {
			t.fail(fmt.Errorf("%w: unexpected message type %d", adapter.ErrProtocol, messageType))
			return
		}

		var f Frame
		if err = json.Unmarshal(data, &f); err != nil {
			t.fail(fmt.Errorf("%w: decode frame: %w", adapter.ErrProtocol, err))
			return
		}

		select {
		case t.frames <- f:
		case <-t.done:
			return
		}
	}
}

func (t *wsTransport) pingLoop() {
	ticker := time.NewTicker(t.settings.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(t.settings.WriteTimeout)
			if t.settings.WriteTimeout <= 0 {
				deadline = time.Now().Add(t.settings.PingInterval)
			}
			if err := t.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				t.fail(fmt.Errorf("%w: ping: %w", adapter.ErrConnection, err))
				return
			}
		}
	}
}

func (t *wsTransport) readError(err error) error {
	select {
	case <-t.done:
		return nil
	default:
	}

	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return fmt.Errorf("%w: closed by server: %w", adapter.ErrConnectionClosed, err)
	}
	return fmt.Errorf("%w: read: %w", adapter.ErrConnection, err)
}

func (t *wsTransport) extendReadDeadline() {
	if t.settings.ReadTimeout <= 0 {
		return
	}
	_ = t.conn.SetReadDeadline(time.Now().Add(t.settings.ReadTimeout))
}

func (t *wsTransport) writeDeadline(ctx context.Context) time.Time {
	var deadline time.Time
	if t.settings.WriteTimeout > 0 {
		deadline = time.Now().Add(t.settings.WriteTimeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	return deadline
}

// failWith stops the transport with cause and returns the error reported to
// the sender.
func (t *wsTransport) failWith(cause error) error {
	t.fail(cause)
	return t.closedError()
}

// fail records the first cause and tears the connection down. A nil cause
// is a local Close.
func (t *wsTransport) fail(cause error) {
	t.closeOnce.Do(func() {
		t.errMu.Lock()
		t.err = cause
		if t.err == nil {
			t.err = adapter.ErrConnectionClosed
		}
		t.errMu.Unlock()

		close(t.done)

		if cause != nil {
			t.logger.Error().Err(cause).Str("address", t.settings.Address).Msg("sync transport failed")
		}

		_ = t.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeGrace))
		_ = t.conn.Close()
	})
}

func (t *wsTransport) closedError() error {
	err := t.Err()
	if err == nil {
		return adapter.ErrConnectionClosed
	}
	if errors.Is(err, adapter.ErrConnectionClosed) {
		return err
	}
	return fmt.Errorf("%w: %w", adapter.ErrConnectionClosed, err)
}
