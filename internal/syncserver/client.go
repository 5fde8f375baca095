// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
	"github.com/Syncano/syncano-dotnet-sub001/internal/validators"
	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// State is the lifecycle stage of a Client.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateAuthenticated
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateAuthenticated:
		return "authenticated"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Client is the sync server client. It implements adapter.ServerAdapter, so
// the CRUD services run over it unchanged, and adds sessions, subscriptions
// and notification observers.
//
// All methods are safe for concurrent use.
type Client struct {
	settings  Settings
	dial      Dialer
	validator validators.Validator
	logger    *logger.Logger

	// mu guards state, transport and session. state is the single source of
	// truth for fail-fast checks.
	mu        sync.Mutex
	state     State
	transport Transport
	session   *models.Session

	pending    *correlator
	registry   *registry
	dispatcher *dispatcher

	closeOnce sync.Once
	done      chan struct{}
	cause     error
}

var _ adapter.ServerAdapter = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithDialer replaces the websocket dialer.
func WithDialer(d Dialer) Option {
	return func(c *Client) {
		c.dial = d
	}
}

// WithValidator replaces the argument validator.
func WithValidator(v validators.Validator) Option {
	return func(c *Client) {
		c.validator = v
	}
}

// New returns a disconnected Client.
func New(settings Settings, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		settings:   settings,
		dial:       DialWebSocket,
		validator:  validators.NewSubscriptionValidator(),
		logger:     log,
		state:      StateDisconnected,
		pending:    newCorrelator(),
		registry:   newRegistry(),
		dispatcher: newDispatcher(settings.ObserverBuffer, log),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle stage.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done is closed when the client reaches StateClosed.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Err returns the reason the client closed, nil for an explicit Close or
// while it is open.
func (c *Client) Err() error {
	select {
	case <-c.done:
		return c.cause
	default:
		return nil
	}
}

// Session returns the active session, if any.
func (c *Client) Session() (models.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return models.Session{}, false
	}
	return *c.session, true
}

// Connect opens the transport. On failure the client returns to
// StateDisconnected and Connect may be retried; a closed client cannot
// reconnect.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateClosed:
		c.mu.Unlock()
		return adapter.ErrConnectionClosed
	case StateConnecting, StateConnected, StateAuthenticated:
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.state = StateConnecting
	c.mu.Unlock()

	if c.settings.HandshakeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.settings.HandshakeTimeout)
		defer cancel()
	}

	t, err := c.dial(ctx, c.settings, c.logger)
	if err != nil && !errors.Is(err, adapter.ErrConnection) {
		err = fmt.Errorf("%w: %w", adapter.ErrConnection, err)
	}

	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		if t != nil {
			_ = t.Close()
		}
		return adapter.ErrConnectionClosed
	}
	if err != nil {
		c.state = StateDisconnected
		c.mu.Unlock()
		c.logger.Error().Err(err).Str("address", c.settings.Address).Msg("connect failed")
		return err
	}
	c.transport = t
	c.state = StateConnected
	c.mu.Unlock()

	go c.readPump(t)

	c.logger.Info().Str("address", c.settings.Address).Msg("connected to sync server")
	return nil
}

// Close terminates the connection. Pending requests fail with
// adapter.ErrConnectionClosed and observers are closed. Close is idempotent.
func (c *Client) Close() error {
	c.shutdown(nil)
	return nil
}

// Call implements adapter.ServerAdapter by sending a call frame for method
// and decoding the response payload into result.
func (c *Client) Call(ctx context.Context, method string, params any, result any) error {
	if strings.TrimSpace(method) == "" {
		return fmt.Errorf("%w: method is required", adapter.ErrValidation)
	}
	payload, err := encodePayload(params)
	if err != nil {
		return err
	}

	resp, err := c.roundTrip(ctx, FrameCall, method, payload, nil)
	if err != nil {
		return err
	}

	if result == nil || len(resp) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp, result); err != nil {
		return c.protocolViolation(fmt.Errorf("%w: decode %s result: %w", adapter.ErrProtocol, method, err))
	}
	return nil
}

// ObserveNewData registers an observer of "new data object" notifications.
func (c *Client) ObserveNewData(opts ...ObserveOption) *Observer {
	return c.dispatcher.register([]models.NotificationKind{models.NotificationNew}, opts...)
}

// ObserveDataChanges registers an observer of data object updates.
func (c *Client) ObserveDataChanges(opts ...ObserveOption) *Observer {
	return c.dispatcher.register([]models.NotificationKind{models.NotificationChange}, opts...)
}

// ObserveDataDeletes registers an observer of data object removals.
func (c *Client) ObserveDataDeletes(opts ...ObserveOption) *Observer {
	return c.dispatcher.register([]models.NotificationKind{models.NotificationDelete}, opts...)
}

// ObserveAll registers an observer of every notification kind.
func (c *Client) ObserveAll(opts ...ObserveOption) *Observer {
	return c.dispatcher.register(nil, opts...)
}

// checkState fails fast without I/O when the client is closed or not yet
// connected, and with a validation error when authentication is required
// but missing.
func (c *Client) checkState(needAuth bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateClosed:
		return adapter.ErrConnectionClosed
	case StateDisconnected, StateConnecting:
		return fmt.Errorf("%w: %w", adapter.ErrConnection, ErrNotConnected)
	case StateConnected:
		if needAuth {
			return fmt.Errorf("%w: %w", adapter.ErrValidation, ErrNotAuthenticated)
		}
	}
	return nil
}

// roundTrip sends one request frame and waits for its response. Without a
// caller deadline RequestTimeout applies. On timeout the request is
// abandoned locally; nothing is sent to the server.
func (c *Client) roundTrip(ctx context.Context, typ FrameType, method string, payload json.RawMessage, onComplete func(json.RawMessage)) (json.RawMessage, error) {
	c.mu.Lock()
	state, t := c.state, c.transport
	c.mu.Unlock()

	switch state {
	case StateClosed:
		return nil, adapter.ErrConnectionClosed
	case StateDisconnected, StateConnecting:
		return nil, fmt.Errorf("%w: %w", adapter.ErrConnection, ErrNotConnected)
	}

	if _, ok := ctx.Deadline(); !ok && c.settings.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.settings.RequestTimeout)
		defer cancel()
	}

	p, err := c.pending.issue(method, onComplete)
	if err != nil {
		return nil, err
	}

	log := c.logger.With().Uint64("request_id", p.id).Str("type", string(typ)).Str("method", method).Logger()
	log.Debug().Msg("request sent")

	err = t.Send(ctx, Frame{Type: typ, RequestID: p.id, Method: method, Payload: payload})
	if err != nil {
		if !c.pending.abandon(p.id) {
			res := <-p.done
			return res.payload, res.err
		}
		return nil, err
	}

	select {
	case res := <-p.done:
		log.Debug().Dur("elapsed", time.Since(p.issuedAt)).Err(res.err).Msg("response received")
		return res.payload, res.err
	case <-ctx.Done():
		if !c.pending.abandon(p.id) {
			res := <-p.done
			return res.payload, res.err
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Warn().Dur("elapsed", time.Since(p.issuedAt)).Msg("request timed out")
			return nil, fmt.Errorf("%w: %s request %d: %w", adapter.ErrTimeout, typ, p.id, ctx.Err())
		}
		return nil, ctx.Err()
	}
}

// readPump is the single consumer of t.Frames.
func (c *Client) readPump(t Transport) {
	for f := range t.Frames() {
		if err := c.handleFrame(f); err != nil {
			c.shutdown(err)
			return
		}
	}
	c.shutdown(t.Err())
}

func (c *Client) handleFrame(f Frame) error {
	switch f.Type {
	case FrameResponse:
		if f.RequestID == 0 {
			return fmt.Errorf("%w: response without request id", adapter.ErrProtocol)
		}
		var ok bool
		if f.Error != nil {
			ok = c.pending.fail(f.RequestID, f.Error)
		} else {
			ok = c.pending.complete(f.RequestID, f.Payload)
		}
		if !ok {
			c.logger.Debug().Uint64("request_id", f.RequestID).Msg("response for unknown or abandoned request dropped")
		}
		return nil

	case FrameNotification:
		n, err := decodeNotification(f)
		if err != nil {
			return err
		}
		env := models.NotificationEnvelope{
			Kind:       n.Kind,
			Target:     n.Target,
			Data:       n.Data,
			ReceivedAt: time.Now(),
		}
		c.dispatcher.dispatch(env, c.registry.matching(n.Target))
		return nil

	case FramePing:
		return nil

	default:
		return fmt.Errorf("%w: unexpected frame type %q", adapter.ErrProtocol, f.Type)
	}
}

// protocolViolation closes the connection because of a response payload
// that does not match its request, and returns err to the caller.
func (c *Client) protocolViolation(err error) error {
	c.shutdown(err)
	return err
}

// shutdown moves the client to StateClosed exactly once and releases
// everything owned by the connection. A nil cause is an explicit Close.
func (c *Client) shutdown(cause error) {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		prev := c.state
		c.state = StateClosed
		t := c.transport
		c.session = nil
		c.mu.Unlock()

		// A plain ErrConnectionClosed is the transport reporting a local Close.
		if cause == adapter.ErrConnectionClosed {
			cause = nil
		}
		c.cause = cause

		if t != nil {
			_ = t.Close()
		}

		closedErr := adapter.ErrConnectionClosed
		if cause != nil && !errors.Is(cause, adapter.ErrConnectionClosed) {
			closedErr = fmt.Errorf("%w: %w", adapter.ErrConnectionClosed, cause)
		} else if cause != nil {
			closedErr = cause
		}

		failed := c.pending.failAll(closedErr)
		c.registry.clear()
		c.dispatcher.closeAll(closedErr)

		event := c.logger.Info()
		if cause != nil {
			event = c.logger.Error().Err(cause)
		}
		event.
			Str("previous_state", prev.String()).
			Int("failed_requests", failed).
			Msg("sync connection closed")

		close(c.done)
	})
}
