// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// Login authenticates the connection. Empty arguments fail with
// adapter.ErrValidation before any I/O; a rejected key yields an
// *adapter.ServerError. Logging in again on an authenticated connection is
// allowed.
func (c *Client) Login(ctx context.Context, apiKey, instanceName string) error {
	creds := models.Credentials{
		APIKey:   strings.TrimSpace(apiKey),
		Instance: strings.TrimSpace(instanceName),
	}
	if err := c.validator.Validate(ctx, creds); err != nil {
		return adapter.NewValidationError(err)
	}
	if err := c.checkState(false); err != nil {
		return err
	}

	payload, err := encodePayload(authParams{APIKey: creds.APIKey, Instance: creds.Instance})
	if err != nil {
		return err
	}
	if _, err = c.roundTrip(ctx, FrameAuth, "", payload, nil); err != nil {
		return err
	}

	c.mu.Lock()
	if c.state == StateConnected {
		c.state = StateAuthenticated
	}
	c.mu.Unlock()

	c.logger.Info().Str("instance", creds.Instance).Msg("authenticated")
	return nil
}

// StartSession opens a session on an authenticated connection. timezone is
// an optional IANA name; unknown names fail with adapter.ErrValidation
// before any I/O. Starting a new session replaces the previous one and
// drops every session-scoped subscription.
func (c *Client) StartSession(ctx context.Context, timezone string) (models.Session, error) {
	req := models.SessionRequest{Timezone: timezone}
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Session{}, adapter.NewValidationError(err)
	}
	if err := c.checkState(true); err != nil {
		return models.Session{}, err
	}

	payload, err := encodePayload(sessionParams{Timezone: timezone})
	if err != nil {
		return models.Session{}, err
	}
	resp, err := c.roundTrip(ctx, FrameSession, "", payload, nil)
	if err != nil {
		return models.Session{}, err
	}

	var res sessionResult
	if err = json.Unmarshal(resp, &res); err != nil {
		return models.Session{}, c.protocolViolation(fmt.Errorf("%w: decode session: %w", adapter.ErrProtocol, err))
	}
	if res.SessionID == "" {
		return models.Session{}, c.protocolViolation(fmt.Errorf("%w: session without id", adapter.ErrProtocol))
	}

	session := models.Session{
		ID:        res.SessionID,
		Timezone:  timezone,
		StartedAt: time.Now(),
	}
	if res.Timezone != "" {
		session.Timezone = res.Timezone
	}

	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return models.Session{}, adapter.ErrConnectionClosed
	}
	previous := c.session
	c.session = &session
	c.mu.Unlock()

	if previous != nil {
		dropped := c.registry.dropContext(models.ContextSession)
		c.logger.Info().
			Str("previous_session", previous.ID).
			Int("dropped_scopes", dropped).
			Msg("session replaced")
	}

	c.logger.Info().Str("session", session.ID).Str("timezone", session.Timezone).Msg("session started")
	return session, nil
}
