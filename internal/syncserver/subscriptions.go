// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/internal/validators"
	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// SubscribeProject subscribes to every notification of a project. ctx
// defaults to models.ContextConnection when empty.
func (c *Client) SubscribeProject(ctx context.Context, projectID string, sctx models.SubscriptionContext) (bool, error) {
	return c.subscribe(ctx, methodProjectSubscribe, models.ProjectTarget(projectID), sctx,
		validators.FieldProjectID, validators.FieldContext)
}

// UnsubscribeProject removes a project subscription. Removing a scope that
// is not live is a no-op locally; the server still decides the result.
func (c *Client) UnsubscribeProject(ctx context.Context, projectID string, sctx models.SubscriptionContext) (bool, error) {
	return c.unsubscribe(ctx, methodProjectUnsubscribe, models.ProjectTarget(projectID), sctx,
		validators.FieldProjectID, validators.FieldContext)
}

// SubscribeCollection subscribes to the notifications of one collection.
// Exactly one of ref.CollectionID and ref.CollectionKey must be set.
func (c *Client) SubscribeCollection(ctx context.Context, ref models.CollectionRef, sctx models.SubscriptionContext) (bool, error) {
	return c.subscribe(ctx, methodCollectionSubscribe, models.CollectionTarget(ref), sctx,
		validators.FieldProjectID, validators.FieldCollection, validators.FieldContext)
}

// UnsubscribeCollection removes a collection subscription.
func (c *Client) UnsubscribeCollection(ctx context.Context, ref models.CollectionRef, sctx models.SubscriptionContext) (bool, error) {
	return c.unsubscribe(ctx, methodCollectionUnsubscribe, models.CollectionTarget(ref), sctx,
		validators.FieldProjectID, validators.FieldCollection, validators.FieldContext)
}

func (c *Client) subscribe(ctx context.Context, method string, target models.Target, sctx models.SubscriptionContext, fields ...string) (bool, error) {
	key, payload, err := c.prepareSubscription(ctx, target, sctx, fields...)
	if err != nil {
		return false, err
	}

	added := false
	resp, err := c.roundTrip(ctx, FrameCall, method, payload, func(resp json.RawMessage) {
		if ok, _ := decodeAck(resp); ok {
			added = c.registry.add(key)
		}
	})
	if err != nil {
		return false, err
	}

	ack, err := decodeAck(resp)
	if err != nil {
		return false, c.protocolViolation(err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("project_id", key.target.ProjectID).
		Str("context", string(key.context)).
		Bool("acknowledged", ack).
		Bool("new_scope", added).
		Msg("subscribed")
	return ack, nil
}

func (c *Client) unsubscribe(ctx context.Context, method string, target models.Target, sctx models.SubscriptionContext, fields ...string) (bool, error) {
	key, payload, err := c.prepareSubscription(ctx, target, sctx, fields...)
	if err != nil {
		return false, err
	}

	removed := false
	resp, err := c.roundTrip(ctx, FrameCall, method, payload, func(resp json.RawMessage) {
		if ok, _ := decodeAck(resp); ok {
			removed = c.registry.remove(key)
		}
	})
	if err != nil {
		return false, err
	}

	ack, err := decodeAck(resp)
	if err != nil {
		return false, c.protocolViolation(err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("project_id", key.target.ProjectID).
		Str("context", string(key.context)).
		Bool("acknowledged", ack).
		Bool("scope_removed", removed).
		Msg("unsubscribed")
	return ack, nil
}

// prepareSubscription validates the arguments and the connection state
// without any I/O and builds the request payload.
func (c *Client) prepareSubscription(ctx context.Context, target models.Target, sctx models.SubscriptionContext, fields ...string) (scopeKey, json.RawMessage, error) {
	key := newScopeKey(target, sctx)

	sub := models.Subscription{Target: key.target, Context: sctx}
	if err := c.validator.Validate(ctx, sub, fields...); err != nil {
		return key, nil, adapter.NewValidationError(err)
	}
	if err := c.checkState(true); err != nil {
		return key, nil, err
	}
	if key.context == models.ContextSession {
		if _, ok := c.Session(); !ok {
			return key, nil, fmt.Errorf("%w: %w", adapter.ErrValidation, ErrNoSession)
		}
	}

	payload, err := encodePayload(subscriptionParams{
		ProjectID:     key.target.ProjectID,
		CollectionID:  key.target.CollectionID,
		CollectionKey: key.target.CollectionKey,
		Context:       key.context,
	})
	return key, payload, err
}
