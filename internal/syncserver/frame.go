// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"encoding/json"
	"fmt"

	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// FrameType is the discriminator of a Frame.
type FrameType string

// Outbound frame types.
const (
	FrameAuth    FrameType = "auth"
	FrameSession FrameType = "session"
	FrameCall    FrameType = "call"
)

// Inbound frame types.
const (
	FrameResponse     FrameType = "response"
	FrameNotification FrameType = "notification"
	FramePing         FrameType = "ping"
)

// Subscription call methods.
const (
	methodProjectSubscribe      = "project.subscribe"
	methodProjectUnsubscribe    = "project.unsubscribe"
	methodCollectionSubscribe   = "collection.subscribe"
	methodCollectionUnsubscribe = "collection.unsubscribe"
)

// Frame is one websocket text message.
//
// Request frames carry a RequestID that is unique among the requests still
// pending on the connection; the matching response echoes it and carries
// either Payload or Error. Notification frames carry no RequestID.
type Frame struct {
	Type      FrameType            `json:"type"`
	RequestID uint64               `json:"request_id,omitempty"`
	Method    string               `json:"method,omitempty"`
	Payload   json.RawMessage      `json:"payload,omitempty"`
	Error     *adapter.ServerError `json:"error,omitempty"`
}

type authParams struct {
	APIKey   string `json:"api_key"`
	Instance string `json:"instance"`
}

type sessionParams struct {
	Timezone string `json:"timezone,omitempty"`
}

type sessionResult struct {
	SessionID string `json:"session_id"`
	Timezone  string `json:"timezone,omitempty"`
}

type subscriptionParams struct {
	ProjectID     string                     `json:"project_id"`
	CollectionID  string                     `json:"collection_id,omitempty"`
	CollectionKey string                     `json:"collection_key,omitempty"`
	Context       models.SubscriptionContext `json:"context"`
}

type notificationPayload struct {
	Kind   models.NotificationKind `json:"kind"`
	Target models.Target           `json:"target"`
	Data   *models.DataObject      `json:"data,omitempty"`
}

func encodePayload(params any) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("%w: encode params: %w", adapter.ErrValidation, err)
	}
	return data, nil
}

// decodeAck reads a subscription acknowledgement. An empty or null payload
// counts as acknowledged.
func decodeAck(payload json.RawMessage) (bool, error) {
	if len(payload) == 0 || string(payload) == "null" {
		return true, nil
	}
	var ack bool
	if err := json.Unmarshal(payload, &ack); err != nil {
		return false, fmt.Errorf("%w: decode acknowledgement: %w", adapter.ErrProtocol, err)
	}
	return ack, nil
}

func decodeNotification(f Frame) (notificationPayload, error) {
	var n notificationPayload
	if err := json.Unmarshal(f.Payload, &n); err != nil {
		return n, fmt.Errorf("%w: decode notification: %w", adapter.ErrProtocol, err)
	}
	switch n.Kind {
	case models.NotificationNew, models.NotificationChange, models.NotificationDelete:
	default:
		return n, fmt.Errorf("%w: unknown notification kind %q", adapter.ErrProtocol, n.Kind)
	}
	if n.Target.ProjectID == "" {
		return n, fmt.Errorf("%w: notification without project", adapter.ErrProtocol)
	}
	return n, nil
}
