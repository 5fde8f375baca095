// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SubscriptionContext binds a subscription's lifetime either to the raw
// connection or to the authenticated session layered on top of it.
type SubscriptionContext string

const (
	ContextConnection SubscriptionContext = "connection"
	ContextSession    SubscriptionContext = "session"
)

// OrDefault returns ContextConnection for the zero value.
func (c SubscriptionContext) OrDefault() SubscriptionContext {
	if c == "" {
		return ContextConnection
	}
	return c
}

// Valid reports whether c is a known context.
func (c SubscriptionContext) Valid() bool {
	return c == ContextConnection || c == ContextSession
}

// Target addresses a node in the project ⊃ collection ⊃ data object
// hierarchy. A project-level target has only ProjectID set.
type Target struct {
	ProjectID     string `json:"project_id"`
	CollectionID  string `json:"collection_id,omitempty"`
	CollectionKey string `json:"collection_key,omitempty"`
	DataID        string `json:"data_id,omitempty"`
}

// ProjectTarget returns the project-level target for projectID.
func ProjectTarget(projectID string) Target {
	return Target{ProjectID: projectID}
}

// CollectionTarget returns the collection-level target for ref.
func CollectionTarget(ref CollectionRef) Target {
	return Target{
		ProjectID:     ref.ProjectID,
		CollectionID:  ref.CollectionID,
		CollectionKey: ref.CollectionKey,
	}
}

// IsProject reports whether t addresses a whole project.
func (t Target) IsProject() bool {
	return t.CollectionID == "" && t.CollectionKey == "" && t.DataID == ""
}

// NotificationKind is the kind of change a notification describes.
type NotificationKind string

const (
	NotificationNew    NotificationKind = "new"
	NotificationChange NotificationKind = "change"
	NotificationDelete NotificationKind = "delete"
)

// NotificationEnvelope is one pushed change delivered to observers.
// Envelopes are transient: they are dispatched once per arrival and never
// stored.
type NotificationEnvelope struct {
	Kind       NotificationKind `json:"kind"`
	Target     Target           `json:"target"`
	Data       *DataObject      `json:"data,omitempty"`
	ReceivedAt time.Time        `json:"-"`
}

// Session is issued by a successful StartSession and lives no longer than
// the connection that created it.
type Session struct {
	ID        string
	Timezone  string
	StartedAt time.Time
}
