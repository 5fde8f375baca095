// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CollectionStatus reports whether a collection accepts reads and writes.
type CollectionStatus string

const (
	CollectionActive   CollectionStatus = "active"
	CollectionInactive CollectionStatus = "inactive"
)

// Collection groups data objects inside a project. A collection can be
// addressed either by its backend ID or by its user-defined Key.
type Collection struct {
	ID          string           `json:"id"`
	ProjectID   string           `json:"project_id,omitempty"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Key         string           `json:"key,omitempty"`
	Status      CollectionStatus `json:"status,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
}

// CollectionRef identifies a collection inside a project. Exactly one of
// CollectionID and CollectionKey must be set.
type CollectionRef struct {
	ProjectID     string `json:"project_id"`
	CollectionID  string `json:"collection_id,omitempty"`
	CollectionKey string `json:"collection_key,omitempty"`
}

// NewCollectionRequest carries the parameters of the collection.new call.
type NewCollectionRequest struct {
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Key         string `json:"key,omitempty"`
	Description string `json:"description,omitempty"`
}

// GetCollectionsRequest carries the parameters of the collection.get call.
type GetCollectionsRequest struct {
	ProjectID string           `json:"project_id"`
	Status    CollectionStatus `json:"status,omitempty"`
	WithTags  []string         `json:"with_tags,omitempty"`
}

// UpdateCollectionRequest carries the parameters of the collection.update
// call.
type UpdateCollectionRequest struct {
	CollectionRef
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}
