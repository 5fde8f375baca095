// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DataObjectState is the moderation state of a data object.
type DataObjectState string

const (
	StatePending   DataObjectState = "pending"
	StateModerated DataObjectState = "moderated"
	StateRejected  DataObjectState = "rejected"
)

// UpdateMethod selects how data.update applies the supplied fields.
type UpdateMethod string

const (
	// UpdateReplace overwrites the object; omitted fields are cleared.
	UpdateReplace UpdateMethod = "replace"
	// UpdateMerge changes only the supplied fields.
	UpdateMerge UpdateMethod = "merge"
)

// DataObject is a single record stored in a collection.
type DataObject struct {
	ID               string            `json:"id"`
	Key              string            `json:"key,omitempty"`
	Title            string            `json:"title,omitempty"`
	Text             string            `json:"text,omitempty"`
	Link             string            `json:"link,omitempty"`
	Folder           string            `json:"folder,omitempty"`
	State            DataObjectState   `json:"state,omitempty"`
	ParentID         string            `json:"parent_id,omitempty"`
	UserID           string            `json:"user_id,omitempty"`
	AdditionalFields map[string]string `json:"additional,omitempty"`
	CreatedAt        *time.Time        `json:"created_at,omitempty"`
	UpdatedAt        *time.Time        `json:"updated_at,omitempty"`
}

// NewDataObjectRequest carries the parameters of the data.new call.
type NewDataObjectRequest struct {
	CollectionRef
	DataKey          string            `json:"data_key,omitempty"`
	Title            string            `json:"title,omitempty"`
	Text             string            `json:"text,omitempty"`
	Link             string            `json:"link,omitempty"`
	Folder           string            `json:"folder,omitempty"`
	State            DataObjectState   `json:"state,omitempty"`
	ParentID         string            `json:"parent_id,omitempty"`
	AdditionalFields map[string]string `json:"additional,omitempty"`
}

// GetDataObjectsRequest carries the filter of the data.get and data.count
// calls.
type GetDataObjectsRequest struct {
	CollectionRef
	DataIDs []string        `json:"data_ids,omitempty"`
	State   DataObjectState `json:"state,omitempty"`
	Folders []string        `json:"folders,omitempty"`
	Limit   int             `json:"limit,omitempty"`
	OrderBy string          `json:"order_by,omitempty"`
}

// DataObjectRef identifies one data object by ID or by key.
type DataObjectRef struct {
	CollectionRef
	DataID  string `json:"data_id,omitempty"`
	DataKey string `json:"data_key,omitempty"`
}

// UpdateDataObjectRequest carries the parameters of the data.update call.
// Method is filled in by the service depending on whether Update or Merge
// was requested.
type UpdateDataObjectRequest struct {
	DataObjectRef
	Method           UpdateMethod      `json:"update_method"`
	Title            string            `json:"title,omitempty"`
	Text             string            `json:"text,omitempty"`
	Link             string            `json:"link,omitempty"`
	Folder           string            `json:"folder,omitempty"`
	State            DataObjectState   `json:"state,omitempty"`
	AdditionalFields map[string]string `json:"additional,omitempty"`
}

// DeleteDataObjectsRequest carries the filter of the data.delete call.
type DeleteDataObjectsRequest struct {
	CollectionRef
	DataIDs []string        `json:"data_ids,omitempty"`
	State   DataObjectState `json:"state,omitempty"`
	Folders []string        `json:"folders,omitempty"`
}
