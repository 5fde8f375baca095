// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APIKeyType distinguishes backend keys from user keys.
type APIKeyType string

const (
	APIKeyBackend APIKeyType = "backend"
	APIKeyUser    APIKeyType = "user"
)

// Permission is a single grant that can be authorized on an API key.
type Permission string

const (
	PermissionReadData   Permission = "read_data"
	PermissionCreateData Permission = "create_data"
	PermissionUpdateData Permission = "update_data"
	PermissionDeleteData Permission = "delete_data"
	PermissionSubscribe  Permission = "subscribe"
)

// APIKey is a credential that can log in to the backend.
type APIKey struct {
	ID          string     `json:"id"`
	Key         string     `json:"api_key"`
	Description string     `json:"description,omitempty"`
	Type        APIKeyType `json:"type,omitempty"`
	RoleID      string     `json:"role_id,omitempty"`
}

// NewAPIKeyRequest carries the parameters of the apikey.new call.
type NewAPIKeyRequest struct {
	Description string     `json:"description"`
	Type        APIKeyType `json:"type,omitempty"`
	RoleID      string     `json:"role_id,omitempty"`
}

// UpdateAPIKeyRequest carries the parameters of the apikey.update_description
// call.
type UpdateAPIKeyRequest struct {
	APIClientID string `json:"api_client_id"`
	Description string `json:"description"`
}

// AuthorizeAPIKeyRequest carries the parameters of the apikey.authorize and
// apikey.deauthorize calls. ProjectID and CollectionID narrow the grant; when
// both are empty the grant is instance-wide.
type AuthorizeAPIKeyRequest struct {
	APIClientID  string     `json:"api_client_id"`
	Permission   Permission `json:"permission"`
	ProjectID    string     `json:"project_id,omitempty"`
	CollectionID string     `json:"collection_id,omitempty"`
}

// APIKeyRef identifies one API key by its client ID.
type APIKeyRef struct {
	APIClientID string `json:"api_client_id"`
}
