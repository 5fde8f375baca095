// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an end user of an instance. Users own data objects and can
// authenticate with user API keys.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"user_name"`
	Nick      string     `json:"nick,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// NewUserRequest carries the parameters of the user.new call.
type NewUserRequest struct {
	Name     string `json:"user_name"`
	Nick     string `json:"nick,omitempty"`
	Password string `json:"password,omitempty"`
}

// UserRef identifies a user by ID or by name. Exactly one must be set.
type UserRef struct {
	UserID   string `json:"user_id,omitempty"`
	UserName string `json:"user_name,omitempty"`
}

// UpdateUserRequest carries the parameters of the user.update call.
type UpdateUserRequest struct {
	UserRef
	Nick     string `json:"nick,omitempty"`
	Password string `json:"password,omitempty"`
}
