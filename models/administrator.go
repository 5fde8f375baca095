// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Administrator is an account that manages an instance.
type Administrator struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	RoleID    string `json:"role_id,omitempty"`
}

// AdministratorRef identifies an administrator by ID or by e-mail. Exactly
// one must be set.
type AdministratorRef struct {
	AdminID    string `json:"admin_id,omitempty"`
	AdminEmail string `json:"admin_email,omitempty"`
}

// UpdateAdministratorRequest carries the parameters of the admin.update call.
type UpdateAdministratorRequest struct {
	AdministratorRef
	RoleID string `json:"role_id"`
}
