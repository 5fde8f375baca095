// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Project is the top-level container of application data on the backend.
// A project owns collections, which in turn own folders and data objects.
type Project struct {
	// ID is the backend-assigned identifier of the project.
	ID string `json:"id"`

	// Name is the human-readable project name. Required on creation.
	Name string `json:"name"`

	// Description is an optional free-form description.
	Description string `json:"description,omitempty"`

	// CreatedAt is the timestamp when the project was created.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// NewProjectRequest carries the parameters of the project.new call.
type NewProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProjectRequest carries the parameters of the project.update call.
// Empty optional fields are left unchanged by the backend.
type UpdateProjectRequest struct {
	ProjectID   string `json:"project_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectRef identifies one project.
type ProjectRef struct {
	ProjectID string `json:"project_id"`
}
