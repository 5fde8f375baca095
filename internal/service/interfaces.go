// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service provides typed CRUD services over [adapter.ServerAdapter].
//
// Every service checks the required arguments of a request locally and
// fails with [adapter.ErrValidation] before any I/O. Everything else is
// passed to the backend unchanged, and backend rejections surface as
// [*adapter.ServerError]. Services hold no state of their own, so the same
// set works on either backend.
package service

import (
	"context"

	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// ProjectService manages projects of the logged-in instance.
type ProjectService interface {
	// New creates a project. The name is required.
	New(ctx context.Context, req models.NewProjectRequest) (models.Project, error)

	// Get lists every project of the instance.
	Get(ctx context.Context) ([]models.Project, error)

	// GetOne fetches a single project by ID.
	GetOne(ctx context.Context, ref models.ProjectRef) (models.Project, error)

	// Update changes the name and/or description of a project.
	Update(ctx context.Context, req models.UpdateProjectRequest) (models.Project, error)

	// Delete removes a project and everything it contains.
	Delete(ctx context.Context, ref models.ProjectRef) error
}

// CollectionService manages collections inside a project. Collections may be
// addressed either by ID or by key, never both.
type CollectionService interface {
	New(ctx context.Context, req models.NewCollectionRequest) (models.Collection, error)

	// Get lists the collections of a project, optionally filtered by status
	// and tags.
	Get(ctx context.Context, req models.GetCollectionsRequest) ([]models.Collection, error)

	GetOne(ctx context.Context, ref models.CollectionRef) (models.Collection, error)

	// Update requires at least one of name or description.
	Update(ctx context.Context, req models.UpdateCollectionRequest) (models.Collection, error)

	Delete(ctx context.Context, ref models.CollectionRef) error

	// Activate makes the collection accept new data objects.
	Activate(ctx context.Context, ref models.CollectionRef) (models.Collection, error)

	// Deactivate stops the collection from accepting new data objects.
	Deactivate(ctx context.Context, ref models.CollectionRef) (models.Collection, error)
}

// FolderService manages folders of a collection.
type FolderService interface {
	New(ctx context.Context, req models.FolderRequest) (models.Folder, error)
	Get(ctx context.Context, ref models.CollectionRef) ([]models.Folder, error)
	GetOne(ctx context.Context, req models.FolderRequest) (models.Folder, error)
	Update(ctx context.Context, req models.UpdateFolderRequest) (models.Folder, error)
	Delete(ctx context.Context, req models.FolderRequest) error
}

// DataObjectService manages the data objects stored in a collection.
type DataObjectService interface {
	// New stores a data object. State defaults to pending on the backend.
	New(ctx context.Context, req models.NewDataObjectRequest) (models.DataObject, error)

	// Get returns the data objects matching the filter.
	Get(ctx context.Context, req models.GetDataObjectsRequest) ([]models.DataObject, error)

	// GetOne fetches a single data object by ID or by key.
	GetOne(ctx context.Context, ref models.DataObjectRef) (models.DataObject, error)

	// Update overwrites the data object; fields left empty are cleared.
	Update(ctx context.Context, req models.UpdateDataObjectRequest) (models.DataObject, error)

	// Merge changes only the fields set in req.
	Merge(ctx context.Context, req models.UpdateDataObjectRequest) (models.DataObject, error)

	// Delete removes the data objects matching the filter.
	Delete(ctx context.Context, req models.DeleteDataObjectsRequest) error

	// Count returns the number of data objects matching the filter.
	Count(ctx context.Context, req models.GetDataObjectsRequest) (int, error)
}

// UserService manages end users of the instance.
type UserService interface {
	New(ctx context.Context, req models.NewUserRequest) (models.User, error)
	Get(ctx context.Context) ([]models.User, error)
	GetOne(ctx context.Context, ref models.UserRef) (models.User, error)

	// Update requires at least one of nick or password.
	Update(ctx context.Context, req models.UpdateUserRequest) (models.User, error)
	Delete(ctx context.Context, ref models.UserRef) error
}

// APIKeyService manages API keys and their per-project permissions.
type APIKeyService interface {
	// New creates an API key. Description is required; type defaults to
	// backend on the server.
	New(ctx context.Context, req models.NewAPIKeyRequest) (models.APIKey, error)

	Get(ctx context.Context) ([]models.APIKey, error)
	GetOne(ctx context.Context, ref models.APIKeyRef) (models.APIKey, error)

	// Update replaces the key's description. Nothing else can be changed.
	Update(ctx context.Context, req models.UpdateAPIKeyRequest) (models.APIKey, error)

	Delete(ctx context.Context, ref models.APIKeyRef) error

	// Authorize grants a permission to the key, optionally limited to a
	// project or collection.
	Authorize(ctx context.Context, req models.AuthorizeAPIKeyRequest) error

	// Deauthorize revokes a permission previously granted with Authorize.
	Deauthorize(ctx context.Context, req models.AuthorizeAPIKeyRequest) error
}

// AdministratorService manages administrators of the instance. New
// administrators are invited through the dashboard, so there is no New.
type AdministratorService interface {
	Get(ctx context.Context) ([]models.Administrator, error)
	GetOne(ctx context.Context, ref models.AdministratorRef) (models.Administrator, error)

	// Update assigns a different role to the administrator.
	Update(ctx context.Context, req models.UpdateAdministratorRequest) (models.Administrator, error)
	Delete(ctx context.Context, ref models.AdministratorRef) error
}
