// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/internal/validators"
)

// Services groups the CRUD services bound to one backend.
type Services struct {
	Projects       ProjectService
	Collections    CollectionService
	Folders        FolderService
	DataObjects    DataObjectService
	Users          UserService
	APIKeys        APIKeyService
	Administrators AdministratorService
}

func NewServices(serverAdapter adapter.ServerAdapter) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		Projects:       NewProjectService(serverAdapter, validator),
		Collections:    NewCollectionService(serverAdapter, validator),
		Folders:        NewFolderService(serverAdapter, validator),
		DataObjects:    NewDataObjectService(serverAdapter, validator),
		Users:          NewUserService(serverAdapter, validator),
		APIKeys:        NewAPIKeyService(serverAdapter, validator),
		Administrators: NewAdministratorService(serverAdapter, validator),
	}
}
