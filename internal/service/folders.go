// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/internal/validators"
	"github.com/Syncano/syncano-dotnet-sub001/models"
)

const (
	methodFolderNew    = "folder.new"
	methodFolderGet    = "folder.get"
	methodFolderGetOne = "folder.get_one"
	methodFolderUpdate = "folder.update"
	methodFolderDelete = "folder.delete"
)

type folderService struct {
	remote
}

func NewFolderService(serverAdapter adapter.ServerAdapter, validator validators.Validator) FolderService {
	return &folderService{remote{adapter: serverAdapter, validator: validator}}
}

func (s *folderService) New(ctx context.Context, req models.FolderRequest) (models.Folder, error) {
	return s.one(ctx, methodFolderNew, req)
}

func (s *folderService) Get(ctx context.Context, ref models.CollectionRef) ([]models.Folder, error) {
	var folders []models.Folder
	if err := s.call(ctx, methodFolderGet, ref, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (s *folderService) GetOne(ctx context.Context, req models.FolderRequest) (models.Folder, error) {
	return s.one(ctx, methodFolderGetOne, req)
}

func (s *folderService) Update(ctx context.Context, req models.UpdateFolderRequest) (models.Folder, error) {
	return s.one(ctx, methodFolderUpdate, req)
}

func (s *folderService) Delete(ctx context.Context, req models.FolderRequest) error {
	return s.call(ctx, methodFolderDelete, req, nil)
}

func (s *folderService) one(ctx context.Context, method string, req any) (models.Folder, error) {
	var folder models.Folder
	if err := s.call(ctx, method, req, &folder); err != nil {
		return models.Folder{}, err
	}
	return folder, nil
}
