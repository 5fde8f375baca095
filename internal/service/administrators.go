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
	methodAdminGet    = "admin.get"
	methodAdminGetOne = "admin.get_one"
	methodAdminUpdate = "admin.update"
	methodAdminDelete = "admin.delete"
)

type administratorService struct {
	remote
}

func NewAdministratorService(serverAdapter adapter.ServerAdapter, validator validators.Validator) AdministratorService {
	return &administratorService{remote{adapter: serverAdapter, validator: validator}}
}

func (s *administratorService) Get(ctx context.Context) ([]models.Administrator, error) {
	var admins []models.Administrator
	if err := s.invoke(ctx, methodAdminGet, nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *administratorService) GetOne(ctx context.Context, ref models.AdministratorRef) (models.Administrator, error) {
	return s.one(ctx, methodAdminGetOne, ref)
}

func (s *administratorService) Update(ctx context.Context, req models.UpdateAdministratorRequest) (models.Administrator, error) {
	return s.one(ctx, methodAdminUpdate, req)
}

func (s *administratorService) Delete(ctx context.Context, ref models.AdministratorRef) error {
	return s.call(ctx, methodAdminDelete, ref, nil)
}

func (s *administratorService) one(ctx context.Context, method string, req any) (models.Administrator, error) {
	var admin models.Administrator
	if err := s.call(ctx, method, req, &admin); err != nil {
		return models.Administrator{}, err
	}
	return admin, nil
}
