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
	methodAPIKeyNew         = "apikey.new"
	methodAPIKeyGet         = "apikey.get"
	methodAPIKeyGetOne      = "apikey.get_one"
	methodAPIKeyUpdate      = "apikey.update_description"
	methodAPIKeyDelete      = "apikey.delete"
	methodAPIKeyAuthorize   = "apikey.authorize"
	methodAPIKeyDeauthorize = "apikey.deauthorize"
)

type apiKeyService struct {
	remote
}

func NewAPIKeyService(serverAdapter adapter.ServerAdapter, validator validators.Validator) APIKeyService {
	return &apiKeyService{remote{adapter: serverAdapter, validator: validator}}
}

func (s *apiKeyService) New(ctx context.Context, req models.NewAPIKeyRequest) (models.APIKey, error) {
	return s.one(ctx, methodAPIKeyNew, req)
}

func (s *apiKeyService) Get(ctx context.Context) ([]models.APIKey, error) {
	var keys []models.APIKey
	if err := s.invoke(ctx, methodAPIKeyGet, nil, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *apiKeyService) GetOne(ctx context.Context, ref models.APIKeyRef) (models.APIKey, error) {
	return s.one(ctx, methodAPIKeyGetOne, ref)
}

func (s *apiKeyService) Update(ctx context.Context, req models.UpdateAPIKeyRequest) (models.APIKey, error) {
	return s.one(ctx, methodAPIKeyUpdate, req)
}

func (s *apiKeyService) Delete(ctx context.Context, ref models.APIKeyRef) error {
	return s.call(ctx, methodAPIKeyDelete, ref, nil)
}

func (s *apiKeyService) Authorize(ctx context.Context, req models.AuthorizeAPIKeyRequest) error {
	return s.call(ctx, methodAPIKeyAuthorize, req, nil)
}

func (s *apiKeyService) Deauthorize(ctx context.Context, req models.AuthorizeAPIKeyRequest) error {
	return s.call(ctx, methodAPIKeyDeauthorize, req, nil)
}

func (s *apiKeyService) one(ctx context.Context, method string, req any) (models.APIKey, error) {
	var key models.APIKey
	if err := s.call(ctx, method, req, &key); err != nil {
		return models.APIKey{}, err
	}
	return key, nil
}
