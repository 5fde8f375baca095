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
	methodCollectionNew        = "collection.new"
	methodCollectionGet        = "collection.get"
	methodCollectionGetOne     = "collection.get_one"
	methodCollectionUpdate     = "collection.update"
	methodCollectionDelete     = "collection.delete"
	methodCollectionActivate   = "collection.activate"
	methodCollectionDeactivate = "collection.deactivate"
)

type collectionService struct {
	remote
}

func NewCollectionService(serverAdapter adapter.ServerAdapter, validator validators.Validator) CollectionService {
	return &collectionService{remote{adapter: serverAdapter, validator: validator}}
}

func (s *collectionService) New(ctx context.Context, req models.NewCollectionRequest) (models.Collection, error) {
	return s.one(ctx, methodCollectionNew, req)
}

func (s *collectionService) Get(ctx context.Context, req models.GetCollectionsRequest) ([]models.Collection, error) {
	var collections []models.Collection
	if err := s.call(ctx, methodCollectionGet, req, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

func (s *collectionService) GetOne(ctx context.Context, ref models.CollectionRef) (models.Collection, error) {
	return s.one(ctx, methodCollectionGetOne, ref)
}

func (s *collectionService) Update(ctx context.Context, req models.UpdateCollectionRequest) (models.Collection, error) {
	return s.one(ctx, methodCollectionUpdate, req)
}

func (s *collectionService) Delete(ctx context.Context, ref models.CollectionRef) error {
	return s.call(ctx, methodCollectionDelete, ref, nil)
}

func (s *collectionService) Activate(ctx context.Context, ref models.CollectionRef) (models.Collection, error) {
	return s.one(ctx, methodCollectionActivate, ref)
}

func (s *collectionService) Deactivate(ctx context.Context, ref models.CollectionRef) (models.Collection, error) {
	return s.one(ctx, methodCollectionDeactivate, ref)
}

func (s *collectionService) one(ctx context.Context, method string, req any) (models.Collection, error) {
	var collection models.Collection
	if err := s.call(ctx, method, req, &collection); err != nil {
		return models.Collection{}, err
	}
	return collection, nil
}
