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
	methodDataNew    = "data.new"
	methodDataGet    = "data.get"
	methodDataGetOne = "data.get_one"
	methodDataUpdate = "data.update"
	methodDataDelete = "data.delete"
	methodDataCount  = "data.count"
)

type countResult struct {
	Count int `json:"count"`
}

type dataObjectService struct {
	remote
}

func NewDataObjectService(serverAdapter adapter.ServerAdapter, validator validators.Validator) DataObjectService {
	return &dataObjectService{remote{adapter: serverAdapter, validator: validator}}
}

func (s *dataObjectService) New(ctx context.Context, req models.NewDataObjectRequest) (models.DataObject, error) {
	return s.one(ctx, methodDataNew, req)
}

func (s *dataObjectService) Get(ctx context.Context, req models.GetDataObjectsRequest) ([]models.DataObject, error) {
	var objects []models.DataObject
	if err := s.call(ctx, methodDataGet, req, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}

func (s *dataObjectService) GetOne(ctx context.Context, ref models.DataObjectRef) (models.DataObject, error) {
	return s.one(ctx, methodDataGetOne, ref)
}

func (s *dataObjectService) Update(ctx context.Context, req models.UpdateDataObjectRequest) (models.DataObject, error) {
	req.Method = models.UpdateReplace
	return s.one(ctx, methodDataUpdate, req)
}

func (s *dataObjectService) Merge(ctx context.Context, req models.UpdateDataObjectRequest) (models.DataObject, error) {
	req.Method = models.UpdateMerge
	return s.one(ctx, methodDataUpdate, req)
}

func (s *dataObjectService) Delete(ctx context.Context, req models.DeleteDataObjectsRequest) error {
	return s.call(ctx, methodDataDelete, req, nil)
}

// Count ignores Limit and OrderBy of the filter.
func (s *dataObjectService) Count(ctx context.Context, req models.GetDataObjectsRequest) (int, error) {
	req.Limit, req.OrderBy = 0, ""

	var res countResult
	if err := s.call(ctx, methodDataCount, req, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

func (s *dataObjectService) one(ctx context.Context, method string, req any) (models.DataObject, error) {
	var object models.DataObject
	if err := s.call(ctx, method, req, &object); err != nil {
		return models.DataObject{}, err
	}
	return object, nil
}
