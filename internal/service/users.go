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
	methodUserNew    = "user.new"
	methodUserGet    = "user.get"
	methodUserGetOne = "user.get_one"
	methodUserUpdate = "user.update"
	methodUserDelete = "user.delete"
)

type userService struct {
	remote
}

func NewUserService(serverAdapter adapter.ServerAdapter, validator validators.Validator) UserService {
	return &userService{remote{adapter: serverAdapter, validator: validator}}
}

func (s *userService) New(ctx context.Context, req models.NewUserRequest) (models.User, error) {
	return s.one(ctx, methodUserNew, req)
}

func (s *userService) Get(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.invoke(ctx, methodUserGet, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) GetOne(ctx context.Context, ref models.UserRef) (models.User, error) {
	return s.one(ctx, methodUserGetOne, ref)
}

func (s *userService) Update(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	return s.one(ctx, methodUserUpdate, req)
}

func (s *userService) Delete(ctx context.Context, ref models.UserRef) error {
	return s.call(ctx, methodUserDelete, ref, nil)
}

func (s *userService) one(ctx context.Context, method string, req any) (models.User, error) {
	var user models.User
	if err := s.call(ctx, method, req, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
