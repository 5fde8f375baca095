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
	methodProjectNew    = "project.new"
	methodProjectGet    = "project.get"
	methodProjectGetOne = "project.get_one"
	methodProjectUpdate = "project.update"
	methodProjectDelete = "project.delete"
)

type projectService struct {
	remote
}

func NewProjectService(serverAdapter adapter.ServerAdapter, validator validators.Validator) ProjectService {
	return &projectService{remote{adapter: serverAdapter, validator: validator}}
}

func (s *projectService) New(ctx context.Context, req models.NewProjectRequest) (models.Project, error) {
	var project models.Project
	if err := s.call(ctx, methodProjectNew, req, &project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *projectService) Get(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.invoke(ctx, methodProjectGet, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *projectService) GetOne(ctx context.Context, ref models.ProjectRef) (models.Project, error) {
	var project models.Project
	if err := s.call(ctx, methodProjectGetOne, ref, &project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, req models.UpdateProjectRequest) (models.Project, error) {
	var project models.Project
	if err := s.call(ctx, methodProjectUpdate, req, &project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, ref models.ProjectRef) error {
	return s.call(ctx, methodProjectDelete, ref, nil)
}
