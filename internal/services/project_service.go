package services

import (
	"context"
	"strings"

	"termdex/internal/models"
	"termdex/internal/repositories"
)

type ProjectService struct {
	projects repositories.ProjectStore
}

func NewProjectService(projects repositories.ProjectStore) *ProjectService {
	return &ProjectService{projects: projects}
}

type CreateProjectRequest struct {
	Name        string
	Description *string
}

type UpdateProjectRequest struct {
	ID          *int64
	Name        string
	Description *string
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrMissingProjectName
	}

	project := &models.Project{
		Name:        name,
		Description: req.Description,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update replaces name and description entirely; an omitted description is
// stored as NULL, not left unchanged.
func (s *ProjectService) Update(ctx context.Context, req UpdateProjectRequest) (*models.Project, error) {
	if req.ID == nil {
		return nil, ErrMissingID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrMissingProjectName
	}

	project := &models.Project{
		ID:          *req.ID,
		Name:        name,
		Description: req.Description,
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete detaches every term referencing the project before removing it,
// so no dangling project ids survive.
func (s *ProjectService) Delete(ctx context.Context, id *int64) error {
	if id == nil {
		return ErrMissingID
	}
	return s.projects.DeleteWithDetach(ctx, *id)
}
