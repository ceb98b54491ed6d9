package services

import (
	"context"
	"errors"
	"strings"

	"termdex/internal/models"
	"termdex/internal/repositories"
)

type TermService struct {
	terms    repositories.TermStore
	projects repositories.ProjectStore
}

func NewTermService(terms repositories.TermStore, projects repositories.ProjectStore) *TermService {
	return &TermService{terms: terms, projects: projects}
}

type CreateTermRequest struct {
	Term        string
	Description string
	ProjectID   *int64
	ExtraTags   *string
}

type UpdateTermRequest struct {
	ID          *int64
	Term        string
	Description string
	ProjectID   *int64
	ExtraTags   *string
}

func (s *TermService) Search(ctx context.Context, filter repositories.TermFilter) ([]models.Term, error) {
	return s.terms.Search(ctx, filter)
}

func (s *TermService) Create(ctx context.Context, req CreateTermRequest) (*models.Term, error) {
	headword := strings.TrimSpace(req.Term)
	if headword == "" {
		return nil, ErrMissingTerm
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrMissingTermDescription
	}
	if err := s.checkProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	term := &models.Term{
		Term:        headword,
		Description: description,
		ProjectID:   req.ProjectID,
		ExtraTags:   req.ExtraTags,
	}

	if err := s.terms.Create(ctx, term); err != nil {
		return nil, err
	}
	return s.terms.GetByID(ctx, term.ID)
}

// Update has full-replace semantics: omitted projectId and extraTags are
// stored as NULL.
func (s *TermService) Update(ctx context.Context, req UpdateTermRequest) (*models.Term, error) {
	if req.ID == nil {
		return nil, ErrMissingID
	}
	headword := strings.TrimSpace(req.Term)
	if headword == "" {
		return nil, ErrMissingTerm
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrMissingTermDescription
	}
	if err := s.checkProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	term := &models.Term{
		ID:          *req.ID,
		Term:        headword,
		Description: description,
		ProjectID:   req.ProjectID,
		ExtraTags:   req.ExtraTags,
	}

	if err := s.terms.Update(ctx, term); err != nil {
		return nil, err
	}
	return s.terms.GetByID(ctx, term.ID)
}

func (s *TermService) Delete(ctx context.Context, id *int64) error {
	if id == nil {
		return ErrMissingID
	}
	return s.terms.Delete(ctx, *id)
}

// checkProject enforces the referential invariant at the API boundary: a
// non-nil projectId must name an existing project at the time it is set.
func (s *TermService) checkProject(ctx context.Context, projectID *int64) error {
	if projectID == nil {
		return nil
	}
	if _, err := s.projects.GetByID(ctx, *projectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUnknownProject
		}
		return err
	}
	return nil
}
