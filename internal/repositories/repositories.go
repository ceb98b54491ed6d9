package repositories

import (
	"context"
	"errors"

	"termdex/internal/models"
)

// ErrNotFound reports that the targeted row does not exist.
var ErrNotFound = errors.New("not found")

// TermFilter narrows a term search. Zero values mean "no filter".
type TermFilter struct {
	Query     string
	ProjectID *int64
	Tag       string
}

type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	DeleteWithDetach(ctx context.Context, id int64) error
}

type TermStore interface {
	Search(ctx context.Context, filter TermFilter) ([]models.Term, error)
	GetByID(ctx context.Context, id int64) (*models.Term, error)
	Create(ctx context.Context, term *models.Term) error
	Update(ctx context.Context, term *models.Term) error
	Delete(ctx context.Context, id int64) error
}
