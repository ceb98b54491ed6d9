package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"termdex/internal/models"
	"termdex/internal/repositories"
)

// fakeStore is an in-memory stand-in for both repositories, good enough
// to exercise service semantics including the detach-on-delete cascade.
type fakeStore struct {
	projects      map[int64]*models.Project
	terms         map[int64]*models.Term
	nextProjectID int64
	nextTermID    int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects: make(map[int64]*models.Project),
		terms:    make(map[int64]*models.Term),
	}
}

func (f *fakeStore) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	for _, p := range f.projects {
		project := *p
		count := int64(0)
		for _, t := range f.terms {
			if t.ProjectID != nil && *t.ProjectID == p.ID {
				count++
			}
		}
		project.TermCount = &count
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *project
	return &copied, nil
}

func (f *fakeStore) Create(ctx context.Context, project *models.Project) error {
	f.nextProjectID++
	project.ID = f.nextProjectID
	project.CreatedAt = time.Now().Add(time.Duration(f.nextProjectID) * time.Millisecond)
	copied := *project
	f.projects[project.ID] = &copied
	return nil
}

func (f *fakeStore) Update(ctx context.Context, project *models.Project) error {
	existing, ok := f.projects[project.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	project.CreatedAt = existing.CreatedAt
	copied := *project
	f.projects[project.ID] = &copied
	return nil
}

func (f *fakeStore) DeleteWithDetach(ctx context.Context, id int64) error {
	if _, ok := f.projects[id]; !ok {
		return repositories.ErrNotFound
	}
	for _, t := range f.terms {
		if t.ProjectID != nil && *t.ProjectID == id {
			t.ProjectID = nil
			t.Project = nil
		}
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeStore) Search(ctx context.Context, filter repositories.TermFilter) ([]models.Term, error) {
	var terms []models.Term
	for _, t := range f.terms {
		if !f.matches(t, filter) {
			continue
		}
		copied := *t
		if copied.ProjectID != nil {
			if p, ok := f.projects[*copied.ProjectID]; ok {
				project := *p
				copied.Project = &project
			}
		}
		terms = append(terms, copied)
	}
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].CreatedAt.After(terms[j].CreatedAt)
	})
	return terms, nil
}

func (f *fakeStore) matches(t *models.Term, filter repositories.TermFilter) bool {
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		tags := ""
		if t.ExtraTags != nil {
			tags = *t.ExtraTags
		}
		if !strings.Contains(strings.ToLower(t.Term), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) &&
			!strings.Contains(strings.ToLower(tags), q) {
			return false
		}
	}
	if filter.ProjectID != nil {
		if t.ProjectID == nil || *t.ProjectID != *filter.ProjectID {
			return false
		}
	}
	if filter.Tag != "" {
		if !f.hasTag(t, filter.Tag) {
			return false
		}
	}
	return true
}

func (f *fakeStore) hasTag(t *models.Term, tag string) bool {
	if t.ProjectID != nil {
		if p, ok := f.projects[*t.ProjectID]; ok && p.Name == tag {
			return true
		}
	}
	for _, entry := range t.Tags() {
		if entry == tag {
			return true
		}
	}
	return false
}

func (f *fakeStore) GetTermByID(ctx context.Context, id int64) (*models.Term, error) {
	term, ok := f.terms[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *term
	if copied.ProjectID != nil {
		if p, ok := f.projects[*copied.ProjectID]; ok {
			project := *p
			copied.Project = &project
		}
	}
	return &copied, nil
}

func (f *fakeStore) CreateTerm(ctx context.Context, term *models.Term) error {
	f.nextTermID++
	term.ID = f.nextTermID
	term.CreatedAt = time.Now().Add(time.Duration(f.nextTermID) * time.Millisecond)
	copied := *term
	f.terms[term.ID] = &copied
	return nil
}

func (f *fakeStore) UpdateTerm(ctx context.Context, term *models.Term) error {
	existing, ok := f.terms[term.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	term.CreatedAt = existing.CreatedAt
	copied := *term
	f.terms[term.ID] = &copied
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.terms[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.terms, id)
	return nil
}

// termStoreView adapts fakeStore to the TermStore interface, whose method
// names collide with the project side.
type termStoreView struct{ *fakeStore }

func (v termStoreView) GetByID(ctx context.Context, id int64) (*models.Term, error) {
	return v.fakeStore.GetTermByID(ctx, id)
}

func (v termStoreView) Create(ctx context.Context, term *models.Term) error {
	return v.fakeStore.CreateTerm(ctx, term)
}

func (v termStoreView) Update(ctx context.Context, term *models.Term) error {
	return v.fakeStore.UpdateTerm(ctx, term)
}
