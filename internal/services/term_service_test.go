package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termdex/internal/repositories"
)

func TestTermService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing term persists nothing", func(t *testing.T) {
		store := newFakeStore()
		svc := NewTermService(termStoreView{store}, store)

		_, err := svc.Create(ctx, CreateTermRequest{Description: "a definition"})
		require.ErrorIs(t, err, ErrMissingTerm)
		assert.Empty(t, store.terms)
	})

	t.Run("missing description persists nothing", func(t *testing.T) {
		store := newFakeStore()
		svc := NewTermService(termStoreView{store}, store)

		_, err := svc.Create(ctx, CreateTermRequest{Term: "EDI"})
		require.ErrorIs(t, err, ErrMissingTermDescription)
		assert.Empty(t, store.terms)
	})

	t.Run("dangling project id is rejected", func(t *testing.T) {
		store := newFakeStore()
		svc := NewTermService(termStoreView{store}, store)

		missing := int64(42)
		_, err := svc.Create(ctx, CreateTermRequest{
			Term:        "EDI",
			Description: "Electronic Data Interchange",
			ProjectID:   &missing,
		})
		require.ErrorIs(t, err, ErrUnknownProject)
		assert.True(t, IsValidation(err))
		assert.Empty(t, store.terms)
	})

	t.Run("round trip keeps every field", func(t *testing.T) {
		store := newFakeStore()
		projectSvc := NewProjectService(store)
		svc := NewTermService(termStoreView{store}, store)

		project, err := projectSvc.Create(ctx, CreateProjectRequest{Name: "Alpha"})
		require.NoError(t, err)

		tags := "data, interchange"
		created, err := svc.Create(ctx, CreateTermRequest{
			Term:        "EDI",
			Description: "Electronic Data Interchange",
			ProjectID:   &project.ID,
			ExtraTags:   &tags,
		})
		require.NoError(t, err)

		found, err := svc.Search(ctx, repositories.TermFilter{})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, created.ID, found[0].ID)
		assert.Equal(t, "EDI", found[0].Term)
		assert.Equal(t, "Electronic Data Interchange", found[0].Description)
		require.NotNil(t, found[0].ProjectID)
		assert.Equal(t, project.ID, *found[0].ProjectID)
		require.NotNil(t, found[0].ExtraTags)
		assert.Equal(t, tags, *found[0].ExtraTags)
		require.NotNil(t, found[0].Project)
		assert.Equal(t, "Alpha", found[0].Project.Name)
	})
}

func TestTermService_Search(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	projectSvc := NewProjectService(store)
	svc := NewTermService(termStoreView{store}, store)

	project, err := projectSvc.Create(ctx, CreateProjectRequest{Name: "Alpha"})
	require.NoError(t, err)

	tags := "networking, legacy"
	_, err = svc.Create(ctx, CreateTermRequest{
		Term:        "EDI",
		Description: "Electronic Data Interchange",
		ProjectID:   &project.ID,
		ExtraTags:   &tags,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateTermRequest{
		Term:        "gRPC",
		Description: "remote procedure calls",
	})
	require.NoError(t, err)

	t.Run("query matches case-insensitively across fields", func(t *testing.T) {
		for _, q := range []string{"edi", "ELECTRONIC", "legacy"} {
			found, err := svc.Search(ctx, repositories.TermFilter{Query: q})
			require.NoError(t, err)
			require.Len(t, found, 1, "query %q", q)
			assert.Equal(t, "EDI", found[0].Term)
		}
	})

	t.Run("non-matching query returns nothing", func(t *testing.T) {
		found, err := svc.Search(ctx, repositories.TermFilter{Query: "nomatch"})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("project filter", func(t *testing.T) {
		found, err := svc.Search(ctx, repositories.TermFilter{ProjectID: &project.ID})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "EDI", found[0].Term)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		found, err := svc.Search(ctx, repositories.TermFilter{Query: "grpc", ProjectID: &project.ID})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("tag filter matches extraTags entries and project names", func(t *testing.T) {
		for _, tag := range []string{"networking", "Alpha"} {
			found, err := svc.Search(ctx, repositories.TermFilter{Tag: tag})
			require.NoError(t, err)
			require.Len(t, found, 1, "tag %q", tag)
			assert.Equal(t, "EDI", found[0].Term)
		}
	})
}

func TestTermService_Update(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	projectSvc := NewProjectService(store)
	svc := NewTermService(termStoreView{store}, store)

	project, err := projectSvc.Create(ctx, CreateProjectRequest{Name: "Alpha"})
	require.NoError(t, err)

	tags := "tag1, tag2"
	created, err := svc.Create(ctx, CreateTermRequest{
		Term:        "EDI",
		Description: "Electronic Data Interchange",
		ProjectID:   &project.ID,
		ExtraTags:   &tags,
	})
	require.NoError(t, err)

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Update(ctx, UpdateTermRequest{Term: "x", Description: "y"})
		assert.ErrorIs(t, err, ErrMissingID)

		_, err = svc.Update(ctx, UpdateTermRequest{ID: &created.ID, Description: "y"})
		assert.ErrorIs(t, err, ErrMissingTerm)

		_, err = svc.Update(ctx, UpdateTermRequest{ID: &created.ID, Term: "x"})
		assert.ErrorIs(t, err, ErrMissingTermDescription)
	})

	t.Run("full replace nulls omitted optionals", func(t *testing.T) {
		updated, err := svc.Update(ctx, UpdateTermRequest{
			ID:          &created.ID,
			Term:        "EDI",
			Description: "updated definition",
		})
		require.NoError(t, err)
		assert.Nil(t, updated.ExtraTags, "omitted extraTags must become null, not keep the old value")
		assert.Nil(t, updated.ProjectID)
		assert.Nil(t, updated.Project)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		missing := int64(777)
		_, err := svc.Update(ctx, UpdateTermRequest{ID: &missing, Term: "x", Description: "y"})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestTermService_Delete(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewTermService(termStoreView{store}, store)

	t.Run("missing id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, nil), ErrMissingID)
	})

	t.Run("removes the row", func(t *testing.T) {
		created, err := svc.Create(ctx, CreateTermRequest{Term: "EDI", Description: "def"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, &created.ID))
		assert.Empty(t, store.terms)

		assert.ErrorIs(t, svc.Delete(ctx, &created.ID), repositories.ErrNotFound)
	})
}
