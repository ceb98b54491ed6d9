package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"termdex/internal/handlers"
	"termdex/internal/models"
	"termdex/internal/repositories"
	"termdex/internal/routes"
	"termdex/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Thin canned fakes: handler tests cover the HTTP mapping, not store
// semantics (those live in the service and repository tests).

type fakeProjectStore struct {
	listResult []models.Project
	byID       map[int64]*models.Project
	created    []*models.Project
	updated    []*models.Project
	deleted    []int64
	updateErr  error
	deleteErr  error
}

func (f *fakeProjectStore) List(ctx context.Context) ([]models.Project, error) {
	return f.listResult, nil
}

func (f *fakeProjectStore) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProjectStore) Create(ctx context.Context, project *models.Project) error {
	project.ID = int64(len(f.created) + 1)
	project.CreatedAt = time.Now()
	f.created = append(f.created, project)
	return nil
}

func (f *fakeProjectStore) Update(ctx context.Context, project *models.Project) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, project)
	return nil
}

func (f *fakeProjectStore) DeleteWithDetach(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeTermStore struct {
	searchResult []models.Term
	lastFilter   repositories.TermFilter
	byID         map[int64]*models.Term
	created      []*models.Term
	updated      []*models.Term
	deleted      []int64
	deleteErr    error
}

func (f *fakeTermStore) Search(ctx context.Context, filter repositories.TermFilter) ([]models.Term, error) {
	f.lastFilter = filter
	return f.searchResult, nil
}

func (f *fakeTermStore) GetByID(ctx context.Context, id int64) (*models.Term, error) {
	if t, ok := f.byID[id]; ok {
		return t, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeTermStore) Create(ctx context.Context, term *models.Term) error {
	term.ID = int64(len(f.created) + 1)
	term.CreatedAt = time.Now()
	f.created = append(f.created, term)
	if f.byID == nil {
		f.byID = make(map[int64]*models.Term)
	}
	f.byID[term.ID] = term
	return nil
}

func (f *fakeTermStore) Update(ctx context.Context, term *models.Term) error {
	if _, ok := f.byID[term.ID]; !ok {
		return repositories.ErrNotFound
	}
	f.updated = append(f.updated, term)
	f.byID[term.ID] = term
	return nil
}

func (f *fakeTermStore) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestRouter(projectStore *fakeProjectStore, termStore *fakeTermStore) *gin.Engine {
	projectService := services.NewProjectService(projectStore)
	termService := services.NewTermService(termStore, projectStore)

	router := gin.New()
	routes.RegisterRoutes(router, handlers.NewProjectHandler(projectService), handlers.NewTermHandler(termService))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}
