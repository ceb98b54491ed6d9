// Package client is a thin typed wrapper over the termdex HTTP API, used
// by the terminal UI. One call means one request; there are no retries and
// no caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"termdex/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// TermQuery mirrors the query parameters of GET /api/terms.
type TermQuery struct {
	Query     string
	ProjectID *int64
	Tag       string
}

func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) Terms(ctx context.Context, query TermQuery) ([]models.Term, error) {
	params := url.Values{}
	if query.Query != "" {
		params.Set("q", query.Query)
	}
	if query.ProjectID != nil {
		params.Set("projectId", strconv.FormatInt(*query.ProjectID, 10))
	}
	if query.Tag != "" {
		params.Set("tag", query.Tag)
	}

	path := "/api/terms"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var terms []models.Term
	if err := c.do(ctx, http.MethodGet, path, nil, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (c *Client) CreateProject(ctx context.Context, name string, description *string) (*models.Project, error) {
	body := map[string]interface{}{
		"action":      "create-project",
		"name":        name,
		"description": description,
	}
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int64, name string, description *string) (*models.Project, error) {
	body := map[string]interface{}{
		"action":      "update-project",
		"id":          id,
		"name":        name,
		"description": description,
	}
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	body := map[string]interface{}{
		"action": "delete-project",
		"id":     id,
	}
	return c.do(ctx, http.MethodPost, "/api/projects", body, nil)
}

func (c *Client) CreateTerm(ctx context.Context, term, description string, projectID *int64, extraTags *string) (*models.Term, error) {
	body := map[string]interface{}{
		"action":      "create-term",
		"term":        term,
		"description": description,
		"projectId":   projectID,
		"extraTags":   extraTags,
	}
	var created models.Term
	if err := c.do(ctx, http.MethodPost, "/api/terms", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTerm(ctx context.Context, id int64, term, description string, projectID *int64, extraTags *string) (*models.Term, error) {
	body := map[string]interface{}{
		"action":      "update-term",
		"id":          id,
		"term":        term,
		"description": description,
		"projectId":   projectID,
		"extraTags":   extraTags,
	}
	var updated models.Term
	if err := c.do(ctx, http.MethodPost, "/api/terms", body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTerm(ctx context.Context, id int64) error {
	body := map[string]interface{}{
		"action": "delete-term",
		"id":     id,
	}
	return c.do(ctx, http.MethodPost, "/api/terms", body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Message)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
