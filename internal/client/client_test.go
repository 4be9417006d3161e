package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/reelfolio/core/internal/adapters/http"
	"github.com/reelfolio/core/internal/adapters/repository"
	"github.com/reelfolio/core/internal/application/services"
	"github.com/reelfolio/core/internal/domain/entities"
	"github.com/reelfolio/core/internal/infrastructure/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Config{BaseURL: server.URL + "/", Timeout: 5 * time.Second})
}

func TestNewTrimsBaseURL(t *testing.T) {
	c := New(Config{BaseURL: "http://localhost:3001/"})
	assert.Equal(t, "http://localhost:3001", c.baseURL)
	assert.NotNil(t, c.httpClient)

	custom := &http.Client{}
	assert.Same(t, custom, New(Config{HTTPClient: custom}).httpClient)
}

func TestListProjects(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"1","title":"A","category":"X","description":"d","imageUrl":"u","year":2021}]`))
	})

	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "1", projects[0].ID)
	require.NotNil(t, projects[0].Year)
	assert.Equal(t, 2021, *projects[0].Year)
}

func TestCreateProjectSendsJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "A", body["title"])
		assert.Equal(t, "u", body["imageUrl"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"new","title":"A","category":"X","description":"d","imageUrl":"u"}`))
	})

	created, err := c.CreateProject(context.Background(), entities.Project{Title: "A", Category: "X", Description: "d", ImageURL: "u"})
	require.NoError(t, err)
	assert.Equal(t, "new", created.ID)
}

func TestUpdateProjectEscapesID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/projects/a%2Fb", r.URL.EscapedPath())
		w.Write([]byte(`{"id":"a/b","title":"B"}`))
	})

	updated, err := c.UpdateProject(context.Background(), entities.Project{ID: "a/b", Title: "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Title)
}

func TestDeleteAcceptsNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Contains(t, []string{"/api/projects/p1", "/api/incomes/i1"}, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.DeleteProject(context.Background(), "p1"))
	assert.NoError(t, c.DeleteIncome(context.Background(), "i1"))
}

func TestFailureMessages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Internal Server Error"}`))
	})
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"list projects", func() error { _, err := c.ListProjects(ctx); return err }, "Failed to fetch projects"},
		{"create project", func() error { _, err := c.CreateProject(ctx, entities.Project{}); return err }, "Failed to add project"},
		{"update project", func() error { _, err := c.UpdateProject(ctx, entities.Project{ID: "x"}); return err }, "Failed to update project"},
		{"delete project", func() error { return c.DeleteProject(ctx, "x") }, "Failed to delete project"},
		{"list incomes", func() error { _, err := c.ListIncomes(ctx); return err }, "Failed to fetch incomes"},
		{"create income", func() error { _, err := c.CreateIncome(ctx, entities.IncomeEntry{}); return err }, "Failed to add income"},
		{"delete income", func() error { return c.DeleteIncome(ctx, "x") }, "Failed to delete income"},
		{"income summary", func() error { _, err := c.IncomeSummary(ctx); return err }, "Failed to fetch income summary"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRequestFailed)

			var reqErr *RequestFailedError
			require.True(t, errors.As(err, &reqErr))
			assert.Equal(t, tc.want, reqErr.Message)
			assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
		})
	}
}

func TestNotFoundIsFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Project not found"}`))
	})

	err := c.DeleteProject(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "Project not found")
}

func TestInvalidJSONIsFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	projects, err := c.ListProjects(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Nil(t, projects)
}

func TestUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(Config{BaseURL: url}).ListIncomes(context.Background())
	require.ErrorIs(t, err, ErrRequestFailed)

	var reqErr *RequestFailedError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 0, reqErr.StatusCode)
	assert.Equal(t, "Failed to fetch incomes", reqErr.Message)
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListProjects(ctx)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestAgainstRecordAPI runs the client against the real handlers
func TestAgainstRecordAPI(t *testing.T) {
	log := logger.NewNop()
	store := repository.NewMemoryStore(nil)

	e := echo.New()
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.NewErrorHandler(log)
	api.RegisterRoutes(e.Group("/api"),
		api.NewProjectHandler(services.NewProjectService(store, log), log),
		api.NewIncomeHandler(services.NewIncomeService(store, log), log),
	)
	server := httptest.NewServer(e)
	defer server.Close()

	ctx := context.Background()
	c := New(Config{BaseURL: server.URL})

	created, err := c.Projects().Create(ctx, entities.Project{Title: "A", Category: "X", Description: "d", ImageURL: "u"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	created.Title = "B"
	updated, err := c.Projects().Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Title)

	_, err = c.CreateProject(ctx, entities.Project{Title: "missing fields"})
	var reqErr *RequestFailedError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)

	_, err = c.Incomes().Create(ctx, entities.IncomeEntry{Project: "P1", Amount: 100, Date: "2024-01-15"})
	require.NoError(t, err)
	_, err = c.Incomes().Create(ctx, entities.IncomeEntry{Project: "P2", Amount: 50, Date: "2024-03-01"})
	require.NoError(t, err)

	incomes, err := c.Incomes().List(ctx)
	require.NoError(t, err)
	require.Len(t, incomes, 2)
	assert.Equal(t, "P2", incomes[0].Project)

	summary, err := c.IncomeSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150.0, summary.Total)

	require.NoError(t, c.Projects().Delete(ctx, created.ID))
	assert.ErrorIs(t, c.Projects().Delete(ctx, created.ID), ErrRequestFailed)
}
