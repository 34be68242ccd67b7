package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/atinroy/focusflow-backend/internal/adapter/postgres"
	settingsrepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/settings"
	streakrepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/streak"
	tagrepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/tag"
	"github.com/atinroy/focusflow-backend/internal/adapter/postgres/testhelper"
	timeblockrepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/timeblock"
	todorepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/todo"
	userrepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/user"
	"github.com/atinroy/focusflow-backend/internal/auth"
	"github.com/atinroy/focusflow-backend/internal/config"
	authservice "github.com/atinroy/focusflow-backend/internal/service/auth"
	"github.com/atinroy/focusflow-backend/internal/service/settings"
	"github.com/atinroy/focusflow-backend/internal/service/stats"
	"github.com/atinroy/focusflow-backend/internal/service/streak"
	"github.com/atinroy/focusflow-backend/internal/service/tag"
	"github.com/atinroy/focusflow-backend/internal/service/timeblock"
	"github.com/atinroy/focusflow-backend/internal/service/todo"
	"github.com/atinroy/focusflow-backend/internal/transport/middleware"
	"github.com/atinroy/focusflow-backend/internal/transport/rest"
)

type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

// newTestServer builds the full HTTP stack against a containerized database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	authCfg := config.AuthConfig{
		JWTSecret:      "e2e-test-secret-0123456789abcdef",
		JWTIssuer:      "e2e-test",
		AccessTokenTTL: time.Hour,
		BcryptCost:     bcrypt.MinCost,
	}
	loc := time.UTC

	txManager := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	tags := tagrepo.New(pool)
	todos := todorepo.New(pool)
	blocks := timeblockrepo.New(pool)
	streaks := streakrepo.New(pool)
	userSettings := settingsrepo.New(pool)

	jwtManager := auth.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authSvc := authservice.NewService(logger, users, userSettings, streaks, txManager, jwtManager, authCfg)
	tagSvc := tag.NewService(logger, tags, todos, blocks)
	todoSvc := todo.NewService(logger, todos, tags)
	streakSvc := streak.NewService(logger, streaks, loc)
	blockSvc := timeblock.NewService(logger, blocks, todos, tags, streakSvc, txManager, loc, 366)
	statsSvc := stats.NewService(logger, blocks, loc, 366)
	settingsSvc := settings.NewService(logger, userSettings)

	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authSvc, logger),
		Tags:     rest.NewTagHandler(tagSvc, logger),
		Todos:    rest.NewTodoHandler(todoSvc, logger),
		Blocks:   rest.NewBlockHandler(blockSvc, loc, logger),
		Streak:   rest.NewStreakHandler(streakSvc, logger),
		Stats:    rest.NewStatsHandler(statsSvc, loc, logger),
		Settings: rest.NewSettingsHandler(settingsSvc, logger),
		Health:   rest.NewHealthHandler(pool, "e2e-test"),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Auth(jwtManager),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv
}

// apiClient is a thin wrapper carrying the base URL and bearer token.
type apiClient struct {
	t       *testing.T
	baseURL string
	token   string
}

func newClient(t *testing.T, srv *httptest.Server) *apiClient {
	return &apiClient{t: t, baseURL: srv.URL}
}

// do sends a JSON request and decodes the JSON response into out (when out
// is non-nil). It returns the HTTP status code.
func (c *apiClient) do(method, path string, body any, out any) int {
	c.t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			c.t.Fatalf("read response body: %v", err)
		}
		if len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				c.t.Fatalf("decode %s %s response (%d): %v: %s", method, path, resp.StatusCode, err, data)
			}
		}
	}

	return resp.StatusCode
}

// register creates a fresh account and stores its token on the client.
func (c *apiClient) register() {
	c.t.Helper()

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	var resp struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	status := c.do(http.MethodPost, "/auth/register", map[string]string{
		"email":    "e2e-" + suffix + "@example.com",
		"username": "e2e-" + suffix,
		"password": "password123",
	}, &resp)
	if status != http.StatusCreated {
		c.t.Fatalf("register: expected status 201, got %d", status)
	}
	if resp.AccessToken == "" {
		c.t.Fatal("register: expected non-empty access token")
	}
	c.token = resp.AccessToken
}
