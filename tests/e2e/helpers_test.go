//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/makerclub/toolroom/internal/adapter/postgres"
	historyrepo "github.com/makerclub/toolroom/internal/adapter/postgres/history"
	"github.com/makerclub/toolroom/internal/adapter/postgres/testhelper"
	toolrepo "github.com/makerclub/toolroom/internal/adapter/postgres/tool"
	userrepo "github.com/makerclub/toolroom/internal/adapter/postgres/user"
	authpkg "github.com/makerclub/toolroom/internal/auth"
	"github.com/makerclub/toolroom/internal/config"
	"github.com/makerclub/toolroom/internal/domain"
	authsvc "github.com/makerclub/toolroom/internal/service/auth"
	historysvc "github.com/makerclub/toolroom/internal/service/history"
	"github.com/makerclub/toolroom/internal/service/lifecycle"
	toolsvc "github.com/makerclub/toolroom/internal/service/tool"
	usersvc "github.com/makerclub/toolroom/internal/service/user"
	"github.com/makerclub/toolroom/internal/transport/middleware"
	"github.com/makerclub/toolroom/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	toolRepo := toolrepo.New(pool)
	userRepo := userrepo.New(pool)
	historyRepo := historyrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:      "test-secret-at-least-32-chars-long!!",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 15 * time.Minute,
		BcryptCost:     4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, userRepo, jwtMgr, authCfg)
	toolService := toolsvc.NewService(logger, toolRepo)
	lifecycleService := lifecycle.NewService(logger, toolRepo, historyRepo, txm)
	historyService := historysvc.NewService(logger, historyRepo)
	userService := usersvc.NewService(logger, userRepo, toolRepo, authCfg)

	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Tools:   rest.NewToolHandler(toolService, lifecycleService, logger),
		History: rest.NewHistoryHandler(historyService, logger),
		Users:   rest.NewUserHandler(userService, logger),
		Health:  rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// doJSON sends a request with an optional JSON body and bearer token and
// returns the status code plus the decoded response body (nil when empty).
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return resp.StatusCode, result
}

// doJSONList is doJSON for endpoints that return a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// seedMember inserts a user with the given role directly into the DB and
// returns it together with a valid access token.
func seedMember(t *testing.T, ts *testServer, role domain.Role) (domain.User, string) {
	t.Helper()

	u := testhelper.SeedUser(t, ts.Pool, role)

	token, err := ts.jwt.GenerateAccessToken(u.ID, u.Name, u.Role)
	require.NoError(t, err)

	return u, token
}
