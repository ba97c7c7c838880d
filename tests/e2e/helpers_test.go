//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rajdhanitech/tuition-backend/internal/adapter/postgres"
	accountrepo "github.com/rajdhanitech/tuition-backend/internal/adapter/postgres/account"
	inquiryrepo "github.com/rajdhanitech/tuition-backend/internal/adapter/postgres/inquiry"
	profilerepo "github.com/rajdhanitech/tuition-backend/internal/adapter/postgres/teacherprofile"
	"github.com/rajdhanitech/tuition-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/rajdhanitech/tuition-backend/internal/auth"
	"github.com/rajdhanitech/tuition-backend/internal/config"
	"github.com/rajdhanitech/tuition-backend/internal/domain"
	"github.com/rajdhanitech/tuition-backend/internal/notify"
	authsvc "github.com/rajdhanitech/tuition-backend/internal/service/auth"
	inquirysvc "github.com/rajdhanitech/tuition-backend/internal/service/inquiry"
	teachersvc "github.com/rajdhanitech/tuition-backend/internal/service/teacher"
	"github.com/rajdhanitech/tuition-backend/internal/transport/middleware"
	"github.com/rajdhanitech/tuition-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

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

	accounts := accountrepo.New(pool)
	inquiries := inquiryrepo.New(pool)
	profiles := profilerepo.New(pool)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtMgr := authpkg.NewJWTManager(jwtSecret, "test-issuer", 15*time.Minute)

	gateway := notify.NewGateway(logger, notify.NewLogChannel(logger))

	authService := authsvc.NewService(logger, accounts, jwtMgr, config.AuthConfig{
		JWTSecret:        jwtSecret,
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: 4,
	})
	inquiryService := inquirysvc.NewService(logger, inquiries, accounts, txm, gateway)
	teacherService := teachersvc.NewService(logger, profiles, accounts)

	mux := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, "test-version"),
		Auth:    rest.NewAuthHandler(authService, logger),
		Inquiry: rest.NewInquiryHandler(inquiryService, logger),
		Teacher: rest.NewTeacherHandler(teacherService, logger),
		Admin:   rest.NewAdminHandler(teacherService, logger),
	})

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)

	srv := httptest.NewServer(chain(mux))
	t.Cleanup(func() {
		srv.Close()
		gateway.Wait()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// do sends a JSON request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, buf.Bytes()
}

// asMap decodes a JSON object body.
func asMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m), "body: %s", body)
	return m
}

// asList decodes a JSON array body.
func asList(t *testing.T, body []byte) []map[string]any {
	t.Helper()
	var l []map[string]any
	require.NoError(t, json.Unmarshal(body, &l), "body: %s", body)
	return l
}

// ---------------------------------------------------------------------------
// Account fixtures.
// ---------------------------------------------------------------------------

const testPassword = "sup3r-secret"

// registeredAccount is an account created through the public API.
type registeredAccount struct {
	ID    string
	Email string
	Token string
}

// register creates an account with the given role via POST /auth/register.
func (ts *testServer) register(t *testing.T, role string) registeredAccount {
	t.Helper()

	email := fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()[:8])
	status, body := ts.do(t, http.MethodPost, "/auth/register", map[string]any{
		"name":     "Test " + role,
		"email":    email,
		"password": testPassword,
		"role":     role,
	}, "")
	require.Equal(t, http.StatusCreated, status, "register %s: %s", role, body)

	resp := asMap(t, body)
	account, ok := resp["account"].(map[string]any)
	require.True(t, ok, "expected account object: %s", body)

	return registeredAccount{
		ID:    account["id"].(string),
		Email: email,
		Token: resp["accessToken"].(string),
	}
}

// seedAdmin inserts an admin account directly (admins are provisioned out of
// band, never through the API) and mints a token for it.
func (ts *testServer) seedAdmin(t *testing.T) registeredAccount {
	t.Helper()

	account := testhelper.SeedAccount(t, ts.Pool, domain.RoleAdmin)
	token, err := ts.jwt.GenerateAccessToken(account.ID, domain.RoleAdmin)
	require.NoError(t, err)

	return registeredAccount{
		ID:    account.ID.String(),
		Email: account.Email,
		Token: token,
	}
}

// submitInquiry creates an inquiry as the given parent and returns its id.
func (ts *testServer) submitInquiry(t *testing.T, parent registeredAccount) string {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/inquiries", map[string]any{
		"studentName": "Aarav Sharma",
		"classLevel":  "8th",
		"subjects":    []string{"Maths", "Science"},
		"location":    "Rohini Sector 11",
		"contact":     "+91-9876543210",
	}, parent.Token)
	require.Equal(t, http.StatusCreated, status, "submit inquiry: %s", body)

	return asMap(t, body)["id"].(string)
}
