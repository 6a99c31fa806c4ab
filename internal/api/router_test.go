package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/reservabar/reservation-api/internal/infrastructure/db/postgres"
	"github.com/reservabar/reservation-api/internal/pkg/config"
)

// newTestRouter wires a full router against in-memory SQLite and miniredis.
// The prometheus middleware registers collectors globally, so the router is
// built once per test binary.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("starting miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		Port:     "0",
		Env:      "test",
		LogLevel: "error",
		JWT: config.JWTConfig{
			Secret:        "e2e-test-secret",
			Algorithm:     "HS256",
			ExpireMinutes: 30,
		},
		Login: config.LoginConfig{MaxAttempts: 3, WindowMinutes: 15},
	}

	e, err := NewRouter(db, rdb, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRouter returned error: %v", err)
	}
	return e
}

func doJSON(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doForm(e *echo.Echo, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := doForm(e, "/users/token", url.Values{"username": {email}, "password": {password}})
	if rec.Code != http.StatusOK {
		t.Fatalf("login for %s: expected 200, got %d (%s)", email, rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}
	return resp["access_token"]
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error response %q: %v", rec.Body.String(), err)
	}
	return resp["detail"]
}

func TestRouter_EndToEnd(t *testing.T) {
	e := newTestRouter(t)

	// Register a client and an admin.
	rec := doJSON(e, http.MethodPost, "/users/", "",
		`{"email":"alice@example.com","password":"alicepassword","first_name":"Alice"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	rec = doJSON(e, http.MethodPost, "/users/", "",
		`{"email":"admin@example.com","password":"adminpassword","role":"admin"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register admin: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Duplicate registration is rejected with the error envelope.
	rec = doJSON(e, http.MethodPost, "/users/", "",
		`{"email":"alice@example.com","password":"alicepassword"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", rec.Code)
	}
	if detail(t, rec) != "email already registered" {
		t.Fatalf("unexpected detail: %q", detail(t, rec))
	}

	// Wrong password yields 401 without leaking account existence.
	rec = doForm(e, "/users/token", url.Values{"username": {"alice@example.com"}, "password": {"wrong"}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", rec.Code)
	}
	rec = doForm(e, "/users/token", url.Values{"username": {"ghost@example.com"}, "password": {"wrong"}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown login: expected 401, got %d", rec.Code)
	}

	aliceToken := login(t, e, "alice@example.com", "alicepassword")
	adminToken := login(t, e, "admin@example.com", "adminpassword")

	// /users/me/ resolves the bearer to its owner.
	rec = doJSON(e, http.MethodGet, "/users/me/", aliceToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var me map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("invalid me response: %v", err)
	}
	if me["email"] != "alice@example.com" {
		t.Fatalf("unexpected me payload: %+v", me)
	}

	// Directory listing is admin-only.
	rec = doJSON(e, http.MethodGet, "/users/", aliceToken, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("client list: expected 403, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/users/", adminToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin list: expected 200, got %d", rec.Code)
	}

	// Requests without a token are rejected.
	rec = doJSON(e, http.MethodGet, "/users/me/", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/users/me/", "garbage.token.here", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", rec.Code)
	}

	// Table creation is admin-only; listing is open to any caller.
	rec = doJSON(e, http.MethodPost, "/tables/", aliceToken,
		`{"table_number":"T1","capacity":4,"is_available":true,"location":"terrace"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("client create table: expected 403, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodPost, "/tables/", adminToken,
		`{"table_number":"T1","capacity":4,"is_available":true,"location":"terrace"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create table: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var table map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &table); err != nil {
		t.Fatalf("invalid table response: %v", err)
	}
	rec = doJSON(e, http.MethodGet, "/tables/", aliceToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list tables: expected 200, got %d", rec.Code)
	}

	// A client books the table for themselves.
	rec = doJSON(e, http.MethodPost, "/reservations/", aliceToken,
		`{"table_id":1,"reservation_time":"2026-09-15T19:00:00Z","num_guests":2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create reservation: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var reservation map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &reservation); err != nil {
		t.Fatalf("invalid reservation response: %v", err)
	}
	if reservation["status"] != "pending" {
		t.Fatalf("expected pending reservation, got %v", reservation["status"])
	}

	// The admin sees it; a reservation against a missing table is a 404.
	rec = doJSON(e, http.MethodGet, "/reservations/", adminToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin list reservations: expected 200, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodPost, "/reservations/", aliceToken,
		`{"table_id":99,"reservation_time":"2026-09-15T19:00:00Z","num_guests":2}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("reservation on missing table: expected 404, got %d", rec.Code)
	}

	// Promotions: admin-only mutations, visible to all authenticated users.
	rec = doJSON(e, http.MethodPost, "/promotions/", adminToken,
		`{"name":"Happy Hour","start_date":"2026-09-01T00:00:00Z","end_date":"2026-09-30T00:00:00Z","discount_percentage":20,"code":"HAPPY20"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create promotion: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	rec = doJSON(e, http.MethodGet, "/promotions/", aliceToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list promotions: expected 200, got %d", rec.Code)
	}

	// Deactivated users lose access on their next request.
	inactive := doJSON(e, http.MethodPut, "/users/1", adminToken, `{"is_active":false}`)
	if inactive.Code != http.StatusOK {
		t.Fatalf("deactivate: expected 200, got %d (%s)", inactive.Code, inactive.Body.String())
	}
	rec = doJSON(e, http.MethodGet, "/users/me/", aliceToken, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("inactive user: expected 400, got %d", rec.Code)
	}
	if detail(t, rec) != "inactive user" {
		t.Fatalf("unexpected detail: %q", detail(t, rec))
	}

	// Repeated failures trip the login throttle.
	for i := 0; i < 3; i++ {
		doForm(e, "/users/token", url.Values{"username": {"ghost@example.com"}, "password": {"wrong"}})
	}
	rec = doForm(e, "/users/token", url.Values{"username": {"ghost@example.com"}, "password": {"wrong"}})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("throttled login: expected 429, got %d", rec.Code)
	}

	// Liveness probe is unauthenticated.
	rec = doJSON(e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}
}
