package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reservabar/reservation-api/internal/api/middleware"
	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ResolveBearer(context.Context, string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

type stubThrottle struct {
	allowed  bool
	failures int
	resets   int
}

func (s *stubThrottle) Allow(context.Context, string) bool { return s.allowed }

func (s *stubThrottle) RecordFailure(context.Context, string) { s.failures++ }

func (s *stubThrottle) Reset(context.Context, string) { s.resets++ }

func newTestContext(e *echo.Echo, method, target string, body string, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	auth := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Email != "alice@example.com" || input.Password != "password123" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{
				ID: 1, Email: input.Email, Role: domain.RoleClient, IsActive: true,
				CreatedAt: time.Now(), UpdatedAt: time.Now(),
			}, nil
		},
	}
	h := NewUserHandler(auth, nil, &stubThrottle{allowed: true}, nil)

	c, rec := newTestContext(e, http.MethodPost, "/users/",
		`{"email":"alice@example.com","password":"password123"}`, echo.MIMEApplicationJSON)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password must not appear in response")
	}
}

func TestUserHandler_Create_Validation(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewUserHandler(&stubAuthService{}, nil, &stubThrottle{allowed: true}, nil)

	cases := []string{
		`{"email":"not-an-email","password":"password123"}`,
		`{"email":"alice@example.com","password":"short"}`,
		`{"email":"alice@example.com","password":"password123","role":"owner"}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(e, http.MethodPost, "/users/", body, echo.MIMEApplicationJSON)
		err := h.Create(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422, got %v", body, err)
		}
	}
}

func TestUserHandler_Token_Success(t *testing.T) {
	e := echo.New()
	throttle := &stubThrottle{allowed: true}
	auth := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "password123" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", &domain.User{Email: email}, nil
		},
	}
	h := NewUserHandler(auth, nil, throttle, nil)

	form := url.Values{"username": {"alice@example.com"}, "password": {"password123"}}
	c, rec := newTestContext(e, http.MethodPost, "/users/token", form.Encode(), echo.MIMEApplicationForm)

	if err := h.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "signed-token" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset on success")
	}
}

func TestUserHandler_Token_FailureRecorded(t *testing.T) {
	e := echo.New()
	throttle := &stubThrottle{allowed: true}
	auth := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewUserHandler(auth, nil, throttle, nil)

	form := url.Values{"username": {"alice@example.com"}, "password": {"wrong"}}
	c, _ := newTestContext(e, http.MethodPost, "/users/token", form.Encode(), echo.MIMEApplicationForm)

	if err := h.Token(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected a recorded failure")
	}
}

func TestUserHandler_Token_Throttled(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubAuthService{}, nil, &stubThrottle{allowed: false}, nil)

	form := url.Values{"username": {"alice@example.com"}, "password": {"password123"}}
	c, _ := newTestContext(e, http.MethodPost, "/users/token", form.Encode(), echo.MIMEApplicationForm)

	err := h.Token(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}

func TestUserHandler_Me(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubAuthService{}, nil, &stubThrottle{allowed: true}, nil)

	c, rec := newTestContext(e, http.MethodGet, "/users/me/", "", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: 7, Email: "me@example.com", Role: domain.RoleClient})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "me@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Me_NoCaller(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubAuthService{}, nil, &stubThrottle{allowed: true}, nil)

	c, _ := newTestContext(e, http.MethodGet, "/users/me/", "", "")
	err := h.Me(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestPagination(t *testing.T) {
	e := echo.New()

	c, _ := newTestContext(e, http.MethodGet, "/users/?skip=10&limit=20", "", "")
	skip, limit := pagination(c)
	if skip != 10 || limit != 20 {
		t.Fatalf("expected 10/20, got %d/%d", skip, limit)
	}

	c, _ = newTestContext(e, http.MethodGet, "/users/?skip=-3&limit=9999", "", "")
	skip, limit = pagination(c)
	if skip != 0 || limit != maxLimit {
		t.Fatalf("expected 0/%d, got %d/%d", maxLimit, skip, limit)
	}

	c, _ = newTestContext(e, http.MethodGet, "/users/", "", "")
	skip, limit = pagination(c)
	if skip != 0 || limit != defaultLimit {
		t.Fatalf("expected defaults, got %d/%d", skip, limit)
	}
}
