package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

func TestNewTokenService_RejectsBadConfig(t *testing.T) {
	if _, err := NewTokenService("", "HS256", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewTokenService("secret", "ES999", time.Hour); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
	if _, err := NewTokenService("secret", "RS256", time.Hour); err == nil {
		t.Fatalf("expected error for asymmetric algorithm")
	}
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	token, err := svc.Issue("alice@example.com", domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != domain.RoleClient {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	claims := TokenClaims{
		Role: domain.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	token, err := svc.Issue("alice@example.com", domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Validate(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer, err := NewTokenService("other-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	token, err := issuer.Issue("alice@example.com", domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_WrongMethod(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	claims := TokenClaims{
		Role: domain.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", 0)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	if svc.TTL() != 30*time.Minute {
		t.Fatalf("expected 30m default TTL, got %v", svc.TTL())
	}
}
