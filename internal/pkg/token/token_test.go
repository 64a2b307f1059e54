package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var secret = []byte("test-secret")

func TestIssueVerify_Roundtrip(t *testing.T) {
	raw, err := Issue(42, "alice@example.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := Verify(raw, secret)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt)
	if ttl < 59*time.Minute || ttl > 61*time.Minute {
		t.Fatalf("expected ~1h lifetime, got %s", ttl)
	}
}

func TestIssue_EmptySecret(t *testing.T) {
	if _, err := Issue(1, "a@x.com", nil, time.Hour); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestVerify_EmptySecret(t *testing.T) {
	raw, _ := Issue(1, "a@x.com", secret, time.Hour)
	if _, err := Verify(raw, nil); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, err := Issue(1, "a@x.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := Verify(raw, []byte("other-secret")); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	raw, err := Issue(1, "a@x.com", secret, -time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := Verify(raw, secret); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := Verify(raw, secret); !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed for %q, got %v", raw, err)
		}
	}
}

func TestVerify_MissingExpiry(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(1),
		"email":   "a@x.com",
	})
	raw, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := Verify(raw, secret); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for token without exp, got %v", err)
	}
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"user_id": float64(1),
		"email":   "a@x.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	raw, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := Verify(raw, secret); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for HS384 token, got %v", err)
	}
}
