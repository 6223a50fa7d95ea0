package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestIssueAndParseAuthToken(t *testing.T) {
	token, err := IssueAuthToken(testSecret, 42, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := ParseAuthToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 || claims.Subject != "42" || claims.ID == "" {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if _, err := ParseAuthToken([]byte("another-secret-another-secret-xx"), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseAuthTokenRejectsExpiredAndUnsafe(t *testing.T) {
	expired, err := IssueAuthToken(testSecret, 1, time.Minute, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}
	if _, err := ParseAuthToken(testSecret, expired); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, AuthClaims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}
	if _, err := ParseAuthToken(testSecret, unsigned); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg none, got %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{UserID: 1}).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token without expiry: %v", err)
	}
	if _, err := ParseAuthToken(testSecret, noExpiry); err == nil {
		t.Fatal("expected token without expiry to be rejected")
	}

	if _, err := IssueAuthToken(testSecret, 0, time.Hour, time.Now()); err == nil {
		t.Fatal("expected zero user id to be rejected")
	}
}

func TestGenerateSecretKeyDistinct(t *testing.T) {
	first, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("generate secret: %v", err)
	}
	second, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("generate secret: %v", err)
	}
	if len(first) != SecretKeyLength || first == second {
		t.Fatalf("expected two distinct %d-char secrets, got %q and %q", SecretKeyLength, first, second)
	}
}
