package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/milsabores/bakery-api/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "11111111-2222-3333-4444-555555555555",
		Name:  "A",
		Email: "a@a.com",
		Role:  domain.RoleUser,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	token, exp, err := tm.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.Subject != testUser().ID {
		t.Fatalf("unexpected sub: %q", claims.Subject)
	}
	if claims.Email != "a@a.com" {
		t.Fatalf("unexpected email: %q", claims.Email)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret", 60).GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := NewTokenManager("other-secret", 60).ParseToken(token); err == nil {
		t.Fatalf("expected error for token signed with a different secret")
	}
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	claims := &Claims{
		Email: "a@a.com",
		Role:  domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   testUser().ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := tm.ParseToken(expired); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestTokenManager_RejectsMalformed(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	if _, err := tm.ParseToken("not.a.token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestTokenManager_RejectsUnexpectedAlgorithm(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing none token: %v", err)
	}

	if _, err := tm.ParseToken(unsigned); err == nil {
		t.Fatalf("expected error for alg=none token")
	}
}
