package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

const testSecret = "unit-test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	user := entities.User{ID: "user-1", Email: "owner@example.com", Name: "Owner"}

	token, err := GenerateToken(testSecret, user, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims mismatch: got %q/%q", claims.UserID, claims.Email)
	}
	got := claims.User()
	if got != user {
		t.Fatalf("User() = %+v, want %+v", got, user)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, entities.User{ID: "user-1"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := ParseToken("another-secret", token); err == nil {
		t.Fatal("expected error for token signed with different secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	// GenerateToken coerces non-positive TTLs to the default, so build the
	// expired token directly.
	claims := &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseToken_RejectsNonHMACAlgorithm(t *testing.T) {
	claims := &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Fatal("expected error for token with non-HMAC algorithm")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
