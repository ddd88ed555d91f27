package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestIssueAccessTokenBindsUser(t *testing.T) {
	userID := uuid.New()
	secret := "unit-test-secret"

	signed, err := IssueAccessToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["sub"] != userID.String() {
		t.Fatalf("expected sub %s, got %v", userID, claims["sub"])
	}
	if claims["type"] != "access" {
		t.Fatalf("expected access token type, got %v", claims["type"])
	}

	exp, _ := claims.GetExpirationTime()
	if exp == nil || time.Until(exp.Time) <= 0 {
		t.Fatal("expected token to carry a future expiry")
	}
}

func TestIssueAccessTokenRejectsTamperedSecret(t *testing.T) {
	signed, err := IssueAccessToken(uuid.New(), "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	}); err == nil {
		t.Fatal("expected verification failure with different secret")
	}
}
