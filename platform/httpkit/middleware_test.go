package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type testJWTConfig struct {
	secret string
}

func (c testJWTConfig) GetJWTAccessSecret() string { return c.secret }

func signToken(t *testing.T, secret, tokenType string, sub string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  sub,
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func authTestRouter(cfg testJWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", AuthRequired(cfg), func(c *gin.Context) {
		id := MustGetIdentity(c)
		if id == nil {
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": id.UserID().String()})
	})
	return engine
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	cfg := testJWTConfig{secret: "topsecret"}
	engine := authTestRouter(cfg)
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.secret, "access", userID.String(), time.Hour))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["userId"] != userID.String() {
		t.Fatalf("expected bound user %s, got %s", userID, body["userId"])
	}
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	engine := authTestRouter(testJWTConfig{secret: "topsecret"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRequiredRejectsWrongSecret(t *testing.T) {
	engine := authTestRouter(testJWTConfig{secret: "topsecret"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "access", uuid.NewString(), time.Hour))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig{secret: "topsecret"}
	engine := authTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.secret, "access", uuid.NewString(), -time.Minute))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestAuthRequiredRejectsWrongTokenType(t *testing.T) {
	cfg := testJWTConfig{secret: "topsecret"}
	engine := authTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.secret, "refresh", uuid.NewString(), time.Hour))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-access token, got %d", rec.Code)
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, ok := extractBearerToken("Token abc"); ok {
		t.Fatal("expected non-bearer header to be rejected")
	}
	if _, ok := extractBearerToken("Bearer "); ok {
		t.Fatal("expected empty bearer token to be rejected")
	}
	if token, ok := extractBearerToken("Bearer abc"); !ok || token != "abc" {
		t.Fatalf("expected token abc, got %q ok=%v", token, ok)
	}
}

func TestRateLimiterReturns429BeyondBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewIPRateLimiter(1, 2, nil)

	engine := gin.New()
	engine.GET("/", limiter.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %v", codes)
	}
}
