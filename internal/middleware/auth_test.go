package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washerhq/carwash-api/internal/config"
)

func setupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/secure", AuthMiddleware(cfg, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString(ContextUsername)})
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := setupRouter(cfg)

	tokenString := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub": "admin",
		"jti": "token-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := setupRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_authorization_header")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := setupRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_authorization_header")
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := setupRouter(cfg)

	tokenString := signToken(t, "another-secret", jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := setupRouter(cfg)

	tokenString := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMissingSubject(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := setupRouter(cfg)

	tokenString := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token_payload")
}
