package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/healthhub/camp-server-go/config"
	utils "github.com/healthhub/camp-server-go/utils"
)

func guardedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func TestAuthMiddlewareValidCookie(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := guardedRouter(cfg)

	token, err := utils.SignToken(map[string]interface{}{"email": "a@x.com"}, cfg.JWTSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.TokenCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestAuthMiddlewareMissingCookie(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := guardedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access")
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := guardedRouter(cfg)

	tests := []struct {
		name  string
		value string
	}{
		{name: "garbage", value: "not-a-token"},
		{name: "wrong secret", value: signedWith(t, "other-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.AddCookie(&http.Cookie{Name: utils.TokenCookieName, Value: tt.value})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func signedWith(t *testing.T, secret string) string {
	t.Helper()
	token, err := utils.SignToken(map[string]interface{}{"email": "a@x.com"}, secret)
	require.NoError(t, err)
	return token
}
