package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtsvc "bookease/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "book_ease_token"

func TestRequireAuth_NoToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := jwtsvc.New("test-secret", time.Hour)

	r := gin.New()
	r.GET("/protected", RequireAuth(testCookieName, jwt), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "You have no access to this route")
}

func TestRequireAuth_ValidCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := jwtsvc.New("test-secret", time.Hour)

	token, err := jwt.GenerateToken(42, "user")
	require.NoError(t, err)

	var gotUserID int64
	var gotRole string
	r := gin.New()
	r.GET("/protected", RequireAuth(testCookieName, jwt), func(c *gin.Context) {
		gotUserID = c.GetInt64("user_id")
		gotRole = c.GetString("role")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "Bearer " + token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "user", gotRole)
}

func TestRequireAuth_AuthorizationHeaderFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := jwtsvc.New("test-secret", time.Hour)

	token, err := jwt.GenerateToken(7, "admin")
	require.NoError(t, err)

	var gotRole string
	r := gin.New()
	r.GET("/protected", RequireAuth(testCookieName, jwt), func(c *gin.Context) {
		gotRole = c.GetString("role")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", gotRole)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := jwtsvc.New("test-secret", time.Hour)

	r := gin.New()
	r.GET("/protected", RequireAuth(testCookieName, jwt), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "Bearer not-a-jwt"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	other := jwtsvc.New("other-secret", time.Hour)
	jwt := jwtsvc.New("test-secret", time.Hour)

	token, err := other.GenerateToken(42, "user")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", RequireAuth(testCookieName, jwt), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "Bearer " + token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
