package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctorsportal/utils"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type verifierFunc func(token string) (string, error)

func (f verifierFunc) VerifyToken(token string) (string, error) { return f(token) }

type adminSet struct {
	admins map[string]bool
	calls  int
	err    error
}

func (a *adminSet) IsAdmin(ctx context.Context, email string) (bool, error) {
	a.calls++
	return a.admins[email], a.err
}

var goodVerifier = verifierFunc(func(token string) (string, error) {
	if token == "good" {
		return "a@x.com", nil
	}
	return "", errors.New("signature is invalid")
})

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(goodVerifier, zap.NewNop()), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextEmailKey))
	})

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/me", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/me", "forged").Code)

	rec := serve(r, http.MethodGet, "/me", "good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", rec.Body.String())
}

func adminRouter(checker AdminChecker, cache *redis.Client) *gin.Engine {
	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(goodVerifier, zap.NewNop()), AdminMiddleware(checker, cache, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAdminMiddleware_WithoutCache(t *testing.T) {
	checker := &adminSet{admins: map[string]bool{"a@x.com": true}}
	assert.Equal(t, http.StatusNoContent, serve(adminRouter(checker, nil), http.MethodGet, "/admin", "good").Code)

	checker.admins["a@x.com"] = false
	assert.Equal(t, http.StatusForbidden, serve(adminRouter(checker, nil), http.MethodGet, "/admin", "good").Code)

	checker.err = errors.New("mongo down")
	assert.Equal(t, http.StatusInternalServerError, serve(adminRouter(checker, nil), http.MethodGet, "/admin", "good").Code)
}

func TestAdminMiddleware_CachesRoleLookups(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	checker := &adminSet{admins: map[string]bool{"a@x.com": true}}
	r := adminRouter(checker, client)

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/admin", "good").Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/admin", "good").Code)
	assert.Equal(t, 1, checker.calls)

	val, err := mr.Get(utils.AdminCacheKey("a@x.com"))
	require.NoError(t, err)
	assert.Equal(t, "true", val)

	mr.FastForward(adminCacheTTL)
	checker.admins["a@x.com"] = false
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/admin", "good").Code)
	assert.Equal(t, 2, checker.calls)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2, zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/", "").Code)

	// Another client has its own allowance.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		_, hasLogger := c.Get("logger")
		assert.True(t, hasLogger)
		c.Status(http.StatusOK)
	})

	rec := serve(r, http.MethodGet, "/", "")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
}

func TestGetClientIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "192.0.2.1", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", getClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", getClientIP(c))
}
