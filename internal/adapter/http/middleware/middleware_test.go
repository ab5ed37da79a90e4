package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"projecthub/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type verifierFunc func(token string) (domain.UserID, error)

func (f verifierFunc) Verify(token string) (domain.UserID, error) { return f(token) }

func TestNegotiateLanguage(t *testing.T) {
	cases := map[string]string{
		"":                        "en",
		"fr":                      "fr",
		"fr-CA,fr;q=0.9,en;q=0.8": "fr",
		"en-US,en;q=0.9,fr;q=0.5": "en",
		"de-DE":                   "en",
		"not a header;;;":         "en",
	}
	for header, want := range cases {
		assert.Equal(t, want, negotiateLanguage(header), "header %q", header)
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := verifierFunc(func(token string) (domain.UserID, error) {
		if token == "good" {
			return "alice", nil
		}
		return "", errors.New("bad token")
	})

	router := gin.New()
	router.GET("/me", AuthMiddleware(verifier), func(c *gin.Context) {
		id, ok := GetIdentity(c)
		require.True(t, ok)
		c.String(http.StatusOK, string(id))
	})

	for header, want := range map[string]int{
		"":            http.StatusUnauthorized,
		"Bearer":      http.StatusUnauthorized,
		"Bearer bad":  http.StatusUnauthorized,
		"Basic good":  http.StatusUnauthorized,
		"Bearer good": http.StatusOK,
	} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, "header %q", header)
		if want == http.StatusOK {
			assert.Equal(t, "alice", rec.Body.String())
		}
	}
}

func TestGinZapMiddleware_LogsIdentityAndLevel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(GinZapMiddleware(zap.New(core)))
	router.GET("/ok/:id", func(c *gin.Context) {
		c.Set(identityKey, domain.UserID("alice"))
		c.Status(http.StatusOK)
	})
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "alice", entries[0].ContextMap()["user_id"])
	assert.Equal(t, "/ok/:id", entries[0].ContextMap()["route"])
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware([]string{"http://localhost:5173"}))
	router.GET("/api/projects", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware(nil))
	router.GET("/api/projects", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
