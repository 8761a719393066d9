package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaltasisKos/Task-Manager-Server/internal/auth"
	"github.com/BaltasisKos/Task-Manager-Server/internal/config"
)

func testManager() *auth.Manager {
	return auth.NewManager(config.AuthConfig{
		Secret:     "test-secret-key",
		TokenTTL:   time.Hour,
		CookieName: "token",
	})
}

func setupProtectedRouter(tokens *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Protect(tokens, zap.NewNop().Sugar()), func(c *gin.Context) {
		actor := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "is_admin": actor.IsAdmin})
	})
	r.GET("/admin", Protect(tokens, zap.NewNop().Sugar()), AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestProtect(t *testing.T) {
	t.Run("valid cookie resolves the actor", func(t *testing.T) {
		tokens := testManager()
		router := setupProtectedRouter(tokens)

		token, err := tokens.Issue("u1", false)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	})

	t.Run("missing cookie", func(t *testing.T) {
		router := setupProtectedRouter(testManager())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("garbage token", func(t *testing.T) {
		router := setupProtectedRouter(testManager())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-jwt"})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := auth.NewManager(config.AuthConfig{Secret: "other-secret", TokenTTL: time.Hour, CookieName: "token"})
		token, err := other.Issue("u1", false)
		require.NoError(t, err)

		router := setupProtectedRouter(testManager())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		tokens := testManager()
		router := setupProtectedRouter(tokens)

		token, err := tokens.Issue("admin-id", true)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		tokens := testManager()
		router := setupProtectedRouter(tokens)

		token, err := tokens.Issue("u1", false)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetActor(t *testing.T) {
	t.Run("nil without Protect", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		assert.Nil(t, GetActor(c))
	})
}
