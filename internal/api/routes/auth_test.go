package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"assetmgr/internal/models"
	"assetmgr/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	sessions := services.NewMemorySessionStore(cfg.SessionTTL())
	router := setupTestRouter(cfg, sessions)

	t.Run("POST /auth/register - first user may become admin", func(t *testing.T) {
		w := doJSON(router, "POST", "/auth/register", "", map[string]interface{}{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "secret123",
			"role":     "admin",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "admin", response["role"])
		assert.Equal(t, "Alice", response["name"])
		assert.Equal(t, "alice@example.com", response["email"])
		assert.NotEmpty(t, response["token"])
	})

	t.Run("POST /auth/register - later users forced to staff", func(t *testing.T) {
		w := doJSON(router, "POST", "/auth/register", "", map[string]interface{}{
			"name":     "Bob",
			"email":    "bob@example.com",
			"password": "secret123",
			"role":     "manager",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "staff", response["role"])
	})

	t.Run("POST /auth/register - duplicate email conflict", func(t *testing.T) {
		w := doJSON(router, "POST", "/auth/register", "", map[string]interface{}{
			"name":     "Alice Again",
			"email":    "alice@example.com",
			"password": "other",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("POST /auth/register - invalid role rejected", func(t *testing.T) {
		w := doJSON(router, "POST", "/auth/register", "", map[string]interface{}{
			"name":     "Mallory",
			"email":    "mallory@example.com",
			"password": "secret123",
			"role":     "superuser",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("POST /auth/login - success", func(t *testing.T) {
		w := doJSON(router, "POST", "/auth/login", "", map[string]interface{}{
			"email":    "alice@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "admin", response["role"])
		assert.NotEmpty(t, response["token"])
	})

	t.Run("POST /auth/login - wrong password and unknown email look alike", func(t *testing.T) {
		wrongPassword := doJSON(router, "POST", "/auth/login", "", map[string]interface{}{
			"email":    "alice@example.com",
			"password": "nope",
		})
		unknownEmail := doJSON(router, "POST", "/auth/login", "", map[string]interface{}{
			"email":    "ghost@example.com",
			"password": "nope",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})

	t.Run("POST /auth/logout - revokes the session", func(t *testing.T) {
		login := doJSON(router, "POST", "/auth/login", "", map[string]interface{}{
			"email":    "alice@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, login.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(login.Body.Bytes(), &response))
		token := response["token"].(string)

		w := doJSON(router, "POST", "/auth/logout", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		// Token no longer usable
		me := doJSON(router, "GET", "/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, me.Code)
	})

	t.Run("GET /auth/me - reflects live user record", func(t *testing.T) {
		user := createTestUser(t, cfg, "Carol", "carol@example.com", "secret123", models.RoleStaff)
		token := createTestToken(t, sessions, user)

		w := doJSON(router, "GET", "/auth/me", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var me models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
		assert.Equal(t, models.RoleStaff, me.Role)

		// Promote in storage; no re-login required
		require.NoError(t, models.DB.Model(user).Update("role", models.RoleManager).Error)

		w = doJSON(router, "GET", "/auth/me", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
		assert.Equal(t, models.RoleManager, me.Role)
	})

	t.Run("deactivated user is rejected on next request", func(t *testing.T) {
		user := createTestUser(t, cfg, "Dave", "dave@example.com", "secret123", models.RoleStaff)
		token := createTestToken(t, sessions, user)

		w := doJSON(router, "GET", "/auth/me", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, models.DB.Model(user).Update("is_active", false).Error)

		w = doJSON(router, "GET", "/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
