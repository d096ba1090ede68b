package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"assetmgr/internal/config"
	"assetmgr/internal/models"
	"assetmgr/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupTestDB initializes a test database
func setupTestDB(t *testing.T) *config.Config {
	tmpDir := os.TempDir()
	testDBPath := fmt.Sprintf("%s/assetmgr_test_%d.db", tmpDir, time.Now().UnixNano())

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type: "sqlite",
			SQLite: config.SQLiteConfig{
				Path: testDBPath,
			},
		},
		Security: config.SecurityConfig{
			PasswordScheme: "sha256",
			PasswordSalt:   "test_salt",
			SessionTTL:     "12h",
		},
		Paths: config.PathsConfig{
			Uploads: t.TempDir(),
		},
	}

	err := models.InitDB(cfg)
	require.NoError(t, err)

	return cfg
}

// cleanupTestDB cleans up test database
func cleanupTestDB(t *testing.T, cfg *config.Config) {
	if models.DB != nil {
		sqlDB, err := models.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
		if cfg != nil && cfg.Database.Type == "sqlite" {
			os.Remove(cfg.Database.SQLite.Path)
		}
	}
	models.DB = nil
}

// createTestUser creates a user directly in the database
func createTestUser(t *testing.T, cfg *config.Config, name, email, password string, role models.Role) *models.User {
	hasher := services.NewPasswordHasher(cfg)
	hashed, err := hasher.Hash(password)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, models.DB.Create(user).Error)
	return user
}

// createTestToken issues a session for the user
func createTestToken(t *testing.T, sessions services.SessionStore, user *models.User) string {
	token, err := sessions.Issue(user)
	require.NoError(t, err)
	return token
}

// setupTestRouter creates a test router with routes
func setupTestRouter(cfg *config.Config, sessions services.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, cfg, sessions)
	return r
}

// doJSON performs a JSON request against the router
func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
