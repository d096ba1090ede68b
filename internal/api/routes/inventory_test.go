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

func TestInventoryRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	sessions := services.NewMemorySessionStore(cfg.SessionTTL())
	router := setupTestRouter(cfg, sessions)

	admin := createTestUser(t, cfg, "Admin", "admin@example.com", "admin123", models.RoleAdmin)
	staff := createTestUser(t, cfg, "Staff", "staff@example.com", "staff123", models.RoleStaff)
	adminToken := createTestToken(t, sessions, admin)
	staffToken := createTestToken(t, sessions, staff)

	t.Run("POST /inventory-thresholds - upsert by item name", func(t *testing.T) {
		w := doJSON(router, "POST", "/inventory-thresholds", adminToken, map[string]interface{}{
			"item_name":     "Widgets",
			"current_level": 2,
			"min_level":     5,
		})
		assert.Equal(t, http.StatusOK, w.Code)

		// Replaces the existing row rather than adding a second one
		w = doJSON(router, "POST", "/inventory-thresholds", adminToken, map[string]interface{}{
			"item_name":     "Widgets",
			"current_level": 3,
			"min_level":     5,
			"unit":          "boxes",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var count int64
		models.DB.Model(&models.InventoryThreshold{}).Where("item_name = ?", "Widgets").Count(&count)
		assert.Equal(t, int64(1), count)

		var threshold models.InventoryThreshold
		require.NoError(t, models.DB.Where("item_name = ?", "Widgets").First(&threshold).Error)
		assert.Equal(t, 3, threshold.CurrentLevel)
		assert.Equal(t, "boxes", threshold.Unit)
	})

	t.Run("POST /inventory-thresholds - forbidden for staff", func(t *testing.T) {
		w := doJSON(router, "POST", "/inventory-thresholds", staffToken, map[string]interface{}{
			"item_name":     "Bolts",
			"current_level": 10,
			"min_level":     5,
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("GET /alerts/low-inventory - only items below minimum", func(t *testing.T) {
		w := doJSON(router, "POST", "/inventory-thresholds", adminToken, map[string]interface{}{
			"item_name":     "Bolts",
			"current_level": 10,
			"min_level":     5,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, "GET", "/alerts/low-inventory", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Items []models.InventoryThreshold `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Items, 1)
		assert.Equal(t, "Widgets", response.Items[0].ItemName)
	})
}

func TestRequisitionRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	sessions := services.NewMemorySessionStore(cfg.SessionTTL())
	router := setupTestRouter(cfg, sessions)

	staff := createTestUser(t, cfg, "Staff", "staff@example.com", "staff123", models.RoleStaff)
	staffToken := createTestToken(t, sessions, staff)

	t.Run("POST /requisitions - staff may open requests", func(t *testing.T) {
		w := doJSON(router, "POST", "/requisitions", staffToken, map[string]interface{}{
			"item_name":    "Widgets",
			"requested_by": "Warehouse",
			"quantity":     20,
			"reason":       "restock",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var response struct {
			Requisition models.Requisition `json:"requisition"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, models.RequisitionOpen, response.Requisition.Status)
		assert.Equal(t, "staff@example.com", response.Requisition.RequestedByUser)
	})

	t.Run("POST /requisitions - unauthorized without token", func(t *testing.T) {
		w := doJSON(router, "POST", "/requisitions", "", map[string]interface{}{
			"item_name":    "Widgets",
			"requested_by": "Warehouse",
			"quantity":     1,
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("POST /requisitions - quantity must be positive", func(t *testing.T) {
		w := doJSON(router, "POST", "/requisitions", staffToken, map[string]interface{}{
			"item_name":    "Widgets",
			"requested_by": "Warehouse",
			"quantity":     0,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET /requisitions - filter by status", func(t *testing.T) {
		w := doJSON(router, "GET", "/requisitions?status=open", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Items []models.Requisition `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Items, 1)

		w = doJSON(router, "GET", "/requisitions?status=approved", "", nil)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Empty(t, response.Items)

		w = doJSON(router, "GET", "/requisitions?status=bogus", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
