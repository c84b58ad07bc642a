package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/tubewire/tubewire/internal/models"
)

// upsertPreferenceRequest is the POST /api/user-preferences body. Slice
// fields distinguish omitted (nil) from explicitly empty.
type upsertPreferenceRequest struct {
	UserID             string   `json:"user_id"`
	FavoriteCategories []string `json:"favorite_categories"`
	ViewedArticles     []string `json:"viewed_articles"`
}

// getPreferences handles GET /api/user-preferences/:user_id. An unknown
// user yields an empty preference object, not a 404.
func (r *Router) getPreferences(c *gin.Context) {
	userID := c.Param("user_id")

	pref, err := r.preferences.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}
	if pref == nil {
		pref = &models.UserPreference{
			UserID:             userID,
			FavoriteCategories: datatypes.JSONSlice[string]{},
			ViewedArticles:     datatypes.JSONSlice[string]{},
		}
	}

	respondData(c, pref)
}

// upsertPreferences handles POST /api/user-preferences
func (r *Router) upsertPreferences(c *gin.Context) {
	var req upsertPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	ctx := c.Request.Context()

	existing, err := r.preferences.GetByUserID(ctx, req.UserID)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}

	merged := mergePreferences(existing, req, time.Now().UTC())
	if err := r.preferences.Upsert(ctx, merged); err != nil {
		r.respondStoreError(c, err)
		return
	}

	respondData(c, merged)
}

// mergePreferences merges an upsert request over the existing record
// field-by-field: omitted fields keep their prior value, last_visit is
// always refreshed.
func mergePreferences(existing *models.UserPreference, req upsertPreferenceRequest, now time.Time) *models.UserPreference {
	merged := &models.UserPreference{
		UserID:             req.UserID,
		FavoriteCategories: datatypes.JSONSlice[string]{},
		ViewedArticles:     datatypes.JSONSlice[string]{},
		LastVisit:          now,
	}
	if existing != nil {
		merged.FavoriteCategories = existing.FavoriteCategories
		merged.ViewedArticles = existing.ViewedArticles
		merged.CreatedAt = existing.CreatedAt
	}

	if req.FavoriteCategories != nil {
		merged.FavoriteCategories = datatypes.NewJSONSlice(req.FavoriteCategories)
	}
	if req.ViewedArticles != nil {
		merged.ViewedArticles = datatypes.NewJSONSlice(req.ViewedArticles)
	}

	return merged
}
