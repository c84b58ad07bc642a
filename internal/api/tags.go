package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tubewire/tubewire/internal/models"
)

// listTrendingTags handles GET /api/tags/trending
func (r *Router) listTrendingTags(c *gin.Context) {
	limit := parseBoundedInt(c.Query("limit"), defaultTrendingLimit, maxTrendingLimit)

	key := "tags:trending:" + strconv.Itoa(limit)
	var tags []models.Tag
	if r.fromCache(key, &tags) {
		respondData(c, tags)
		return
	}

	tags, err := r.tags.ListTrending(c.Request.Context(), limit)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}

	if len(tags) > 0 {
		r.toCache(key, tags)
	}
	respondData(c, tags)
}
