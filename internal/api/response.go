package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const listCacheTTL = 5 * time.Minute

// respondData writes the success envelope
func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError writes the failure envelope
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// respondStoreError maps a store failure to a generic 500
func (r *Router) respondStoreError(c *gin.Context, err error) {
	r.logger.Error("Store request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	respondError(c, http.StatusInternalServerError, err.Error())
}

// fromCache loads a cached list into out; returns false on miss or when the
// cache is disabled
func (r *Router) fromCache(key string, out interface{}) bool {
	if r.cache == nil {
		return false
	}
	val, err := r.cache.Get(key)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

// toCache stores a list result; best effort, relies on TTL expiry for
// invalidation
func (r *Router) toCache(key string, v interface{}) {
	if r.cache == nil {
		return
	}
	bs, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = r.cache.Set(key, bs, listCacheTTL)
}
