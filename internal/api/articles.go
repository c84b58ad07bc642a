package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tubewire/tubewire/internal/cache"
	"github.com/tubewire/tubewire/internal/models"
)

const (
	defaultListLimit     = 20
	maxListLimit         = 100
	defaultTrendingLimit = 10
	maxTrendingLimit     = 50
)

// articleDetail is the single-article response shape with its comments and
// reactions attached
type articleDetail struct {
	models.Article
	Comments  []models.Comment  `json:"comments"`
	Reactions []models.Reaction `json:"reactions"`
}

// listArticles handles GET /api/articles
func (r *Router) listArticles(c *gin.Context) {
	category := c.Query("category")
	limit := parseBoundedInt(c.Query("limit"), defaultListLimit, maxListLimit)
	offset, err := strconv.Atoi(c.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	key := "articles:list:" + cache.HashKey(category, strconv.Itoa(limit), strconv.Itoa(offset))
	var articles []models.Article
	if r.fromCache(key, &articles) {
		respondData(c, articles)
		return
	}

	articles, err = r.articles.List(c.Request.Context(), category, limit, offset)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}

	if len(articles) > 0 {
		r.toCache(key, articles)
	}
	respondData(c, articles)
}

// listTrendingArticles handles GET /api/articles/trending
func (r *Router) listTrendingArticles(c *gin.Context) {
	limit := parseBoundedInt(c.Query("limit"), defaultTrendingLimit, maxTrendingLimit)

	key := "articles:trending:" + strconv.Itoa(limit)
	var articles []models.Article
	if r.fromCache(key, &articles) {
		respondData(c, articles)
		return
	}

	articles, err := r.articles.ListTrending(c.Request.Context(), limit)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}

	if len(articles) > 0 {
		r.toCache(key, articles)
	}
	respondData(c, articles)
}

// getArticle handles GET /api/articles/:id. Viewing an article counts as a
// view: the view counter is incremented atomically as a side effect.
func (r *Router) getArticle(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	article, err := r.articles.GetByID(ctx, id)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}
	if article == nil {
		respondError(c, http.StatusNotFound, fmt.Sprintf("article %s not found", id))
		return
	}

	if err := r.articles.IncrementViewCount(ctx, id); err != nil {
		r.respondStoreError(c, err)
		return
	}
	article.ViewCount++

	comments, err := r.comments.ListByArticle(ctx, id)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}

	reactions, err := r.reactions.ListByArticle(ctx, id)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}

	respondData(c, articleDetail{
		Article:   *article,
		Comments:  comments,
		Reactions: reactions,
	})
}

// parseBoundedInt parses a positive integer query value, falling back to def
// and capping at max
func parseBoundedInt(value string, def, max int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
