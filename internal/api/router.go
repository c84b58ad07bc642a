package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tubewire/tubewire/internal/cache"
	"github.com/tubewire/tubewire/internal/db"
	"github.com/tubewire/tubewire/pkg/logging"
)

// Router sets up API routes
type Router struct {
	db    *db.DB
	cache *cache.Cache

	articles    *db.ArticleRepository
	comments    *db.CommentRepository
	reactions   *db.ReactionRepository
	tags        *db.TagRepository
	products    *db.ProductRepository
	preferences *db.PreferenceRepository

	logger *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache) *Router {
	repo := db.NewRepository(database.DB)

	return &Router{
		db:          database,
		cache:       redisCache,
		articles:    db.NewArticleRepository(repo),
		comments:    db.NewCommentRepository(repo),
		reactions:   db.NewReactionRepository(repo),
		tags:        db.NewTagRepository(repo),
		products:    db.NewProductRepository(repo),
		preferences: db.NewPreferenceRepository(repo),
		logger:      logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.GET("/health", r.healthHandler)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	{
		api.GET("/articles", r.listArticles)
		api.GET("/articles/trending", r.listTrendingArticles)
		api.GET("/articles/:id", r.getArticle)

		api.POST("/comments", r.createComment)

		api.GET("/tags/trending", r.listTrendingTags)

		api.POST("/recommendations/articles", r.recommendArticles)
		api.POST("/recommendations/products", r.recommendProducts)

		api.GET("/user-preferences/:user_id", r.getPreferences)
		api.POST("/user-preferences", r.upsertPreferences)

		api.GET("/stats/categories", r.categoryStats)
	}
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "tubewire-api",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
