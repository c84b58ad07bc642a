package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tubewire/tubewire/internal/models"
)

const recommendFetchLimit = 50

// recommendArticlesRequest is the POST /api/recommendations/articles body
type recommendArticlesRequest struct {
	UserID         string   `json:"user_id"`
	Categories     []string `json:"categories"`
	ViewedArticles []string `json:"viewed_articles"`
}

// recommendProductsRequest is the POST /api/recommendations/products body
type recommendProductsRequest struct {
	Categories []string `json:"categories"`
}

// recommendArticles handles POST /api/recommendations/articles. Filtering
// by viewed IDs happens post-query, after the category filter.
func (r *Router) recommendArticles(c *gin.Context) {
	var req recommendArticlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	categories := req.Categories
	viewed := req.ViewedArticles

	// No explicit categories: fall back to the user's stored preferences
	if len(categories) == 0 && req.UserID != "" {
		pref, err := r.preferences.GetByUserID(ctx, req.UserID)
		if err != nil {
			r.respondStoreError(c, err)
			return
		}
		if pref != nil {
			categories = pref.FavoriteCategories
			viewed = append(viewed, pref.ViewedArticles...)
		}
	}

	articles, err := r.articles.ListByCategories(ctx, categories, recommendFetchLimit)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}

	respondData(c, excludeViewed(articles, viewed))
}

// recommendProducts handles POST /api/recommendations/products
func (r *Router) recommendProducts(c *gin.Context) {
	var req recommendProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	products, err := r.products.ListByCategories(c.Request.Context(), req.Categories, recommendFetchLimit)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}

	respondData(c, products)
}

// excludeViewed drops every article whose ID appears in the viewed list
func excludeViewed(articles []models.Article, viewed []string) []models.Article {
	if len(viewed) == 0 {
		return articles
	}

	seen := make(map[string]struct{}, len(viewed))
	for _, id := range viewed {
		seen[id] = struct{}{}
	}

	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		out = append(out, a)
	}
	return out
}
