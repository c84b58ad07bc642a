package api

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// categoryCount is one row of the category statistics response
type categoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// categoryStats handles GET /api/stats/categories. Categories are fetched
// in bulk and tallied in-process.
func (r *Router) categoryStats(c *gin.Context) {
	categories, err := r.articles.ListCategories(c.Request.Context())
	if err != nil {
		r.respondStoreError(c, err)
		return
	}

	respondData(c, tallyCategories(categories))
}

// tallyCategories counts occurrences per category, sorted by count
// descending with name as tie-breaker
func tallyCategories(categories []string) []categoryCount {
	counts := make(map[string]int)
	for _, category := range categories {
		if category == "" {
			continue
		}
		counts[category]++
	}

	out := make([]categoryCount, 0, len(counts))
	for category, count := range counts {
		out = append(out, categoryCount{Category: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})

	return out
}
