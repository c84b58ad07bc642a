package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tubewire/tubewire/internal/models"
)

const (
	anonymousName   = "匿名"
	anonymousAvatar = "😊"
)

// createCommentRequest is the POST /api/comments body
type createCommentRequest struct {
	ArticleID  string `json:"article_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
	Text       string `json:"text"`
}

func (req *createCommentRequest) validate() error {
	if strings.TrimSpace(req.ArticleID) == "" {
		return fmt.Errorf("article_id is required")
	}
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

// toComment builds the comment record, filling in anonymous defaults for
// omitted identity fields
func (req *createCommentRequest) toComment() models.Comment {
	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		userName = anonymousName
	}
	userAvatar := strings.TrimSpace(req.UserAvatar)
	if userAvatar == "" {
		userAvatar = anonymousAvatar
	}

	return models.Comment{
		ID:         uuid.NewString(),
		ArticleID:  req.ArticleID,
		UserName:   userName,
		UserAvatar: userAvatar,
		Text:       req.Text,
	}
}

// createComment handles POST /api/comments
func (r *Router) createComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()

	article, err := r.articles.GetByID(ctx, req.ArticleID)
	if err != nil {
		r.respondStoreError(c, err)
		return
	}
	if article == nil {
		respondError(c, http.StatusNotFound, fmt.Sprintf("article %s not found", req.ArticleID))
		return
	}

	comment := req.toComment()
	if err := r.comments.Create(ctx, &comment); err != nil {
		r.respondStoreError(c, err)
		return
	}

	if err := r.articles.IncrementCommentCount(ctx, req.ArticleID); err != nil {
		r.respondStoreError(c, err)
		return
	}

	respondData(c, comment)
}
