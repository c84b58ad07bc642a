package api

import (
	"testing"
)

func TestCreateCommentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     createCommentRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  createCommentRequest{ArticleID: "a1", Text: "hi"},
		},
		{
			name:    "missing article_id",
			req:     createCommentRequest{Text: "hi"},
			wantErr: "article_id is required",
		},
		{
			name:    "missing text",
			req:     createCommentRequest{ArticleID: "a1"},
			wantErr: "text is required",
		},
		{
			name:    "whitespace-only text",
			req:     createCommentRequest{ArticleID: "a1", Text: "   "},
			wantErr: "text is required",
		},
		{
			name:    "everything missing reports article_id first",
			req:     createCommentRequest{},
			wantErr: "article_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("validate() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateCommentRequest_ToComment(t *testing.T) {
	tests := []struct {
		name       string
		req        createCommentRequest
		wantName   string
		wantAvatar string
	}{
		{
			name:       "anonymous defaults",
			req:        createCommentRequest{ArticleID: "a1", Text: "hi"},
			wantName:   "匿名",
			wantAvatar: "😊",
		},
		{
			name:       "explicit identity kept",
			req:        createCommentRequest{ArticleID: "a1", Text: "hi", UserName: "太郎", UserAvatar: "🐱"},
			wantName:   "太郎",
			wantAvatar: "🐱",
		},
		{
			name:       "whitespace identity treated as omitted",
			req:        createCommentRequest{ArticleID: "a1", Text: "hi", UserName: "  ", UserAvatar: " "},
			wantName:   "匿名",
			wantAvatar: "😊",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := tt.req.toComment()

			if comment.UserName != tt.wantName {
				t.Errorf("UserName = %q, want %q", comment.UserName, tt.wantName)
			}
			if comment.UserAvatar != tt.wantAvatar {
				t.Errorf("UserAvatar = %q, want %q", comment.UserAvatar, tt.wantAvatar)
			}
			if comment.ArticleID != tt.req.ArticleID {
				t.Errorf("ArticleID = %q, want %q", comment.ArticleID, tt.req.ArticleID)
			}
			if comment.Text != tt.req.Text {
				t.Errorf("Text = %q, want %q", comment.Text, tt.req.Text)
			}
			if comment.ID == "" {
				t.Error("ID should be generated")
			}
		})
	}
}
