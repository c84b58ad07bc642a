package models

import "time"

// Comment represents a reader comment on an article. ArticleID is a
// reference, not ownership; comments are never deleted here.
type Comment struct {
	ID         string    `gorm:"primaryKey;type:varchar(40);column:id" json:"id"`
	ArticleID  string    `gorm:"type:varchar(40);not null;index;column:article_id" json:"article_id"`
	UserName   string    `gorm:"type:varchar(128);column:user_name" json:"user_name"`
	UserAvatar string    `gorm:"type:varchar(16);column:user_avatar" json:"user_avatar"`
	Text       string    `gorm:"type:text;not null;column:text" json:"text"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// Reaction represents an emoji-style reaction on an article. Read-only in
// this codebase; rows are written by an external service.
type Reaction struct {
	ID        string    `gorm:"primaryKey;type:varchar(40);column:id" json:"id"`
	ArticleID string    `gorm:"type:varchar(40);not null;index;column:article_id" json:"article_id"`
	Type      string    `gorm:"type:varchar(32);column:type" json:"type"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for Reaction
func (Reaction) TableName() string {
	return "reactions"
}
