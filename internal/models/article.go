package models

import (
	"time"

	"gorm.io/datatypes"
)

// Article represents a synthesized news article built from a video and its
// comments. Created once by the ingestion job; counters are mutated by the
// API server afterwards.
type Article struct {
	ID            string            `gorm:"primaryKey;type:varchar(40);column:id" json:"id"`
	Title         string            `gorm:"type:varchar(512);not null;column:title" json:"title"`
	Content       string            `gorm:"type:text;column:content" json:"content"`
	Excerpt       string            `gorm:"type:varchar(300);column:excerpt" json:"excerpt"`
	Category      string            `gorm:"type:varchar(64);index;column:category" json:"category"`
	SourceURL     string            `gorm:"type:varchar(1024);column:source_url" json:"source_url"`
	ImageURL      string            `gorm:"type:varchar(1024);column:image_url" json:"image_url"`
	IsTrending    bool              `gorm:"not null;default:false;index;column:is_trending" json:"is_trending"`
	IsFire        bool              `gorm:"not null;default:false;column:is_fire" json:"is_fire"`
	ReactionCount int               `gorm:"not null;default:0;column:reaction_count" json:"reaction_count"`
	CommentCount  int               `gorm:"not null;default:0;column:comment_count" json:"comment_count"`
	ViewCount     int64             `gorm:"not null;default:0;column:view_count" json:"view_count"`
	PublishedAt   time.Time         `gorm:"index;column:published_at" json:"published_at"`
	RawData       datatypes.JSONMap `gorm:"type:jsonb;column:raw_data" json:"raw_data,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Article
func (Article) TableName() string {
	return "articles"
}
