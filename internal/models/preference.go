package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserPreference stores a user's favorite categories and viewed article IDs.
// UserID is the sole key; at most one record per user.
type UserPreference struct {
	UserID             string                      `gorm:"primaryKey;type:varchar(64);column:user_id" json:"user_id"`
	FavoriteCategories datatypes.JSONSlice[string] `gorm:"type:jsonb;column:favorite_categories" json:"favorite_categories"`
	ViewedArticles     datatypes.JSONSlice[string] `gorm:"type:jsonb;column:viewed_articles" json:"viewed_articles"`
	LastVisit          time.Time                   `gorm:"column:last_visit" json:"last_visit"`
	CreatedAt          time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for UserPreference
func (UserPreference) TableName() string {
	return "user_preferences"
}
