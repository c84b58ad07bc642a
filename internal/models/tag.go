package models

import "time"

// Tag represents a topic tag with a usage counter. Read-only in this
// codebase.
type Tag struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name       string    `gorm:"type:varchar(64);uniqueIndex;not null;column:name" json:"name"`
	Count      int       `gorm:"not null;default:0;column:count" json:"count"`
	IsTrending bool      `gorm:"not null;default:false;index;column:is_trending" json:"is_trending"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// Product represents a recommendable product. Only the category matters to
// this service; the rest is pass-through for the client.
type Product struct {
	ID          string    `gorm:"primaryKey;type:varchar(40);column:id" json:"id"`
	Name        string    `gorm:"type:varchar(256);column:name" json:"name"`
	Category    string    `gorm:"type:varchar(64);index;column:category" json:"category"`
	Price       float64   `gorm:"type:decimal(12,2);default:0;column:price" json:"price"`
	ImageURL    string    `gorm:"type:varchar(1024);column:image_url" json:"image_url"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
