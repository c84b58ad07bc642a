package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tubewire/tubewire/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ArticleRepository provides article-related database operations
type ArticleRepository struct {
	*Repository
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(repo *Repository) *ArticleRepository {
	return &ArticleRepository{Repository: repo}
}

// GetByID retrieves an article by ID
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// List retrieves articles ordered by publish time, optionally filtered by
// category, with offset/limit pagination
func (r *ArticleRepository) List(ctx context.Context, category string, limit, offset int) ([]models.Article, error) {
	var articles []models.Article
	query := r.db.WithContext(ctx).Model(&models.Article{}).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// ListTrending retrieves trending articles ordered by reaction count
func (r *ArticleRepository) ListTrending(ctx context.Context, limit int) ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.WithContext(ctx).
		Where("is_trending = ?", true).
		Order("reaction_count DESC").
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// ListByCategories retrieves articles whose category is in the given set
func (r *ArticleRepository) ListByCategories(ctx context.Context, categories []string, limit int) ([]models.Article, error) {
	var articles []models.Article
	query := r.db.WithContext(ctx).Model(&models.Article{}).
		Order("published_at DESC").
		Limit(limit)
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// ListCategories retrieves the category of every article, one entry per row
func (r *ArticleRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).Model(&models.Article{}).
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create creates a new article
func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// IncrementViewCount atomically increments an article's view counter
func (r *ArticleRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// IncrementCommentCount atomically increments an article's comment counter
func (r *ArticleRepository) IncrementCommentCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error
}

// CommentRepository provides comment-related database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByArticle retrieves comments for an article, newest first
func (r *CommentRepository) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ReactionRepository provides reaction-related database operations
type ReactionRepository struct {
	*Repository
}

// NewReactionRepository creates a new reaction repository
func NewReactionRepository(repo *Repository) *ReactionRepository {
	return &ReactionRepository{Repository: repo}
}

// ListByArticle retrieves reactions for an article
func (r *ReactionRepository) ListByArticle(ctx context.Context, articleID string) ([]models.Reaction, error) {
	var reactions []models.Reaction
	if err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Find(&reactions).Error; err != nil {
		return nil, err
	}
	return reactions, nil
}

// TagRepository provides tag-related database operations
type TagRepository struct {
	*Repository
}

// NewTagRepository creates a new tag repository
func NewTagRepository(repo *Repository) *TagRepository {
	return &TagRepository{Repository: repo}
}

// ListTrending retrieves trending tags ordered by usage count
func (r *TagRepository) ListTrending(ctx context.Context, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).
		Where("is_trending = ?", true).
		Order("count DESC").
		Limit(limit).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ProductRepository provides product-related database operations
type ProductRepository struct {
	*Repository
}

// NewProductRepository creates a new product repository
func NewProductRepository(repo *Repository) *ProductRepository {
	return &ProductRepository{Repository: repo}
}

// ListByCategories retrieves products whose category is in the given set
func (r *ProductRepository) ListByCategories(ctx context.Context, categories []string, limit int) ([]models.Product, error) {
	var products []models.Product
	query := r.db.WithContext(ctx).Model(&models.Product{}).Limit(limit)
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// PreferenceRepository provides user-preference database operations
type PreferenceRepository struct {
	*Repository
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(repo *Repository) *PreferenceRepository {
	return &PreferenceRepository{Repository: repo}
}

// GetByUserID retrieves a user's preferences
func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID string) (*models.UserPreference, error) {
	var pref models.UserPreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

// Upsert creates or replaces a user's preference record
func (r *PreferenceRepository) Upsert(ctx context.Context, pref *models.UserPreference) error {
	return r.db.WithContext(ctx).Save(pref).Error
}
