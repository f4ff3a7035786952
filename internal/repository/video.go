package repository

import (
	"context"

	"cliptube/internal/cache"
	"cliptube/internal/models"
	"cliptube/internal/observability"

	"gorm.io/gorm"
)

// VideoRepository defines the interface for video data operations
type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id uint) (*models.Video, error)
	List(ctx context.Context, limit, offset int, category string) ([]*models.Video, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int, publishedOnly bool) ([]*models.Video, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*models.Video, error)
	Update(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, id uint) error
	IncrementViewCount(ctx context.Context, id uint) error
}

type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *models.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).Preload("User").First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) List(ctx context.Context, limit, offset int, category string) ([]*models.Video, error) {
	var videos []*models.Video
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("is_published = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) ListByUser(ctx context.Context, userID uint, limit, offset int, publishedOnly bool) ([]*models.Video, error) {
	var videos []*models.Video
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID)
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) Search(ctx context.Context, query string, limit, offset int) ([]*models.Video, error) {
	var videos []*models.Video
	like := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_published = ?", true).
		Where("title ILIKE ? OR description ILIKE ?", like, like).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&videos).Error
	return videos, err
}

// Update persists the owner-editable columns only. The view and vote counters
// are owned by IncrementViewCount and the engagement recount path; writing
// them here would overwrite a concurrent recount with this writer's stale
// snapshot.
func (r *videoRepository) Update(ctx context.Context, video *models.Video) error {
	err := r.db.WithContext(ctx).
		Model(video).
		Select("title", "description", "category", "is_published").
		Updates(video).Error
	if err != nil {
		return err
	}
	cache.InvalidateVideo(ctx, video.ID)
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Video{}, id).Error; err != nil {
		return err
	}
	cache.InvalidateVideo(ctx, id)
	return nil
}

// IncrementViewCount bumps view_count atomically in the database. Lost updates
// between concurrent increments are acceptable for this counter; the single
// UPDATE keeps each individual increment exact.
func (r *videoRepository) IncrementViewCount(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	if err == nil {
		observability.VideoViews.Inc()
		cache.InvalidateVideo(ctx, id)
	}
	return err
}
