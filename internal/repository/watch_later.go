package repository

import (
	"context"

	"cliptube/internal/models"

	"gorm.io/gorm"
)

// WatchLaterRepository defines interface for watch-later list operations
type WatchLaterRepository interface {
	Add(ctx context.Context, userID, videoID uint) error
	Remove(ctx context.Context, userID, videoID uint) error
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.WatchLater, error)
}

type watchLaterRepository struct {
	db *gorm.DB
}

// NewWatchLaterRepository creates a new WatchLaterRepository
func NewWatchLaterRepository(db *gorm.DB) WatchLaterRepository {
	return &watchLaterRepository{db: db}
}

// Add inserts the (user, video) pair if absent. ON CONFLICT DO NOTHING makes
// repeated adds idempotent and race-safe against the unique constraint.
func (r *watchLaterRepository) Add(ctx context.Context, userID, videoID uint) error {
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO watch_laters (user_id, video_id, added_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, video_id) DO NOTHING`,
		userID, videoID,
	).Error
}

func (r *watchLaterRepository) Remove(ctx context.Context, userID, videoID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&models.WatchLater{}).Error
}

func (r *watchLaterRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.WatchLater, error) {
	var entries []*models.WatchLater
	err := r.db.WithContext(ctx).
		Preload("Video").
		Preload("Video.User").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, err
}
