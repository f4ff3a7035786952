package service

import (
	"context"
	"errors"

	"cliptube/internal/models"
	"cliptube/internal/repository"

	"gorm.io/gorm"
)

// VideoService holds video CRUD and listing logic.
type VideoService struct {
	videoRepo repository.VideoRepository
	watchRepo repository.WatchLaterRepository
}

type CreateVideoInput struct {
	UserID          uint
	Title           string
	Description     string
	VideoURL        string
	ThumbnailURL    string
	Category        string
	DurationSeconds uint
}

type UpdateVideoInput struct {
	UserID      uint
	VideoID     uint
	Title       string
	Description string
	Category    string
	IsPublished *bool
}

type ListVideosInput struct {
	Limit    int
	Offset   int
	Category string
}

func NewVideoService(videoRepo repository.VideoRepository, watchRepo repository.WatchLaterRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo, watchRepo: watchRepo}
}

const maxVideoTitleLen = 200

// ValidateNewVideo checks the metadata of a video before it is created.
// Callers run it before uploading the media blob so a rejected request does
// not leave an orphaned object in the bucket.
func (s *VideoService) ValidateNewVideo(title, category string) error {
	if title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxVideoTitleLen {
		return models.NewValidationError("Title too long (max 200 characters)")
	}
	if category != "" && !models.ValidCategory(category) {
		return models.NewValidationError("Invalid category")
	}
	return nil
}

func (s *VideoService) CreateVideo(ctx context.Context, in CreateVideoInput) (*models.Video, error) {
	if err := s.ValidateNewVideo(in.Title, in.Category); err != nil {
		return nil, err
	}
	if in.VideoURL == "" {
		return nil, models.NewValidationError("A video file is required")
	}
	category := in.Category
	if category == "" {
		category = models.CategoryEntertainment
	}

	video := &models.Video{
		UserID:          in.UserID,
		Title:           in.Title,
		Description:     in.Description,
		VideoURL:        in.VideoURL,
		ThumbnailURL:    in.ThumbnailURL,
		Category:        category,
		DurationSeconds: in.DurationSeconds,
		IsPublished:     true,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}

	return s.videoRepo.GetByID(ctx, video.ID)
}

// GetVideo fetches a video and bumps its view count. The increment is
// best-effort: a failure to count the view never fails the fetch.
func (s *VideoService) GetVideo(ctx context.Context, id uint) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Video", id)
		}
		return nil, err
	}
	if incErr := s.videoRepo.IncrementViewCount(ctx, id); incErr == nil {
		video.ViewCount++
	}
	return video, nil
}

func (s *VideoService) ListVideos(ctx context.Context, in ListVideosInput) ([]*models.Video, error) {
	if in.Category != "" && !models.ValidCategory(in.Category) {
		return nil, models.NewValidationError("Invalid category")
	}
	return s.videoRepo.List(ctx, in.Limit, in.Offset, in.Category)
}

func (s *VideoService) ListChannelVideos(ctx context.Context, channelID uint, limit, offset int, viewerID uint) ([]*models.Video, error) {
	// Owners see their own unpublished videos too.
	publishedOnly := viewerID != channelID
	return s.videoRepo.ListByUser(ctx, channelID, limit, offset, publishedOnly)
}

func (s *VideoService) SearchVideos(ctx context.Context, query string, limit, offset int) ([]*models.Video, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.videoRepo.Search(ctx, query, limit, offset)
}

func (s *VideoService) UpdateVideo(ctx context.Context, in UpdateVideoInput) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, in.VideoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Video", in.VideoID)
		}
		return nil, err
	}
	if video.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own videos")
	}

	if in.Title != "" {
		if len(in.Title) > maxVideoTitleLen {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		video.Title = in.Title
	}
	if in.Description != "" {
		video.Description = in.Description
	}
	if in.Category != "" {
		if !models.ValidCategory(in.Category) {
			return nil, models.NewValidationError("Invalid category")
		}
		video.Category = in.Category
	}
	if in.IsPublished != nil {
		video.IsPublished = *in.IsPublished
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}
	return s.videoRepo.GetByID(ctx, video.ID)
}

func (s *VideoService) DeleteVideo(ctx context.Context, userID, videoID uint) error {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Video", videoID)
		}
		return err
	}
	if video.UserID != userID {
		return models.NewForbiddenError("You can only delete your own videos")
	}
	return s.videoRepo.Delete(ctx, videoID)
}

// AddToWatchLater saves the video on the user's list; repeated adds are no-ops.
func (s *VideoService) AddToWatchLater(ctx context.Context, userID, videoID uint) error {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Video", videoID)
		}
		return err
	}
	return s.watchRepo.Add(ctx, userID, videoID)
}

func (s *VideoService) RemoveFromWatchLater(ctx context.Context, userID, videoID uint) error {
	return s.watchRepo.Remove(ctx, userID, videoID)
}

func (s *VideoService) ListWatchLater(ctx context.Context, userID uint, limit, offset int) ([]*models.WatchLater, error) {
	return s.watchRepo.ListByUser(ctx, userID, limit, offset)
}
