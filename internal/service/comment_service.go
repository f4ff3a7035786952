package service

import (
	"context"
	"errors"
	"strings"

	"cliptube/internal/cache"
	"cliptube/internal/models"
	"cliptube/internal/repository"

	"gorm.io/gorm"
)

// CommentService handles comment threads on videos. Threads are one level
// deep: a comment either sits at the top level or replies to a top-level
// comment, never to another reply.
type CommentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
}

type CreateCommentInput struct {
	UserID          uint
	VideoID         uint
	Content         string
	ParentCommentID *uint
}

func NewCommentService(commentRepo repository.CommentRepository, videoRepo repository.VideoRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, videoRepo: videoRepo}
}

const maxCommentLen = 2000

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 2000 characters)")
	}

	if _, err := s.videoRepo.GetByID(ctx, in.VideoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Video", in.VideoID)
		}
		return nil, err
	}

	if in.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Comment", *in.ParentCommentID)
			}
			return nil, err
		}
		if parent.VideoID != in.VideoID {
			return nil, models.NewValidationError("Parent comment belongs to a different video")
		}
		if parent.ParentCommentID != nil {
			return nil, models.NewValidationError("Replies to replies are not allowed")
		}
	}

	comment := &models.Comment{
		VideoID:         in.VideoID,
		UserID:          in.UserID,
		Content:         content,
		ParentCommentID: in.ParentCommentID,
		Replies:         []*models.Comment{},
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.CommentsKey(in.VideoID))
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the video's top-level comments newest first, each
// carrying its replies oldest first.
func (s *CommentService) ListComments(ctx context.Context, videoID uint) ([]*models.Comment, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Video", videoID)
		}
		return nil, err
	}

	topLevel, err := s.commentRepo.ListTopLevelByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	parentIDs := make([]uint, 0, len(topLevel))
	byID := make(map[uint]*models.Comment, len(topLevel))
	for _, c := range topLevel {
		c.Replies = []*models.Comment{}
		parentIDs = append(parentIDs, c.ID)
		byID[c.ID] = c
	}

	replies, err := s.commentRepo.ListReplies(ctx, parentIDs)
	if err != nil {
		return nil, err
	}
	for _, reply := range replies {
		reply.Replies = []*models.Comment{}
		if parent, ok := byID[*reply.ParentCommentID]; ok {
			parent.Replies = append(parent.Replies, reply)
		}
	}

	return topLevel, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment", commentID)
		}
		return err
	}
	if comment.UserID != userID {
		return models.NewForbiddenError("You can only delete your own comments")
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.CommentsKey(comment.VideoID))
	return nil
}
