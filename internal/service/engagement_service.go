// Package service contains business logic for the application's domain operations.
package service

import (
	"context"
	"errors"

	"cliptube/internal/cache"
	"cliptube/internal/models"
	"cliptube/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoteOutcome describes the effect a vote toggle had.
type VoteOutcome string

const (
	// VoteApplied means a new vote row was created.
	VoteApplied VoteOutcome = "applied"
	// VoteRemoved means the existing vote matched the request and was deleted.
	VoteRemoved VoteOutcome = "removed"
	// VoteSwitched means the existing vote's type was overwritten.
	VoteSwitched VoteOutcome = "switched"
)

// SubscriptionOutcome describes the effect a subscription toggle had.
type SubscriptionOutcome string

const (
	Subscribed   SubscriptionOutcome = "subscribed"
	Unsubscribed SubscriptionOutcome = "unsubscribed"
)

// VoteResult carries the toggle outcome and the recounted video counters.
type VoteResult struct {
	Outcome      VoteOutcome `json:"outcome"`
	LikeCount    uint        `json:"like_count"`
	DislikeCount uint        `json:"dislike_count"`
}

// SubscriptionResult carries the toggle outcome and the recounted subscriber count.
type SubscriptionResult struct {
	Outcome         SubscriptionOutcome `json:"outcome"`
	SubscriberCount uint                `json:"subscriber_count"`
}

// EngagementService applies vote and subscription toggles and keeps the
// denormalized counters on Video and User equal to the live row counts.
//
// Each toggle runs in a single transaction that first takes a row lock on the
// target entity, so concurrent toggles against the same video or channel
// serialize and the recounted values are exact.
type EngagementService struct {
	db *gorm.DB
}

// NewEngagementService creates a new EngagementService on the given database handle.
func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

// ToggleVote records, switches, or removes userID's vote on videoID.
//
// Repeating the same like_type toggles the vote off; sending the opposite
// type switches it in place. After the row mutation both counters are
// recomputed from the surviving like rows and persisted onto the video,
// all inside the same locked transaction.
func (s *EngagementService) ToggleVote(ctx context.Context, userID, videoID uint, likeType string) (*VoteResult, error) {
	if !models.ValidLikeType(likeType) {
		return nil, models.NewValidationError("like_type must be 'like' or 'dislike'")
	}

	var result VoteResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the video row first; this serializes every toggle that
		// targets the same video for the rest of the transaction.
		var video models.Video
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&video, videoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Video", videoID)
			}
			return err
		}

		var vote models.Like
		err := tx.Where("user_id = ? AND video_id = ?", userID, videoID).
			First(&vote).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote = models.Like{UserID: userID, VideoID: videoID, LikeType: likeType}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			result.Outcome = VoteApplied
		case err != nil:
			return err
		case vote.LikeType == likeType:
			if err := tx.Delete(&models.Like{}, vote.ID).Error; err != nil {
				return err
			}
			result.Outcome = VoteRemoved
		default:
			if err := tx.Model(&models.Like{}).Where("id = ?", vote.ID).
				Update("like_type", likeType).Error; err != nil {
				return err
			}
			result.Outcome = VoteSwitched
		}

		likes, dislikes, err := countVotes(tx, videoID)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Video{}).Where("id = ?", videoID).
			Updates(map[string]interface{}{
				"like_count":    likes,
				"dislike_count": dislikes,
			}).Error; err != nil {
			return err
		}

		result.LikeCount = uint(likes)
		result.DislikeCount = uint(dislikes)
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateVideo(ctx, videoID)
	observability.VoteToggles.WithLabelValues(string(result.Outcome)).Inc()
	return &result, nil
}

// ToggleSubscription subscribes subscriberID to channelID, or unsubscribes if
// a subscription already exists, and recounts the channel's subscriber_count
// inside the same locked transaction.
func (s *EngagementService) ToggleSubscription(ctx context.Context, subscriberID, channelID uint) (*SubscriptionResult, error) {
	if subscriberID == channelID {
		return nil, models.NewValidationError("You cannot subscribe to your own channel")
	}

	var result SubscriptionResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var channel models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&channel, channelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", channelID)
			}
			return err
		}

		var sub models.Subscription
		err := tx.Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberID, channelID).
			First(&sub).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			sub = models.Subscription{SubscriberID: subscriberID, SubscribedToID: channelID}
			if err := tx.Create(&sub).Error; err != nil {
				return err
			}
			result.Outcome = Subscribed
		case err != nil:
			return err
		default:
			if err := tx.Delete(&models.Subscription{}, sub.ID).Error; err != nil {
				return err
			}
			result.Outcome = Unsubscribed
		}

		var count int64
		if err := tx.Model(&models.Subscription{}).
			Where("subscribed_to_id = ?", channelID).
			Count(&count).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", channelID).
			Update("subscriber_count", count).Error; err != nil {
			return err
		}

		result.SubscriberCount = uint(count)
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateUser(ctx, channelID)
	observability.SubscriptionToggles.WithLabelValues(string(result.Outcome)).Inc()
	return &result, nil
}

func countVotes(tx *gorm.DB, videoID uint) (likes, dislikes int64, err error) {
	if err = tx.Model(&models.Like{}).
		Where("video_id = ? AND like_type = ?", videoID, models.LikeTypeLike).
		Count(&likes).Error; err != nil {
		return 0, 0, err
	}
	if err = tx.Model(&models.Like{}).
		Where("video_id = ? AND like_type = ?", videoID, models.LikeTypeDislike).
		Count(&dislikes).Error; err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}
