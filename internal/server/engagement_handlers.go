package server

import (
	"cliptube/internal/models"
	"cliptube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// VoteVideo handles POST /api/videos/:id/vote
// @Summary Toggle a like or dislike on a video
// @Description Applies, removes, or switches the caller's vote and returns the recounted counters
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param request body object{like_type=string} true "Vote type: like or dislike"
// @Success 200 {object} object{message=string,outcome=string,like_count=int,dislike_count=int}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /videos/{id}/vote [post]
func (s *Server) VoteVideo(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		LikeType string `json:"like_type"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.engagementService.ToggleVote(ctx, userID, videoID, req.LikeType)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":       voteMessage(result.Outcome),
		"outcome":       result.Outcome,
		"like_count":    result.LikeCount,
		"dislike_count": result.DislikeCount,
	})
}

func voteMessage(outcome service.VoteOutcome) string {
	switch outcome {
	case service.VoteRemoved:
		return "Vote removed"
	case service.VoteSwitched:
		return "Vote switched"
	default:
		return "Vote applied"
	}
}

// ToggleSubscription handles POST /api/users/:id/subscribe
// @Summary Toggle a subscription to a channel
// @Description Subscribes or unsubscribes the caller and returns the recounted subscriber count
// @Tags users
// @Produce json
// @Param id path int true "Channel user ID"
// @Success 200 {object} object{message=string,outcome=string,subscriber_count=int}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id}/subscribe [post]
func (s *Server) ToggleSubscription(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	channelID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.ToggleSubscription(ctx, userID, channelID)
	if err != nil {
		return respondServiceError(c, err)
	}

	message := "Subscribed"
	if result.Outcome == service.Unsubscribed {
		message = "Unsubscribed"
	}

	return c.JSON(fiber.Map{
		"message":          message,
		"outcome":          result.Outcome,
		"subscriber_count": result.SubscriberCount,
	})
}
