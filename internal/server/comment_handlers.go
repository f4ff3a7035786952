package server

import (
	"cliptube/internal/cache"
	"cliptube/internal/models"
	"cliptube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/videos/:id/comments. Top-level comments come
// back newest first, each with its replies nested oldest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.Context()
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var comments []*models.Comment
	cacheErr := cache.Aside(ctx, cache.CommentsKey(videoID), &comments, cache.CommentsTTL, func() error {
		var loadErr error
		comments, loadErr = s.commentService.ListComments(ctx, videoID)
		return loadErr
	})
	if cacheErr != nil {
		return respondServiceError(c, cacheErr)
	}

	return c.JSON(comments)
}

// CreateComment handles POST /api/videos/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content         string `json:"content"`
		ParentCommentID *uint  `json:"parent_comment_id"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(ctx, service.CreateCommentInput{
		UserID:          userID,
		VideoID:         videoID,
		Content:         req.Content,
		ParentCommentID: req.ParentCommentID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteComment handles DELETE /api/videos/:id/comments/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	if _, err := s.parseID(c, "id"); err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(ctx, userID, commentID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
