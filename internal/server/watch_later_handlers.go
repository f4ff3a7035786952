package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetWatchLater handles GET /api/users/me/watch-later
func (s *Server) GetWatchLater(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	entries, err := s.videoService.ListWatchLater(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(entries)
}

// AddWatchLater handles POST /api/videos/:id/watch-later. Adding a video that
// is already on the list succeeds without creating a duplicate.
func (s *Server) AddWatchLater(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.videoService.AddToWatchLater(ctx, userID, videoID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Saved to watch later"})
}

// RemoveWatchLater handles DELETE /api/videos/:id/watch-later
func (s *Server) RemoveWatchLater(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.videoService.RemoveFromWatchLater(ctx, userID, videoID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
