package server

import (
	"strconv"

	"cliptube/internal/models"
	"cliptube/internal/service"
	"cliptube/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// GetVideos handles GET /api/videos
func (s *Server) GetVideos(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)

	videos, err := s.videoService.ListVideos(ctx, service.ListVideosInput{
		Limit:    page.Limit,
		Offset:   page.Offset,
		Category: c.Query("category"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(videos)
}

// SearchVideos handles GET /api/videos/search?q=...
func (s *Server) SearchVideos(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 10)

	videos, err := s.videoService.SearchVideos(ctx, c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(videos)
}

// GetVideo handles GET /api/videos/:id. Every successful fetch counts a view.
func (s *Server) GetVideo(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	video, err := s.videoService.GetVideo(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(video)
}

// GetUserVideos handles GET /api/users/:id/videos
func (s *Server) GetUserVideos(c *fiber.Ctx) error {
	ctx := c.Context()
	channelID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	viewerID, _ := s.optionalUserID(c)

	videos, err := s.videoService.ListChannelVideos(ctx, channelID, page.Limit, page.Offset, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(videos)
}

// UploadVideo handles POST /api/videos. The request is multipart: a required
// "video" file part, an optional "thumbnail" file part, and metadata fields.
func (s *Server) UploadVideo(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	videoFile, err := c.FormFile("video")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A video file is required"))
	}

	// Reject bad metadata before touching the media store so a 400 never
	// leaves orphaned objects in the bucket.
	if err := s.videoService.ValidateNewVideo(c.FormValue("title"), c.FormValue("category")); err != nil {
		return respondServiceError(c, err)
	}

	src, err := videoFile.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	videoURL, err := s.media.Upload(ctx, storage.KindVideo, videoFile.Filename,
		videoFile.Header.Get("Content-Type"), videoFile.Size, src)
	src.Close()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	thumbnailURL := ""
	if thumbFile, thumbErr := c.FormFile("thumbnail"); thumbErr == nil {
		thumbSrc, openErr := thumbFile.Open()
		if openErr != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(openErr))
		}
		thumbnailURL, err = s.media.Upload(ctx, storage.KindThumbnail, thumbFile.Filename,
			thumbFile.Header.Get("Content-Type"), thumbFile.Size, thumbSrc)
		thumbSrc.Close()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
	}

	duration := uint(0)
	if d, convErr := strconv.ParseUint(c.FormValue("duration_seconds"), 10, 32); convErr == nil {
		duration = uint(d)
	}

	video, err := s.videoService.CreateVideo(ctx, service.CreateVideoInput{
		UserID:          userID,
		Title:           c.FormValue("title"),
		Description:     c.FormValue("description"),
		VideoURL:        videoURL,
		ThumbnailURL:    thumbnailURL,
		Category:        c.FormValue("category"),
		DurationSeconds: duration,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(video)
}

// UpdateVideo handles PUT /api/videos/:id
func (s *Server) UpdateVideo(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		IsPublished *bool  `json:"is_published"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	video, err := s.videoService.UpdateVideo(ctx, service.UpdateVideoInput{
		UserID:      userID,
		VideoID:     videoID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(video)
}

// DeleteVideo handles DELETE /api/videos/:id
func (s *Server) DeleteVideo(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.videoService.DeleteVideo(ctx, userID, videoID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
