package handlers

import (
	"video-platform/internal/delivery/http/middleware"
	"video-platform/internal/domain/dto"
	"video-platform/internal/usecases"
	"video-platform/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type LikeHandler struct {
	engagement usecases.EngagementService
}

func NewLikeHandler(engagement usecases.EngagementService) *LikeHandler {
	return &LikeHandler{engagement: engagement}
}

// LikeVideo
//
// @Summary      Like Video
// @Description  Idempotent like; anonymous callers get a session cookie. Returns the fresh total.
// @Tags         Engagement
// @Produce      json
// @Param        id  path  int  true  "Video id"
// @Success      200  {object}  dto.LikeResponse
// @Router       /video-likes/{id} [post]
func (h *LikeHandler) LikeVideo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	likes, err := h.engagement.LikeVideo(id, middleware.IdentityFrom(c))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.LikeResponse{Likes: likes})
}

func (h *LikeHandler) UnlikeVideo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	likes, err := h.engagement.UnlikeVideo(id, middleware.IdentityFrom(c))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.LikeResponse{Likes: likes})
}

func (h *LikeHandler) VideoLikes(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	likes, err := h.engagement.VideoLikes(id)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.LikeResponse{Likes: likes})
}

func (h *LikeHandler) LikePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	likes, err := h.engagement.LikePost(id, middleware.IdentityFrom(c))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.LikeResponse{Likes: likes})
}

func (h *LikeHandler) UnlikePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	likes, err := h.engagement.UnlikePost(id, middleware.IdentityFrom(c))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.LikeResponse{Likes: likes})
}

func (h *LikeHandler) PostLikes(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	likes, err := h.engagement.PostLikes(id)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.LikeResponse{Likes: likes})
}
