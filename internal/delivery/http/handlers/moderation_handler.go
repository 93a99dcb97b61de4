package handlers

import (
	"video-platform/internal/usecases"
	"video-platform/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

// ModerationHandler serves the admin moderation view; the role gate is the
// AdminOnly middleware on the route group.
type ModerationHandler struct {
	moderation usecases.ModerationService
}

func NewModerationHandler(moderation usecases.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

// AllComments
//
// @Summary      All Comments (admin)
// @Description  Every video comment joined with its video title
// @Tags         Moderation
// @Produce      json
// @Success      200  {array}  dto.ModerationComment
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /videos/comments/admin [get]
func (h *ModerationHandler) AllComments(c *fiber.Ctx) error {
	comments, err := h.moderation.AllComments()
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(comments)
}

func (h *ModerationHandler) DeleteComment(c *fiber.Ctx) error {
	commentID, err := parseID(c, "cid")
	if err != nil {
		return errors.HandleError(c, err)
	}
	if err := h.moderation.DeleteComment(commentID); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Yorum silindi"})
}
