package handlers

import (
	"video-platform/internal/delivery/http/middleware"
	"video-platform/internal/domain/dto"
	"video-platform/internal/usecases"
	"video-platform/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	engagement usecases.EngagementService
}

func NewCommentHandler(engagement usecases.EngagementService) *CommentHandler {
	return &CommentHandler{engagement: engagement}
}

// ListVideoComments
//
// @Summary      List Video Comments
// @Tags         Engagement
// @Produce      json
// @Param        id  path  int  true  "Video id"
// @Success      200  {array}  dto.CommentResponse
// @Router       /videos/{id}/comments [get]
func (h *CommentHandler) ListVideoComments(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	comments, err := h.engagement.ListVideoComments(id)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(comments)
}

// CreateVideoComment
//
// @Summary      Create Video Comment
// @Description  Content must be non-empty after trimming; anonymous callers get a session cookie
// @Tags         Engagement
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "Video id"
// @Success      201  {object}  dto.CommentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /videos/{id}/comments [post]
func (h *CommentHandler) CreateVideoComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrValidation("geçersiz istek gövdesi"))
	}

	comment, err := h.engagement.CreateVideoComment(id, req.Content, middleware.IdentityFrom(c))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) DeleteVideoComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	commentID, err := parseID(c, "cid")
	if err != nil {
		return errors.HandleError(c, err)
	}

	if err := h.engagement.DeleteVideoComment(id, commentID, middleware.IdentityFrom(c)); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Yorum silindi"})
}

func (h *CommentHandler) ListPostComments(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	comments, err := h.engagement.ListPostComments(id)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(comments)
}

func (h *CommentHandler) CreatePostComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrValidation("geçersiz istek gövdesi"))
	}

	comment, err := h.engagement.CreatePostComment(id, req.Content, middleware.IdentityFrom(c))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) DeletePostComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	commentID, err := parseID(c, "cid")
	if err != nil {
		return errors.HandleError(c, err)
	}

	if err := h.engagement.DeletePostComment(id, commentID, middleware.IdentityFrom(c)); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Yorum silindi"})
}
