package handlers

import (
	"strconv"

	"video-platform/internal/delivery/http/middleware"
	"video-platform/internal/domain/dto"
	"video-platform/internal/usecases"
	"video-platform/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	videoService usecases.VideoService
}

func NewVideoHandler(videoService usecases.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Upload
//
// @Summary      Upload Video
// @Description  Uploads a video file with optional thumbnail override, generates thumbnail and duration via ffmpeg
// @Tags         Videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        video        formData  file   true  "Video file"
// @Param        avatar       formData  file   false "Thumbnail override"
// @Param        title        formData  string true  "Title"
// @Param        description  formData  string false "Description"
// @Param        channel      formData  string true  "Channel name"
// @Param        category_id  formData  int    false "Category id"
// @Param        is_short     formData  string false "Short flag (on/true)"
// @Success      201  {object}  dto.UploadVideoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /videos/upload [post]
func (h *VideoHandler) Upload(c *fiber.Ctx) error {
	req, err := dto.ParseUploadVideoRequest(func(key string) string { return c.FormValue(key) })
	if err != nil {
		return errors.HandleError(c, err)
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		return errors.HandleError(c, errors.ErrValidation("video dosyası bulunamadı"))
	}
	avatarFile, _ := c.FormFile("avatar") // opsiyonel

	response, err := h.videoService.Upload(req, videoFile, avatarFile, middleware.IdentityFrom(c))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// List
//
// @Summary      List Videos
// @Description  Paginated, searchable video catalogue, newest first
// @Tags         Videos
// @Produce      json
// @Param        page    query  int     false "Page (default 1)"
// @Param        limit   query  int     false "Page size (default 10)"
// @Param        search  query  string  false "Matches title or channel"
// @Success      200  {object}  dto.VideoListResponse
// @Router       /videos [get]
func (h *VideoHandler) List(c *fiber.Ctx) error {
	page, limit := dto.ParsePagination(c.Query("page"), c.Query("limit"))

	response, err := h.videoService.List(page, limit, c.Query("search"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// GetByID
//
// @Summary      Video Detail
// @Description  Returns one video with related videos; every call increments the view counter
// @Tags         Videos
// @Produce      json
// @Param        id  path  int  true  "Video id"
// @Success      200  {object}  dto.VideoDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}

	response, err := h.videoService.GetByID(id)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

func (h *VideoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}

	var req dto.UpdateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrValidation("geçersiz istek gövdesi"))
	}
	videoFile, _ := c.FormFile("video") // opsiyonel yeniden yükleme

	response, err := h.videoService.Update(id, &req, videoFile, middleware.IdentityFrom(c))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}

	if err := h.videoService.Delete(id, middleware.IdentityFrom(c)); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Video silindi"})
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.ErrValidation("geçersiz id")
	}
	return uint(id), nil
}
