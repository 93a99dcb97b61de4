package handlers

import (
	"video-platform/internal/delivery/http/middleware"
	"video-platform/internal/usecases"
	"video-platform/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalog usecases.CatalogService
}

func NewCatalogHandler(catalog usecases.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories()
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" form:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrValidation("geçersiz istek gövdesi"))
	}
	category, err := h.catalog.CreateCategory(req.Name)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	if err := h.catalog.DeleteCategory(id); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Kategori silindi"})
}

func (h *CatalogHandler) Playlists(c *fiber.Ctx) error {
	playlists, err := h.catalog.Playlists()
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(playlists)
}

func (h *CatalogHandler) CreatePlaylist(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" form:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrValidation("geçersiz istek gövdesi"))
	}
	playlist, err := h.catalog.CreatePlaylist(req.Name, middleware.IdentityFrom(c))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(playlist)
}

func (h *CatalogHandler) AddVideoToPlaylist(c *fiber.Ctx) error {
	playlistID, err := parseID(c, "id")
	if err != nil {
		return errors.HandleError(c, err)
	}
	var req struct {
		VideoID uint `json:"video_id" form:"video_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.VideoID == 0 {
		return errors.HandleError(c, errors.ErrValidation("video_id zorunlu"))
	}
	if err := h.catalog.AddVideoToPlaylist(playlistID, req.VideoID); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Video playliste eklendi"})
}
