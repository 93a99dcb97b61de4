package handlers

import (
	"video-platform/internal/domain/dto"
	"video-platform/internal/usecases"
	"video-platform/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService usecases.AuthService
}

func NewAuthHandler(authService usecases.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrValidation("geçersiz istek gövdesi"))
	}
	if err := h.authService.Register(&req); err != nil {
		return errors.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Kayıt başarılı"})
}

// Login
//
// @Summary      Login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrValidation("geçersiz istek gövdesi"))
	}
	response, err := h.authService.Login(&req)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}
