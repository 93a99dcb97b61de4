package errors

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if ae, ok := err.(*APIError); ok {
		// Orijinal hatayı logla (debug için)
		if ae.Err != nil {
			log.Printf("API error [%s]: %v", ae.Code, ae.Err)
		}

		var status int
		switch ae.Code {
		case "validation_error":
			status = fiber.StatusBadRequest
		case "not_found":
			status = fiber.StatusNotFound
		case "forbidden":
			status = fiber.StatusForbidden
		case "unauthorized":
			status = fiber.StatusUnauthorized
		default:
			status = fiber.StatusInternalServerError
		}

		// Client'a sadece Code + Message gönder
		return c.Status(status).JSON(fiber.Map{
			"error":   ae.Code,
			"message": ae.Message,
		})
	}

	// Yakalanmayan hatalar için fallback
	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "Sunucu hatası",
	})
}
