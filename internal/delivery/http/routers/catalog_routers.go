package routers

import (
	"video-platform/internal/delivery/http/handlers"
	"video-platform/internal/delivery/http/middleware"
	"video-platform/pkg/config"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(app *fiber.App, cfg *config.Config, catalogHandler *handlers.CatalogHandler) {
	secret := []byte(cfg.Auth.JWTSecret)

	api := app.Group("/api/v1")

	api.Get("/categories", catalogHandler.Categories)
	api.Post("/categories", middleware.Authenticate(secret), middleware.AdminOnly(), catalogHandler.CreateCategory)
	api.Delete("/categories/:id", middleware.Authenticate(secret), middleware.AdminOnly(), catalogHandler.DeleteCategory)

	api.Get("/playlists", catalogHandler.Playlists)
	api.Post("/playlists", middleware.Authenticate(secret), catalogHandler.CreatePlaylist)
	api.Post("/playlists/:id/videos", middleware.Authenticate(secret), catalogHandler.AddVideoToPlaylist)
}
