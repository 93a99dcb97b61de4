package routers

import (
	"video-platform/internal/delivery/http/handlers"
	"video-platform/internal/delivery/http/middleware"
	"video-platform/pkg/config"

	"github.com/gofiber/fiber/v2"
)

func SetupVideoRoutes(app *fiber.App, cfg *config.Config, videoHandler *handlers.VideoHandler, moderationHandler *handlers.ModerationHandler) {
	secret := []byte(cfg.Auth.JWTSecret)

	api := app.Group("/api/v1")

	// Moderasyon rotaları :id'li rotalardan ÖNCE kayıt edilmeli, yoksa
	// "comments" path parçası id olarak eşleşir.
	admin := api.Group("/videos/comments/admin", middleware.Authenticate(secret), middleware.AdminOnly())
	admin.Get("/", moderationHandler.AllComments)
	admin.Delete("/:cid", moderationHandler.DeleteComment)

	api.Post("/videos/upload", middleware.Authenticate(secret), videoHandler.Upload)
	api.Get("/videos", videoHandler.List)
	api.Get("/videos/:id", videoHandler.GetByID)
	api.Put("/videos/:id", middleware.Authenticate(secret), videoHandler.Update)
	api.Delete("/videos/:id", middleware.Authenticate(secret), videoHandler.Delete)
}
