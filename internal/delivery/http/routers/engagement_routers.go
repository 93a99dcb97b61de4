package routers

import (
	"video-platform/internal/delivery/http/handlers"
	"video-platform/internal/delivery/http/middleware"
	"video-platform/pkg/config"

	"github.com/gofiber/fiber/v2"
)

func SetupEngagementRoutes(app *fiber.App, cfg *config.Config, likeHandler *handlers.LikeHandler, commentHandler *handlers.CommentHandler) {
	secret := []byte(cfg.Auth.JWTSecret)
	maxAge := cfg.Auth.SessionMaxAge

	optional := middleware.OptionalAuthenticate(secret)
	// State değiştiren anonim istekler cookie basar, okumalar basmaz.
	minting := middleware.ResolveSession(true, maxAge)
	readonly := middleware.ResolveSession(false, maxAge)

	api := app.Group("/api/v1")

	api.Post("/video-likes/:id", optional, minting, likeHandler.LikeVideo)
	api.Delete("/video-likes/:id", optional, readonly, likeHandler.UnlikeVideo)
	api.Get("/video-likes/:id", likeHandler.VideoLikes)

	api.Post("/post-likes/:id", optional, minting, likeHandler.LikePost)
	api.Delete("/post-likes/:id", optional, readonly, likeHandler.UnlikePost)
	api.Get("/post-likes/:id", likeHandler.PostLikes)

	api.Get("/videos/:id/comments", commentHandler.ListVideoComments)
	api.Post("/videos/:id/comments", optional, minting, commentHandler.CreateVideoComment)
	api.Delete("/videos/:id/comments/:cid", middleware.Authenticate(secret), commentHandler.DeleteVideoComment)

	api.Get("/posts/:id/comments", commentHandler.ListPostComments)
	api.Post("/posts/:id/comments", optional, minting, commentHandler.CreatePostComment)
	api.Delete("/posts/:id/comments/:cid", middleware.Authenticate(secret), commentHandler.DeletePostComment)
}
