package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video-platform/docs"

	"video-platform/pkg/config"
	consts "video-platform/pkg/constants"

	"video-platform/internal/delivery/http/routers"
	"video-platform/internal/domain/repositories"
	"video-platform/internal/infrastructure/db"
	"video-platform/internal/infrastructure/processor"
	"video-platform/internal/infrastructure/queue"
	infra_repo "video-platform/internal/infrastructure/repositories"
	"video-platform/internal/infrastructure/storage"
	"video-platform/internal/usecases"

	"video-platform/internal/delivery/http/handlers"
	_ "video-platform/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	database, err := db.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		log.Fatalf("DB bağlantısı başarısız: %v", err)
	}

	// REDIS_HOST boşsa cache devre dışı kalır
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		})
	}

	if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
		sqlDB, err := database.DB()
		if err != nil {
			log.Fatalf("sql.DB alınamadı: %v", err)
		}
		goose.SetBaseFS(nil)
		if err := goose.SetDialect("sqlite3"); err != nil {
			log.Fatalf("goose dialect ayarlanamadı: %v", err)
		}
		if err := goose.Up(sqlDB, "."); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	}
	if err := db.AutoMigrate(database); err != nil {
		log.Fatalf("auto migration başarısız: %v", err)
	}

	cfg.EnsureDirs()

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxFileSize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Yüklenen dosyalar doğrudan sunulur
	app.Static(consts.UploadsURLPrefix, cfg.Upload.BaseDir)

	// Repositories
	videoRepo := infra_repo.NewVideoRepository(database)
	categoryRepo := infra_repo.NewCategoryRepository(database)
	playlistRepo := infra_repo.NewPlaylistRepository(database)
	userRepo := infra_repo.NewUserRepository(database)
	videoCommentRepo := infra_repo.NewVideoCommentRepository(database)
	postCommentRepo := infra_repo.NewPostCommentRepository(database)
	videoLikeRepo := infra_repo.NewVideoLikeRepository(database)
	postLikeRepo := infra_repo.NewPostLikeRepository(database)

	var store repositories.StorageStrategy
	if cfg.Media.Driver == "s3" {
		s3Store, err := storage.NewS3Storage(cfg.S3.Bucket, cfg.S3.Region)
		if err != nil {
			log.Fatalf("S3 storage başlatılamadı: %v", err)
		}
		store = s3Store
	} else {
		store = storage.NewLocalStorage(cfg.Upload.BaseDir)
	}

	proc := processor.NewVideoProcessor(cfg.Media.ProcessTimeout, cfg.Media.ThumbnailW, cfg.Media.ThumbnailH)

	// Services
	videoService := usecases.NewVideoService(videoRepo, categoryRepo, store, proc)
	engagementService := usecases.NewEngagementService(videoCommentRepo, postCommentRepo, videoLikeRepo, postLikeRepo, rdb)
	moderationService := usecases.NewModerationService(videoCommentRepo)
	authService := usecases.NewAuthService(userRepo, cfg.Auth.JWTSecret, 24*time.Hour)
	catalogService := usecases.NewCatalogService(categoryRepo, playlistRepo, videoRepo)

	// Eksik medya (thumbnail/süre) arka planda tamamlanır
	pool := queue.NewWorkerPool(2, videoService)
	maintenance := usecases.NewMaintenanceService(videoRepo, pool, []string{
		cfg.Upload.VideoDir, cfg.Upload.ThumbnailDir, cfg.Upload.AvatarDir,
	})

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 10m", maintenance.ScanMissingMedia); err != nil {
		log.Fatalf("cron job eklenemedi: %v", err)
	}
	if _, err := scheduler.AddFunc("@hourly", func() {
		if err := maintenance.SweepOrphans(24 * time.Hour); err != nil {
			log.Printf("orphan sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("cron job eklenemedi: %v", err)
	}
	scheduler.Start()

	// Handlers & Routes
	videoHandler := handlers.NewVideoHandler(videoService)
	likeHandler := handlers.NewLikeHandler(engagementService)
	commentHandler := handlers.NewCommentHandler(engagementService)
	moderationHandler := handlers.NewModerationHandler(moderationService)
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	routers.SetupVideoRoutes(app, cfg, videoHandler, moderationHandler)
	routers.SetupEngagementRoutes(app, cfg, likeHandler, commentHandler)
	routers.SetupAuthRoutes(app, authHandler)
	routers.SetupCatalogRoutes(app, cfg, catalogHandler)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server başlatılamadı: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown sinyali alındı, server kapatılıyor...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server düzgün kapatılamadı: %v", err)
	}

	// Çalışan cron işleri bitmeden pool kapatılmaz.
	<-scheduler.Stop().Done()
	pool.Shutdown()
	log.Println("Server düzgün bir şekilde kapatıldı")
}
