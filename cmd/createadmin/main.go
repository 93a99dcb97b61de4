package main

import (
	"errors"
	"log"
	"os"
	"time"

	"video-platform/internal/domain/entities"
	"video-platform/internal/infrastructure/db"
	infra_repo "video-platform/internal/infrastructure/repositories"
	"video-platform/pkg/config"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Admin hesabı oluşturur; hesap zaten varsa dokunmaz.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL ve ADMIN_PASSWORD zorunlu")
	}

	database, err := db.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		log.Fatalf("DB bağlantısı başarısız: %v", err)
	}
	if err := db.AutoMigrate(database); err != nil {
		log.Fatalf("auto migration başarısız: %v", err)
	}

	users := infra_repo.NewUserRepository(database)

	if _, err := users.GetByEmail(email); err == nil {
		log.Printf("Admin zaten mevcut: %s", email)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("kullanıcı sorgusu başarısız: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("şifre hashlenemedi: %v", err)
	}

	admin := &entities.User{
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(admin); err != nil {
		log.Fatalf("admin oluşturulamadı: %v", err)
	}
	log.Printf("Admin oluşturuldu: %s", email)
}
