package usecases

import (
	"bytes"
	"mime/multipart"
	"testing"
	"time"

	"video-platform/internal/domain/entities"
	"video-platform/internal/infrastructure/db"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("test db açılamadı: %v", err)
	}
	if err := db.AutoMigrate(database); err != nil {
		t.Fatalf("migration başarısız: %v", err)
	}
	return database
}

func seedVideo(t *testing.T, database *gorm.DB, title, channel string, categoryID *uint, owner uint) *entities.Video {
	t.Helper()
	video := &entities.Video{
		Title:      title,
		Channel:    channel,
		VideoURL:   "/uploads/videos/" + title + ".mp4",
		CategoryID: categoryID,
		CreatedBy:  owner,
		CreatedAt:  time.Now(),
	}
	if err := database.Create(video).Error; err != nil {
		t.Fatalf("video seed edilemedi: %v", err)
	}
	return video
}

func uintPtr(v uint) *uint { return &v }

func sessionIdent(token string) entities.Identity {
	return entities.Identity{SessionToken: token}
}

func userIdent(id uint, admin bool) entities.Identity {
	return entities.Identity{UserID: uintPtr(id), IsAdmin: admin}
}

// makeFileHeader builds a real multipart file header the way a browser form
// upload would deliver it.
func makeFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("form dosyası oluşturulamadı: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("form dosyası yazılamadı: %v", err)
	}
	writer.Close()

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("form çözülemedi: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[field][0]
}
