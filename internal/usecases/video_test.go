package usecases

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"video-platform/internal/domain/dto"
	"video-platform/internal/domain/entities"
	"video-platform/internal/domain/repositories"
	"video-platform/internal/infrastructure/processor"
	infra_repo "video-platform/internal/infrastructure/repositories"
	"video-platform/internal/infrastructure/storage"

	"gorm.io/gorm"
)

func newVideoService(t *testing.T) (VideoService, *gorm.DB) {
	t.Helper()
	database := newTestDB(t)
	svc := NewVideoService(
		infra_repo.NewVideoRepository(database),
		infra_repo.NewCategoryRepository(database),
		storage.NewLocalStorage(t.TempDir()),
		processor.NewVideoProcessor(time.Second, 640, 360),
	)
	return svc, database
}

func TestList_Pagination(t *testing.T) {
	svc, database := newVideoService(t)
	for i := 0; i < 12; i++ {
		seedVideo(t, database, fmt.Sprintf("video-%02d", i), "kanal", nil, 1)
	}

	resp, err := svc.List(2, 5, "")
	if err != nil {
		t.Fatalf("listeleme başarısız: %v", err)
	}
	if len(resp.Videos) != 5 {
		t.Fatalf("2. sayfada beklenen 5 video, gelen %d", len(resp.Videos))
	}
	if resp.TotalCount != 12 {
		t.Fatalf("beklenen toplam 12, gelen %d", resp.TotalCount)
	}
	if resp.TotalPages != 3 {
		t.Fatalf("beklenen 3 sayfa, gelen %d", resp.TotalPages)
	}
	if resp.CurrentPage != 2 {
		t.Fatalf("beklenen sayfa 2, gelen %d", resp.CurrentPage)
	}
}

func TestList_LastPageIsPartial(t *testing.T) {
	svc, database := newVideoService(t)
	for i := 0; i < 12; i++ {
		seedVideo(t, database, fmt.Sprintf("video-%02d", i), "kanal", nil, 1)
	}

	resp, err := svc.List(3, 5, "")
	if err != nil {
		t.Fatalf("listeleme başarısız: %v", err)
	}
	if len(resp.Videos) != 2 {
		t.Fatalf("son sayfada beklenen 2 video, gelen %d", len(resp.Videos))
	}
}

func TestList_SearchMatchesTitleAndChannel(t *testing.T) {
	svc, database := newVideoService(t)
	seedVideo(t, database, "Go ile Backend", "dev-kanal", nil, 1)
	seedVideo(t, database, "Yemek Tarifi", "GO kanalı", nil, 1)
	seedVideo(t, database, "Gezi Vlogu", "seyahat", nil, 1)

	resp, err := svc.List(1, 10, "go")
	if err != nil {
		t.Fatalf("arama başarısız: %v", err)
	}
	if resp.TotalCount != 2 {
		t.Fatalf("büyük/küçük harf duyarsız aramada beklenen 2, gelen %d", resp.TotalCount)
	}
}

func TestGetByID_IncrementsViewsEveryCall(t *testing.T) {
	svc, database := newVideoService(t)
	video := seedVideo(t, database, "izlenen", "kanal", nil, 1)

	var last *dto.VideoDetailResponse
	for i := 0; i < 3; i++ {
		detail, err := svc.GetByID(video.ID)
		if err != nil {
			t.Fatalf("detay alınamadı: %v", err)
		}
		last = detail
	}
	if last.Video.Views != 3 {
		t.Fatalf("3 çağrı sonrası beklenen 3 izlenme, gelen %d", last.Video.Views)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newVideoService(t)

	_, err := svc.GetByID(999)
	assertCode(t, err, "not_found")
}

func TestGetByID_RelatedSameCategoryExcludesSelf(t *testing.T) {
	svc, database := newVideoService(t)
	category := &entities.Category{Name: "müzik"}
	if err := database.Create(category).Error; err != nil {
		t.Fatalf("kategori seed edilemedi: %v", err)
	}

	video := seedVideo(t, database, "ana", "kanal", uintPtr(category.ID), 1)
	for i := 0; i < 8; i++ {
		seedVideo(t, database, fmt.Sprintf("ilgili-%d", i), "kanal", uintPtr(category.ID), 1)
	}
	seedVideo(t, database, "alakasız", "kanal", nil, 1)

	detail, err := svc.GetByID(video.ID)
	if err != nil {
		t.Fatalf("detay alınamadı: %v", err)
	}
	if len(detail.RelatedVideos) != 6 {
		t.Fatalf("beklenen 6 ilgili video, gelen %d", len(detail.RelatedVideos))
	}
	for _, related := range detail.RelatedVideos {
		if related.ID == video.ID {
			t.Fatalf("ilgili videolar videonun kendisini içermemeli")
		}
		if related.CategoryID == nil || *related.CategoryID != category.ID {
			t.Fatalf("ilgili video farklı kategoriden: %+v", related)
		}
	}
}

func TestGetByID_NoCategoryMeansNoRelated(t *testing.T) {
	svc, database := newVideoService(t)
	video := seedVideo(t, database, "kategsiz", "kanal", nil, 1)
	seedVideo(t, database, "başka", "kanal", nil, 1)

	detail, err := svc.GetByID(video.ID)
	if err != nil {
		t.Fatalf("detay alınamadı: %v", err)
	}
	if len(detail.RelatedVideos) != 0 {
		t.Fatalf("kategorisiz videoda ilgili video beklenmiyordu, gelen %d", len(detail.RelatedVideos))
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	svc, database := newVideoService(t)
	video := seedVideo(t, database, "eski başlık", "kanal", nil, 1)

	newTitle := "yeni başlık"
	resp, err := svc.Update(video.ID, &dto.UpdateVideoRequest{Title: &newTitle}, nil, userIdent(1, false))
	if err != nil {
		t.Fatalf("güncelleme başarısız: %v", err)
	}
	if resp.Title != newTitle {
		t.Fatalf("başlık güncellenmedi: %q", resp.Title)
	}
	if resp.Channel != "kanal" {
		t.Fatalf("dokunulmayan alan değişti: %q", resp.Channel)
	}
}

func TestUpdate_RequiresOwnerOrAdmin(t *testing.T) {
	svc, database := newVideoService(t)
	video := seedVideo(t, database, "başkasının", "kanal", nil, 1)

	newTitle := "x"
	_, err := svc.Update(video.ID, &dto.UpdateVideoRequest{Title: &newTitle}, nil, userIdent(2, false))
	assertCode(t, err, "forbidden")

	if _, err := svc.Update(video.ID, &dto.UpdateVideoRequest{Title: &newTitle}, nil, userIdent(2, true)); err != nil {
		t.Fatalf("admin güncelleyemedi: %v", err)
	}
}

func TestDelete_CascadesEngagementRows(t *testing.T) {
	svc, database := newVideoService(t)
	video := seedVideo(t, database, "silinecek", "kanal", nil, 1)

	token := "tok-1"
	rows := []interface{}{
		&entities.VideoComment{VideoID: video.ID, Content: "yorum", SessionToken: &token, CreatedAt: time.Now()},
		&entities.VideoLike{VideoID: video.ID, SessionToken: &token, CreatedAt: time.Now()},
		&entities.Playlist{Name: "favoriler", CreatedBy: 1, CreatedAt: time.Now()},
	}
	for _, row := range rows {
		if err := database.Create(row).Error; err != nil {
			t.Fatalf("seed başarısız: %v", err)
		}
	}
	if err := database.Create(&entities.PlaylistVideo{PlaylistID: 1, VideoID: video.ID}).Error; err != nil {
		t.Fatalf("playlist üyeliği seed edilemedi: %v", err)
	}

	if err := svc.Delete(video.ID, userIdent(1, false)); err != nil {
		t.Fatalf("silme başarısız: %v", err)
	}

	for name, model := range map[string]interface{}{
		"videos":          &entities.Video{},
		"video_comments":  &entities.VideoComment{},
		"video_likes":     &entities.VideoLike{},
		"playlist_videos": &entities.PlaylistVideo{},
	} {
		var count int64
		if err := database.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("%s sayılamadı: %v", name, err)
		}
		if count != 0 {
			t.Fatalf("%s tablosunda %d satır kaldı", name, count)
		}
	}
}

// failingUpdateRepo lets a test force the row write to fail while every
// other repository call behaves normally.
type failingUpdateRepo struct {
	repositories.VideoRepository
}

func (r *failingUpdateRepo) Update(video *entities.Video) error {
	return errors.New("db down")
}

// seedStoredVideo writes a real file under the storage base and a row whose
// video_url points at it.
func seedStoredVideo(t *testing.T, database *gorm.DB, base string) *entities.Video {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(base, "videos"), 0755); err != nil {
		t.Fatalf("klasör oluşturulamadı: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "videos", "eski.mp4"), []byte("eski içerik"), 0644); err != nil {
		t.Fatalf("dosya yazılamadı: %v", err)
	}
	video := &entities.Video{
		Title:     "mevcut",
		Channel:   "kanal",
		VideoURL:  "/uploads/videos/eski.mp4",
		CreatedBy: 1,
		CreatedAt: time.Now(),
	}
	if err := database.Create(video).Error; err != nil {
		t.Fatalf("video seed edilemedi: %v", err)
	}
	return video
}

func TestUpload_PersistsRowAndStoresFile(t *testing.T) {
	database := newTestDB(t)
	store := storage.NewLocalStorage(t.TempDir())
	videoRepo := infra_repo.NewVideoRepository(database)
	svc := NewVideoService(
		videoRepo,
		infra_repo.NewCategoryRepository(database),
		store,
		processor.NewVideoProcessor(time.Second, 640, 360),
	)

	req := &dto.UploadVideoRequest{Title: "yeni video", Channel: "kanal"}
	videoFile := makeFileHeader(t, "video", "klip.mp4", "sahte video içeriği")

	resp, err := svc.Upload(req, videoFile, nil, userIdent(3, false))
	if err != nil {
		t.Fatalf("upload başarısız: %v", err)
	}
	if resp.VideoID == 0 {
		t.Fatalf("yanıtta video id yok")
	}

	video, _, err := videoRepo.GetByID(resp.VideoID)
	if err != nil {
		t.Fatalf("satır okunamadı: %v", err)
	}
	if video.VideoURL == "" || !store.Exists(video.VideoURL) {
		t.Fatalf("video_url depoda mevcut bir dosyayı göstermeli: %q", video.VideoURL)
	}
	if video.CreatedBy != 3 {
		t.Fatalf("beklenen sahip 3, gelen %d", video.CreatedBy)
	}
}

func TestUpdate_ReplacementRemovesOldFileAfterCommit(t *testing.T) {
	database := newTestDB(t)
	base := t.TempDir()
	store := storage.NewLocalStorage(base)
	videoRepo := infra_repo.NewVideoRepository(database)
	svc := NewVideoService(
		videoRepo,
		infra_repo.NewCategoryRepository(database),
		store,
		processor.NewVideoProcessor(time.Second, 640, 360),
	)
	video := seedStoredVideo(t, database, base)

	videoFile := makeFileHeader(t, "video", "yeni.mp4", "yeni içerik")
	resp, err := svc.Update(video.ID, &dto.UpdateVideoRequest{}, videoFile, userIdent(1, false))
	if err != nil {
		t.Fatalf("güncelleme başarısız: %v", err)
	}
	if resp.VideoURL == video.VideoURL {
		t.Fatalf("video_url yeni dosyayı göstermeli")
	}
	if !store.Exists(resp.VideoURL) {
		t.Fatalf("yeni dosya depoda yok: %q", resp.VideoURL)
	}
	if store.Exists(video.VideoURL) {
		t.Fatalf("eski dosya satır yazıldıktan sonra silinmeliydi")
	}
}

func TestUpdate_DBFailureKeepsOldFilesAndRollsBackNew(t *testing.T) {
	database := newTestDB(t)
	base := t.TempDir()
	store := storage.NewLocalStorage(base)
	svc := NewVideoService(
		&failingUpdateRepo{infra_repo.NewVideoRepository(database)},
		infra_repo.NewCategoryRepository(database),
		store,
		processor.NewVideoProcessor(time.Second, 640, 360),
	)
	video := seedStoredVideo(t, database, base)

	videoFile := makeFileHeader(t, "video", "yeni.mp4", "yeni içerik")
	_, err := svc.Update(video.ID, &dto.UpdateVideoRequest{}, videoFile, userIdent(1, false))
	assertCode(t, err, "storage_error")

	// Satır hala eski dosyayı gösteriyor; dosya yerinde durmalı.
	if !store.Exists(video.VideoURL) {
		t.Fatalf("eski dosya silinmemeliydi: %q", video.VideoURL)
	}

	// Yeni dosya ortada kalmamalı.
	entries, err := os.ReadDir(filepath.Join(base, "videos"))
	if err != nil {
		t.Fatalf("videos klasörü okunamadı: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("videos klasöründe sadece eski dosya kalmalıydı, %d dosya var", len(entries))
	}
}

func TestDelete_RequiresOwnerOrAdmin(t *testing.T) {
	svc, database := newVideoService(t)
	video := seedVideo(t, database, "korunan", "kanal", nil, 1)

	err := svc.Delete(video.ID, userIdent(2, false))
	assertCode(t, err, "forbidden")

	err = svc.Delete(video.ID, entities.Identity{SessionToken: "tok"})
	assertCode(t, err, "forbidden")
}
