package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"video-platform/internal/domain/dto"
	"video-platform/internal/domain/entities"
	"video-platform/internal/domain/repositories"
	"video-platform/internal/infrastructure/processor"
	"video-platform/pkg/constants"
	apperr "video-platform/pkg/errors"
	"video-platform/pkg/file"
	"video-platform/pkg/helper"

	"gorm.io/gorm"
)

const relatedVideoLimit = 6

type VideoService interface {
	Upload(req *dto.UploadVideoRequest, videoFile, avatarFile *multipart.FileHeader, ident entities.Identity) (*dto.UploadVideoResponse, error)
	List(page, limit int, search string) (*dto.VideoListResponse, error)
	GetByID(id uint) (*dto.VideoDetailResponse, error)
	Update(id uint, req *dto.UpdateVideoRequest, videoFile *multipart.FileHeader, ident entities.Identity) (*dto.VideoResponse, error)
	Delete(id uint, ident entities.Identity) error
	BackfillMedia(videoID uint) error
}

type videoService struct {
	videoRepo    repositories.VideoRepository
	categoryRepo repositories.CategoryRepository
	storage      repositories.StorageStrategy
	processor    *processor.VideoProcessor
}

func NewVideoService(
	videoRepo repositories.VideoRepository,
	categoryRepo repositories.CategoryRepository,
	storage repositories.StorageStrategy,
	proc *processor.VideoProcessor,
) VideoService {
	return &videoService{
		videoRepo:    videoRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
		processor:    proc,
	}
}

func (s *videoService) Upload(req *dto.UploadVideoRequest, videoFile, avatarFile *multipart.FileHeader, ident entities.Identity) (*dto.UploadVideoResponse, error) {
	if !ident.Authenticated() {
		return nil, apperr.ErrUnauthorized("giriş yapmalısınız")
	}
	if videoFile == nil {
		return nil, apperr.ErrValidation("video dosyası zorunlu")
	}
	if !file.IsVideoFile(videoFile.Filename) {
		return nil, apperr.ErrValidation("desteklenmeyen video formatı")
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.ErrValidation("kategori bulunamadı")
			}
			return nil, apperr.ErrStorage(err)
		}
	}

	tempPath, err := saveTemp(videoFile)
	if err != nil {
		return nil, apperr.ErrFileStorage(err)
	}

	// Her iki probing adımı da best effort: encoder hatası upload'ı
	// düşürmez, eksikler backfill işinde tamamlanır.
	result, procErr := s.processor.Process(context.Background(), tempPath, os.TempDir())
	if procErr != nil {
		log.Printf("WARN: medya işleme başarısız (%s): %v", videoFile.Filename, procErr)
	}

	videoURL, err := s.storage.SavePath(tempPath, "videos", file.UniqueName(videoFile.Filename))
	if err != nil {
		os.Remove(tempPath)
		if result.ThumbnailPath != "" {
			os.Remove(result.ThumbnailPath)
		}
		return nil, apperr.ErrFileStorage(err)
	}

	avatarURL := s.storeThumbnail(avatarFile, result.ThumbnailPath)

	duration := ""
	if result.Seconds > 0 {
		duration = helper.FormatDuration(result.Seconds)
	}

	video := &entities.Video{
		Title:       req.Title,
		Description: req.Description,
		Channel:     req.Channel,
		VideoURL:    videoURL,
		AvatarURL:   avatarURL,
		CategoryID:  req.CategoryID,
		CreatedBy:   *ident.UserID,
		IsShort:     req.IsShort,
		Duration:    duration,
		CreatedAt:   time.Now(),
	}
	if err := s.videoRepo.Create(video); err != nil {
		// Yarım satır kalmamalı: yazılmış dosyaları geri al.
		s.storage.Remove(videoURL)
		if avatarURL != "" {
			s.storage.Remove(avatarURL)
		}
		return nil, apperr.ErrStorage(err)
	}

	return &dto.UploadVideoResponse{
		Status:  constants.StatusCreated,
		VideoID: video.ID,
		Message: "Video yüklendi",
	}, nil
}

// storeThumbnail prefers the user-supplied override; otherwise it moves the
// ffmpeg-generated frame into place. Either path is best effort.
func (s *videoService) storeThumbnail(avatarFile *multipart.FileHeader, generatedPath string) string {
	if avatarFile != nil && file.IsImageFile(avatarFile.Filename) {
		if avatarTemp, err := saveTemp(avatarFile); err == nil {
			normalized, err := processor.NormalizeThumbnail(avatarTemp, os.TempDir(), s.processor.ThumbnailW, s.processor.ThumbnailH)
			os.Remove(avatarTemp)
			if err == nil {
				if url, err := s.storage.SavePath(normalized, "avatars", file.UniqueName("thumb.jpg")); err == nil {
					if generatedPath != "" {
						os.Remove(generatedPath)
					}
					return url
				}
				os.Remove(normalized)
			} else {
				log.Printf("WARN: kapak görseli normalize edilemedi: %v", err)
			}
		}
	}

	if generatedPath != "" {
		url, err := s.storage.SavePath(generatedPath, "thumbnails", filepath.Base(generatedPath))
		if err != nil {
			log.Printf("WARN: thumbnail kaydedilemedi: %v", err)
			os.Remove(generatedPath)
			return ""
		}
		return url
	}
	return ""
}

func (s *videoService) List(page, limit int, search string) (*dto.VideoListResponse, error) {
	videos, categoryNames, total, err := s.videoRepo.List(page, limit, search)
	if err != nil {
		return nil, apperr.ErrStorage(err)
	}

	response := &dto.VideoListResponse{
		Videos:      make([]dto.VideoResponse, 0, len(videos)),
		TotalCount:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}
	for _, v := range videos {
		name := ""
		if v.CategoryID != nil {
			name = categoryNames[*v.CategoryID]
		}
		response.Videos = append(response.Videos, toVideoResponse(v, name))
	}
	return response, nil
}

// GetByID increments the view counter on every call; repeated fetches by the
// same client count every time.
func (s *videoService) GetByID(id uint) (*dto.VideoDetailResponse, error) {
	if err := s.videoRepo.IncrementViews(id); err != nil {
		return nil, apperr.ErrStorage(err)
	}

	video, categoryName, err := s.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound("video bulunamadı")
		}
		return nil, apperr.ErrStorage(err)
	}

	related, err := s.videoRepo.Related(video, relatedVideoLimit)
	if err != nil {
		return nil, apperr.ErrStorage(err)
	}

	detail := &dto.VideoDetailResponse{
		Video:         toVideoResponse(*video, categoryName),
		RelatedVideos: make([]dto.VideoResponse, 0, len(related)),
	}
	for _, v := range related {
		detail.RelatedVideos = append(detail.RelatedVideos, toVideoResponse(v, categoryName))
	}
	return detail, nil
}

func (s *videoService) Update(id uint, req *dto.UpdateVideoRequest, videoFile *multipart.FileHeader, ident entities.Identity) (*dto.VideoResponse, error) {
	video, categoryName, err := s.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound("video bulunamadı")
		}
		return nil, apperr.ErrStorage(err)
	}
	if err := requireOwnerOrAdmin(video.CreatedBy, ident); err != nil {
		return nil, err
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.Channel != nil {
		video.Channel = *req.Channel
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			return nil, apperr.ErrValidation("kategori bulunamadı")
		}
		video.CategoryID = req.CategoryID
	}
	if req.IsShort != nil {
		video.IsShort = *req.IsShort
	}

	var oldVideoURL, oldAvatarURL string
	replaced := false
	if videoFile != nil {
		if !file.IsVideoFile(videoFile.Filename) {
			return nil, apperr.ErrValidation("desteklenmeyen video formatı")
		}
		oldVideoURL, oldAvatarURL = video.VideoURL, video.AvatarURL

		tempPath, err := saveTemp(videoFile)
		if err != nil {
			return nil, apperr.ErrFileStorage(err)
		}
		result, procErr := s.processor.Process(context.Background(), tempPath, os.TempDir())
		if procErr != nil {
			log.Printf("WARN: medya işleme başarısız (%s): %v", videoFile.Filename, procErr)
		}
		newURL, err := s.storage.SavePath(tempPath, "videos", file.UniqueName(videoFile.Filename))
		if err != nil {
			os.Remove(tempPath)
			return nil, apperr.ErrFileStorage(err)
		}
		video.VideoURL = newURL
		video.Duration = ""
		if result.Seconds > 0 {
			video.Duration = helper.FormatDuration(result.Seconds)
		}
		if result.ThumbnailPath != "" {
			if url, err := s.storage.SavePath(result.ThumbnailPath, "thumbnails", filepath.Base(result.ThumbnailPath)); err == nil {
				video.AvatarURL = url
			}
		}
		replaced = true
	}

	if err := s.videoRepo.Update(video); err != nil {
		// Satır yazılamadıysa yeni dosyalar geri alınır; eski satır hala
		// eski dosyaları gösterdiği için onlara dokunulmaz.
		if replaced {
			s.storage.Remove(video.VideoURL)
			if video.AvatarURL != "" && video.AvatarURL != oldAvatarURL {
				s.storage.Remove(video.AvatarURL)
			}
		}
		return nil, apperr.ErrStorage(err)
	}

	// Eski dosyalar ancak yeni satır yazıldıktan sonra silinir.
	if replaced {
		s.storage.Remove(oldVideoURL)
		if oldAvatarURL != "" && oldAvatarURL != video.AvatarURL {
			s.storage.Remove(oldAvatarURL)
		}
	}
	resp := toVideoResponse(*video, categoryName)
	return &resp, nil
}

func (s *videoService) Delete(id uint, ident entities.Identity) error {
	video, _, err := s.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound("video bulunamadı")
		}
		return apperr.ErrStorage(err)
	}
	if err := requireOwnerOrAdmin(video.CreatedBy, ident); err != nil {
		return err
	}

	if err := s.videoRepo.DeleteCascade(id); err != nil {
		return apperr.ErrStorage(err)
	}

	// Dosya temizliği best effort; satır gittiyse iş tamam sayılır.
	if err := s.storage.Remove(video.VideoURL); err != nil {
		log.Printf("WARN: video dosyası silinemedi (%s): %v", video.VideoURL, err)
	}
	if video.AvatarURL != "" {
		if err := s.storage.Remove(video.AvatarURL); err != nil {
			log.Printf("WARN: thumbnail silinemedi (%s): %v", video.AvatarURL, err)
		}
	}
	return nil
}

// BackfillMedia retries thumbnail/duration probing for a row whose upload
// time processing failed. Called from the worker pool.
func (s *videoService) BackfillMedia(videoID uint) error {
	video, _, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		return err
	}
	if video.AvatarURL != "" && video.Duration != "" {
		return nil
	}

	localPath, cleanup, err := s.storage.Materialize(video.VideoURL)
	if err != nil {
		return err
	}
	defer cleanup()

	result, procErr := s.processor.Process(context.Background(), localPath, os.TempDir())

	changed := false
	if video.Duration == "" && result.Seconds > 0 {
		video.Duration = helper.FormatDuration(result.Seconds)
		changed = true
	}
	if video.AvatarURL == "" && result.ThumbnailPath != "" {
		if url, err := s.storage.SavePath(result.ThumbnailPath, "thumbnails", filepath.Base(result.ThumbnailPath)); err == nil {
			video.AvatarURL = url
			changed = true
		}
	}

	if !changed {
		return procErr
	}
	return s.videoRepo.Update(video)
}

func requireOwnerOrAdmin(ownerID uint, ident entities.Identity) error {
	if ident.IsAdmin {
		return nil
	}
	if ident.UserID != nil && *ident.UserID == ownerID {
		return nil
	}
	return apperr.ErrForbidden("bu işlem için yetkiniz yok")
}

func toVideoResponse(v entities.Video, categoryName string) dto.VideoResponse {
	return dto.VideoResponse{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Channel:     v.Channel,
		VideoURL:    v.VideoURL,
		AvatarURL:   v.AvatarURL,
		CategoryID:  v.CategoryID,
		Category:    categoryName,
		CreatedBy:   v.CreatedBy,
		Views:       v.Views,
		IsShort:     v.IsShort,
		Duration:    v.Duration,
		CreatedAt:   v.CreatedAt,
	}
}

func saveTemp(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmpFile, err := os.CreateTemp("", "upload-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmpFile, src); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", err
	}
	tmpFile.Close()
	return tmpFile.Name(), nil
}
