package usecases

import (
	"errors"
	"strings"
	"time"

	"video-platform/internal/domain/dto"
	"video-platform/internal/domain/entities"
	"video-platform/internal/domain/repositories"
	apperr "video-platform/pkg/errors"

	"gorm.io/gorm"
)

type CatalogService interface {
	Categories() ([]dto.CategoryResponse, error)
	CreateCategory(name string) (*dto.CategoryResponse, error)
	DeleteCategory(id uint) error

	Playlists() ([]dto.PlaylistResponse, error)
	CreatePlaylist(name string, ident entities.Identity) (*dto.PlaylistResponse, error)
	AddVideoToPlaylist(playlistID, videoID uint) error
}

type catalogService struct {
	categories repositories.CategoryRepository
	playlists  repositories.PlaylistRepository
	videos     repositories.VideoRepository
}

func NewCatalogService(
	categories repositories.CategoryRepository,
	playlists repositories.PlaylistRepository,
	videos repositories.VideoRepository,
) CatalogService {
	return &catalogService{categories: categories, playlists: playlists, videos: videos}
}

func (s *catalogService) Categories() ([]dto.CategoryResponse, error) {
	categories, err := s.categories.List()
	if err != nil {
		return nil, apperr.ErrStorage(err)
	}
	result := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return result, nil
}

func (s *catalogService) CreateCategory(name string) (*dto.CategoryResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.ErrValidation("isim zorunlu")
	}

	category := &entities.Category{Name: name}
	if err := s.categories.Create(category); err != nil {
		// unique index var; duplicate buradan döner
		return nil, apperr.ErrValidation("kategori zaten mevcut")
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (s *catalogService) DeleteCategory(id uint) error {
	if _, err := s.categories.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound("kategori bulunamadı")
		}
		return apperr.ErrStorage(err)
	}
	return s.categories.Delete(id)
}

func (s *catalogService) Playlists() ([]dto.PlaylistResponse, error) {
	playlists, err := s.playlists.List()
	if err != nil {
		return nil, apperr.ErrStorage(err)
	}
	result := make([]dto.PlaylistResponse, 0, len(playlists))
	for _, p := range playlists {
		result = append(result, dto.PlaylistResponse{ID: p.ID, Name: p.Name})
	}
	return result, nil
}

func (s *catalogService) CreatePlaylist(name string, ident entities.Identity) (*dto.PlaylistResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.ErrValidation("isim zorunlu")
	}
	if !ident.Authenticated() {
		return nil, apperr.ErrUnauthorized("giriş yapmalısınız")
	}

	playlist := &entities.Playlist{Name: name, CreatedBy: *ident.UserID, CreatedAt: time.Now()}
	if err := s.playlists.Create(playlist); err != nil {
		return nil, apperr.ErrValidation("playlist zaten mevcut")
	}
	return &dto.PlaylistResponse{ID: playlist.ID, Name: playlist.Name}, nil
}

func (s *catalogService) AddVideoToPlaylist(playlistID, videoID uint) error {
	if _, _, err := s.videos.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound("video bulunamadı")
		}
		return apperr.ErrStorage(err)
	}
	if err := s.playlists.AddVideo(playlistID, videoID); err != nil {
		return apperr.ErrStorage(err)
	}
	return nil
}
