package repositories

import (
	"video-platform/internal/domain/entities"
	"video-platform/internal/domain/repositories"
	"video-platform/pkg/errors"

	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Create(category *entities.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) VideoCount(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Video{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}

// Delete is check-then-delete inside one transaction so a concurrent upload
// cannot slip a referencing video in between.
func (r *categoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Video{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrValidation("kategori hala videolar tarafından kullanılıyor")
		}
		return tx.Delete(&entities.Category{}, id).Error
	})
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) repositories.PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) List() ([]entities.Playlist, error) {
	var playlists []entities.Playlist
	err := r.db.Order("name ASC").Find(&playlists).Error
	return playlists, err
}

func (r *playlistRepository) Create(playlist *entities.Playlist) error {
	return r.db.Create(playlist).Error
}

func (r *playlistRepository) GetByName(name string) (*entities.Playlist, error) {
	var playlist entities.Playlist
	if err := r.db.Where("name = ?", name).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) AddVideo(playlistID, videoID uint) error {
	member := entities.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID}
	return r.db.Where(entities.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID}).
		FirstOrCreate(&member).Error
}
