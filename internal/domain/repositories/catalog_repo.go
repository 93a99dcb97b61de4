package repositories

import "video-platform/internal/domain/entities"

type CategoryRepository interface {
	List() ([]entities.Category, error)
	Create(category *entities.Category) error
	GetByID(id uint) (*entities.Category, error)
	GetByName(name string) (*entities.Category, error)
	// Delete fails while any video still references the category.
	Delete(id uint) error
	VideoCount(id uint) (int64, error)
}

type PlaylistRepository interface {
	List() ([]entities.Playlist, error)
	Create(playlist *entities.Playlist) error
	GetByName(name string) (*entities.Playlist, error)
	AddVideo(playlistID, videoID uint) error
}
