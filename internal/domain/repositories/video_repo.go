package repositories

import "video-platform/internal/domain/entities"

type VideoRepository interface {
	Create(video *entities.Video) error
	GetByID(id uint) (*entities.Video, string, error) // video + category name
	List(page, limit int, search string) ([]entities.Video, map[uint]string, int64, error)
	Related(video *entities.Video, max int) ([]entities.Video, error)
	IncrementViews(id uint) error
	Update(video *entities.Video) error
	// DeleteCascade removes the row together with its comments, likes and
	// playlist memberships in one transaction.
	DeleteCascade(id uint) error
	MissingMedia(limit int) ([]entities.Video, error)
	AllFileURLs() (map[string]struct{}, error)
}
