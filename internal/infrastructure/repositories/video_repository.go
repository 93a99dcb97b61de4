package repositories

import (
	"strings"

	"video-platform/internal/domain/entities"
	"video-platform/internal/domain/repositories"

	"gorm.io/gorm"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) repositories.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entities.Video) error {
	return r.db.Create(video).Error
}

func (r *videoRepository) GetByID(id uint) (*entities.Video, string, error) {
	var video entities.Video
	if err := r.db.First(&video, id).Error; err != nil {
		return nil, "", err
	}

	var categoryName string
	if video.CategoryID != nil {
		var category entities.Category
		if err := r.db.First(&category, *video.CategoryID).Error; err == nil {
			categoryName = category.Name
		}
	}
	return &video, categoryName, nil
}

func (r *videoRepository) List(page, limit int, search string) ([]entities.Video, map[uint]string, int64, error) {
	query := r.db.Model(&entities.Video{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(channel) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, 0, err
	}

	var videos []entities.Video
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videos).Error; err != nil {
		return nil, nil, 0, err
	}

	names, err := r.categoryNames(videos)
	if err != nil {
		return nil, nil, 0, err
	}
	return videos, names, total, nil
}

func (r *videoRepository) categoryNames(videos []entities.Video) (map[uint]string, error) {
	ids := make([]uint, 0, len(videos))
	for _, v := range videos {
		if v.CategoryID != nil {
			ids = append(ids, *v.CategoryID)
		}
	}
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var categories []entities.Category
	if err := r.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

// Related returns up to max videos from the same category in random order,
// never including the video itself. Without a category there is nothing to
// relate against, so the list is empty.
func (r *videoRepository) Related(video *entities.Video, max int) ([]entities.Video, error) {
	if video.CategoryID == nil {
		return nil, nil
	}
	var related []entities.Video
	err := r.db.Where("category_id = ? AND id != ?", *video.CategoryID, video.ID).
		Order("RANDOM()").
		Limit(max).
		Find(&related).Error
	return related, err
}

func (r *videoRepository) IncrementViews(id uint) error {
	return r.db.Model(&entities.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *videoRepository) Update(video *entities.Video) error {
	return r.db.Save(video).Error
}

func (r *videoRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var video entities.Video
		if err := tx.First(&video, id).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&entities.VideoComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&entities.VideoLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&entities.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&video).Error
	})
}

// MissingMedia lists rows whose thumbnail or duration probing failed at
// upload time; the backfill job retries them.
func (r *videoRepository) MissingMedia(limit int) ([]entities.Video, error) {
	var videos []entities.Video
	err := r.db.Where("avatar_url = '' OR duration = ''").Limit(limit).Find(&videos).Error
	return videos, err
}

func (r *videoRepository) AllFileURLs() (map[string]struct{}, error) {
	var videos []entities.Video
	if err := r.db.Select("video_url", "avatar_url").Find(&videos).Error; err != nil {
		return nil, err
	}
	urls := make(map[string]struct{}, len(videos)*2)
	for _, v := range videos {
		urls[v.VideoURL] = struct{}{}
		if v.AvatarURL != "" {
			urls[v.AvatarURL] = struct{}{}
		}
	}
	return urls, nil
}
