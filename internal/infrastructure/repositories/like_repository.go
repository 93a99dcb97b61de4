package repositories

import (
	"video-platform/internal/domain/entities"
	"video-platform/internal/domain/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type videoLikeRepository struct {
	db *gorm.DB
}

func NewVideoLikeRepository(db *gorm.DB) repositories.VideoLikeRepository {
	return &videoLikeRepository{db: db}
}

// InsertIgnore relies on the partial unique indexes: a second like from the
// same identity conflicts and is dropped instead of erroring.
func (r *videoLikeRepository) InsertIgnore(like *entities.VideoLike) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

func (r *videoLikeRepository) DeleteByIdentity(videoID uint, ident entities.Identity) error {
	query := r.db.Where("video_id = ?", videoID)
	if ident.UserID != nil {
		query = query.Where("user_id = ?", *ident.UserID)
	} else {
		query = query.Where("session_token = ?", ident.SessionToken)
	}
	return query.Delete(&entities.VideoLike{}).Error
}

func (r *videoLikeRepository) Count(videoID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.VideoLike{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}

type postLikeRepository struct {
	db *gorm.DB
}

func NewPostLikeRepository(db *gorm.DB) repositories.PostLikeRepository {
	return &postLikeRepository{db: db}
}

func (r *postLikeRepository) InsertIgnore(like *entities.PostLike) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

func (r *postLikeRepository) DeleteByIdentity(postID uint, ident entities.Identity) error {
	query := r.db.Where("post_id = ?", postID)
	if ident.UserID != nil {
		query = query.Where("user_id = ?", *ident.UserID)
	} else {
		query = query.Where("session_token = ?", ident.SessionToken)
	}
	return query.Delete(&entities.PostLike{}).Error
}

func (r *postLikeRepository) Count(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
