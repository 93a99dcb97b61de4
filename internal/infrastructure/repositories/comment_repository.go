package repositories

import (
	"video-platform/internal/domain/entities"
	"video-platform/internal/domain/repositories"

	"gorm.io/gorm"
)

type videoCommentRepository struct {
	db *gorm.DB
}

func NewVideoCommentRepository(db *gorm.DB) repositories.VideoCommentRepository {
	return &videoCommentRepository{db: db}
}

func (r *videoCommentRepository) Create(comment *entities.VideoComment) error {
	return r.db.Create(comment).Error
}

func (r *videoCommentRepository) ListByVideo(videoID uint) ([]entities.VideoComment, error) {
	var comments []entities.VideoComment
	err := r.db.Where("video_id = ?", videoID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *videoCommentRepository) GetByID(id uint) (*entities.VideoComment, error) {
	var comment entities.VideoComment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *videoCommentRepository) Delete(id uint) error {
	return r.db.Delete(&entities.VideoComment{}, id).Error
}

func (r *videoCommentRepository) ListAllWithTitles() ([]entities.VideoComment, map[uint]string, error) {
	var comments []entities.VideoComment
	if err := r.db.Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, nil, err
	}

	ids := make([]uint, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.VideoID)
	}
	titles := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return comments, titles, nil
	}

	var videos []entities.Video
	if err := r.db.Select("id", "title").Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, nil, err
	}
	for _, v := range videos {
		titles[v.ID] = v.Title
	}
	return comments, titles, nil
}

type postCommentRepository struct {
	db *gorm.DB
}

func NewPostCommentRepository(db *gorm.DB) repositories.PostCommentRepository {
	return &postCommentRepository{db: db}
}

func (r *postCommentRepository) Create(comment *entities.PostComment) error {
	return r.db.Create(comment).Error
}

func (r *postCommentRepository) ListByPost(postID uint) ([]entities.PostComment, error) {
	var comments []entities.PostComment
	err := r.db.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *postCommentRepository) GetByID(id uint) (*entities.PostComment, error) {
	var comment entities.PostComment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *postCommentRepository) Delete(id uint) error {
	return r.db.Delete(&entities.PostComment{}, id).Error
}
