package usecases

import (
	"errors"

	"video-platform/internal/domain/dto"
	"video-platform/internal/domain/repositories"
	apperr "video-platform/pkg/errors"

	"gorm.io/gorm"
)

// ModerationService is the admin-only path: it lists and deletes comments
// across all videos with no ownership checks. The role gate lives in the
// middleware, not here.
type ModerationService interface {
	AllComments() ([]dto.ModerationComment, error)
	DeleteComment(commentID uint) error
}

type moderationService struct {
	videoComments repositories.VideoCommentRepository
}

func NewModerationService(videoComments repositories.VideoCommentRepository) ModerationService {
	return &moderationService{videoComments: videoComments}
}

func (s *moderationService) AllComments() ([]dto.ModerationComment, error) {
	comments, titles, err := s.videoComments.ListAllWithTitles()
	if err != nil {
		return nil, apperr.ErrStorage(err)
	}

	result := make([]dto.ModerationComment, 0, len(comments))
	for _, c := range comments {
		result = append(result, dto.ModerationComment{
			ID:         c.ID,
			VideoID:    c.VideoID,
			VideoTitle: titles[c.VideoID],
			Content:    c.Content,
			UserID:     c.UserID,
			CreatedAt:  c.CreatedAt,
		})
	}
	return result, nil
}

func (s *moderationService) DeleteComment(commentID uint) error {
	if _, err := s.videoComments.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound("yorum bulunamadı")
		}
		return apperr.ErrStorage(err)
	}
	if err := s.videoComments.Delete(commentID); err != nil {
		return apperr.ErrStorage(err)
	}
	return nil
}
