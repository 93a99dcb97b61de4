package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"video-platform/internal/domain/dto"
	"video-platform/internal/domain/entities"
	"video-platform/internal/domain/repositories"
	apperr "video-platform/pkg/errors"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const likeCountTTL = 30 * time.Second

type EngagementService interface {
	LikeVideo(videoID uint, ident entities.Identity) (int64, error)
	UnlikeVideo(videoID uint, ident entities.Identity) (int64, error)
	VideoLikes(videoID uint) (int64, error)
	ListVideoComments(videoID uint) ([]dto.CommentResponse, error)
	CreateVideoComment(videoID uint, content string, ident entities.Identity) (*dto.CommentResponse, error)
	DeleteVideoComment(videoID, commentID uint, ident entities.Identity) error

	LikePost(postID uint, ident entities.Identity) (int64, error)
	UnlikePost(postID uint, ident entities.Identity) (int64, error)
	PostLikes(postID uint) (int64, error)
	ListPostComments(postID uint) ([]dto.CommentResponse, error)
	CreatePostComment(postID uint, content string, ident entities.Identity) (*dto.CommentResponse, error)
	DeletePostComment(postID, commentID uint, ident entities.Identity) error
}

type engagementService struct {
	videoComments repositories.VideoCommentRepository
	postComments  repositories.PostCommentRepository
	videoLikes    repositories.VideoLikeRepository
	postLikes     repositories.PostLikeRepository
	rdb           *redis.Client // nil ise cache devre dışı
}

func NewEngagementService(
	videoComments repositories.VideoCommentRepository,
	postComments repositories.PostCommentRepository,
	videoLikes repositories.VideoLikeRepository,
	postLikes repositories.PostLikeRepository,
	rdb *redis.Client,
) EngagementService {
	return &engagementService{
		videoComments: videoComments,
		postComments:  postComments,
		videoLikes:    videoLikes,
		postLikes:     postLikes,
		rdb:           rdb,
	}
}

// --- Likes ---

func (s *engagementService) LikeVideo(videoID uint, ident entities.Identity) (int64, error) {
	if !ident.HasIdentity() {
		return 0, apperr.ErrValidation("oturum kimliği yok")
	}
	like := &entities.VideoLike{VideoID: videoID, CreatedAt: time.Now()}
	fillLikeIdentity(&like.UserID, &like.SessionToken, ident)

	if err := s.videoLikes.InsertIgnore(like); err != nil {
		return 0, apperr.ErrStorage(err)
	}
	s.invalidate(videoLikeKey(videoID))
	return s.freshCount(videoLikeKey(videoID), func() (int64, error) { return s.videoLikes.Count(videoID) })
}

// UnlikeVideo requires an identity: without one we would only be able to
// guess which anonymous like to remove, which could hit someone else's.
func (s *engagementService) UnlikeVideo(videoID uint, ident entities.Identity) (int64, error) {
	if !ident.HasIdentity() {
		return 0, apperr.ErrValidation("oturum kimliği yok")
	}
	if err := s.videoLikes.DeleteByIdentity(videoID, ident); err != nil {
		return 0, apperr.ErrStorage(err)
	}
	s.invalidate(videoLikeKey(videoID))
	return s.freshCount(videoLikeKey(videoID), func() (int64, error) { return s.videoLikes.Count(videoID) })
}

func (s *engagementService) VideoLikes(videoID uint) (int64, error) {
	return s.cachedCount(videoLikeKey(videoID), func() (int64, error) { return s.videoLikes.Count(videoID) })
}

func (s *engagementService) LikePost(postID uint, ident entities.Identity) (int64, error) {
	if !ident.HasIdentity() {
		return 0, apperr.ErrValidation("oturum kimliği yok")
	}
	like := &entities.PostLike{PostID: postID, CreatedAt: time.Now()}
	fillLikeIdentity(&like.UserID, &like.SessionToken, ident)

	if err := s.postLikes.InsertIgnore(like); err != nil {
		return 0, apperr.ErrStorage(err)
	}
	s.invalidate(postLikeKey(postID))
	return s.freshCount(postLikeKey(postID), func() (int64, error) { return s.postLikes.Count(postID) })
}

func (s *engagementService) UnlikePost(postID uint, ident entities.Identity) (int64, error) {
	if !ident.HasIdentity() {
		return 0, apperr.ErrValidation("oturum kimliği yok")
	}
	if err := s.postLikes.DeleteByIdentity(postID, ident); err != nil {
		return 0, apperr.ErrStorage(err)
	}
	s.invalidate(postLikeKey(postID))
	return s.freshCount(postLikeKey(postID), func() (int64, error) { return s.postLikes.Count(postID) })
}

func (s *engagementService) PostLikes(postID uint) (int64, error) {
	return s.cachedCount(postLikeKey(postID), func() (int64, error) { return s.postLikes.Count(postID) })
}

// --- Comments ---

func (s *engagementService) ListVideoComments(videoID uint) ([]dto.CommentResponse, error) {
	comments, err := s.videoComments.ListByVideo(videoID)
	if err != nil {
		return nil, apperr.ErrStorage(err)
	}
	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, toCommentResponse(c.ID, c.VideoID, c.Content, c.UserID, c.CreatedAt))
	}
	return responses, nil
}

func (s *engagementService) CreateVideoComment(videoID uint, content string, ident entities.Identity) (*dto.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.ErrValidation("yorum boş olamaz")
	}
	if !ident.HasIdentity() {
		return nil, apperr.ErrValidation("oturum kimliği yok")
	}

	comment := &entities.VideoComment{VideoID: videoID, Content: content, CreatedAt: time.Now()}
	fillLikeIdentity(&comment.UserID, &comment.SessionToken, ident)

	if err := s.videoComments.Create(comment); err != nil {
		return nil, apperr.ErrStorage(err)
	}
	resp := toCommentResponse(comment.ID, comment.VideoID, comment.Content, comment.UserID, comment.CreatedAt)
	return &resp, nil
}

func (s *engagementService) DeleteVideoComment(videoID, commentID uint, ident entities.Identity) error {
	comment, err := s.videoComments.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound("yorum bulunamadı")
		}
		return apperr.ErrStorage(err)
	}
	if comment.VideoID != videoID {
		return apperr.ErrNotFound("yorum bulunamadı")
	}
	if err := requireAuthorOrAdmin(comment.UserID, ident); err != nil {
		return err
	}
	if err := s.videoComments.Delete(commentID); err != nil {
		return apperr.ErrStorage(err)
	}
	return nil
}

func (s *engagementService) ListPostComments(postID uint) ([]dto.CommentResponse, error) {
	comments, err := s.postComments.ListByPost(postID)
	if err != nil {
		return nil, apperr.ErrStorage(err)
	}
	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, toCommentResponse(c.ID, c.PostID, c.Content, c.UserID, c.CreatedAt))
	}
	return responses, nil
}

func (s *engagementService) CreatePostComment(postID uint, content string, ident entities.Identity) (*dto.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.ErrValidation("yorum boş olamaz")
	}
	if !ident.HasIdentity() {
		return nil, apperr.ErrValidation("oturum kimliği yok")
	}

	comment := &entities.PostComment{PostID: postID, Content: content, CreatedAt: time.Now()}
	fillLikeIdentity(&comment.UserID, &comment.SessionToken, ident)

	if err := s.postComments.Create(comment); err != nil {
		return nil, apperr.ErrStorage(err)
	}
	resp := toCommentResponse(comment.ID, comment.PostID, comment.Content, comment.UserID, comment.CreatedAt)
	return &resp, nil
}

func (s *engagementService) DeletePostComment(postID, commentID uint, ident entities.Identity) error {
	comment, err := s.postComments.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound("yorum bulunamadı")
		}
		return apperr.ErrStorage(err)
	}
	if comment.PostID != postID {
		return apperr.ErrNotFound("yorum bulunamadı")
	}
	if err := requireAuthorOrAdmin(comment.UserID, ident); err != nil {
		return err
	}
	if err := s.postComments.Delete(commentID); err != nil {
		return apperr.ErrStorage(err)
	}
	return nil
}

// --- helpers ---

func fillLikeIdentity(userID **uint, sessionToken **string, ident entities.Identity) {
	if ident.UserID != nil {
		*userID = ident.UserID
		return
	}
	token := ident.SessionToken
	*sessionToken = &token
}

func requireAuthorOrAdmin(authorID *uint, ident entities.Identity) error {
	if ident.IsAdmin {
		return nil
	}
	if ident.UserID != nil && authorID != nil && *authorID == *ident.UserID {
		return nil
	}
	return apperr.ErrForbidden("bu yorumu silme yetkiniz yok")
}

func toCommentResponse(id, entityID uint, content string, userID *uint, createdAt time.Time) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        id,
		EntityID:  entityID,
		Content:   content,
		UserID:    userID,
		Anonymous: userID == nil,
		CreatedAt: createdAt,
	}
}

func videoLikeKey(id uint) string { return fmt.Sprintf("video_likes:%d", id) }
func postLikeKey(id uint) string  { return fmt.Sprintf("post_likes:%d", id) }

func (s *engagementService) cachedCount(key string, count func() (int64, error)) (int64, error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(context.Background(), key).Int64(); err == nil {
			return val, nil
		}
	}
	return s.freshCount(key, count)
}

func (s *engagementService) freshCount(key string, count func() (int64, error)) (int64, error) {
	total, err := count()
	if err != nil {
		return 0, apperr.ErrStorage(err)
	}
	if s.rdb != nil {
		s.rdb.Set(context.Background(), key, total, likeCountTTL)
	}
	return total, nil
}

func (s *engagementService) invalidate(key string) {
	if s.rdb != nil {
		s.rdb.Del(context.Background(), key)
	}
}
