package repositories

import "video-platform/internal/domain/entities"

//* Her repo tek bir tabloya odaklanıyor; video ve post tarafı paralel tablolar.

type VideoCommentRepository interface {
	Create(comment *entities.VideoComment) error
	ListByVideo(videoID uint) ([]entities.VideoComment, error)
	GetByID(id uint) (*entities.VideoComment, error)
	Delete(id uint) error
	// ListAllWithTitles returns every comment joined with the parent video
	// title, for the moderation view.
	ListAllWithTitles() ([]entities.VideoComment, map[uint]string, error)
}

type PostCommentRepository interface {
	Create(comment *entities.PostComment) error
	ListByPost(postID uint) ([]entities.PostComment, error)
	GetByID(id uint) (*entities.PostComment, error)
	Delete(id uint) error
}

type VideoLikeRepository interface {
	// InsertIgnore is an idempotent insert: a duplicate like is a no-op.
	InsertIgnore(like *entities.VideoLike) error
	DeleteByIdentity(videoID uint, ident entities.Identity) error
	Count(videoID uint) (int64, error)
}

type PostLikeRepository interface {
	InsertIgnore(like *entities.PostLike) error
	DeleteByIdentity(postID uint, ident entities.Identity) error
	Count(postID uint) (int64, error)
}
