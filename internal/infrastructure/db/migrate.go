package db

import (
	"video-platform/internal/domain/entities"

	"gorm.io/gorm"
)

func AutoMigrate(database *gorm.DB) error {
	if err := database.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Video{},
		&entities.Post{},
		&entities.VideoComment{},
		&entities.PostComment{},
		&entities.VideoLike{},
		&entities.PostLike{},
		&entities.Playlist{},
		&entities.PlaylistVideo{},
	); err != nil {
		return err
	}
	return EnsureIndexes(database)
}

// EnsureIndexes creates the partial unique indexes the idempotent like
// inserts rely on. Anonymous and authenticated likes are deduplicated
// separately because either column may be NULL.
func EnsureIndexes(database *gorm.DB) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_video_likes_session ON video_likes(video_id, session_token) WHERE session_token IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_video_likes_user ON video_likes(video_id, user_id) WHERE user_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_post_likes_session ON post_likes(post_id, session_token) WHERE session_token IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_post_likes_user ON post_likes(post_id, user_id) WHERE user_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_playlist_videos_member ON playlist_videos(playlist_id, video_id)`,
	}
	for _, stmt := range stmts {
		if err := database.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
