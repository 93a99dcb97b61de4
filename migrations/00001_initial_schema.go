package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInitialSchema, downInitialSchema)
}

func upInitialSchema(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(255) NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS videos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			channel VARCHAR(255) NOT NULL,
			video_url VARCHAR(500) NOT NULL,
			avatar_url VARCHAR(500),
			category_id INTEGER REFERENCES categories(id),
			created_by INTEGER,
			views INTEGER NOT NULL DEFAULT 0,
			is_short BOOLEAN NOT NULL DEFAULT 0,
			duration VARCHAR(16),
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title VARCHAR(255) NOT NULL,
			content TEXT,
			created_by INTEGER,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS video_comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			video_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			user_id INTEGER,
			session_token VARCHAR(64),
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS post_comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			post_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			user_id INTEGER,
			session_token VARCHAR(64),
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS video_likes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			video_id INTEGER NOT NULL,
			user_id INTEGER,
			session_token VARCHAR(64),
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS post_likes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			post_id INTEGER NOT NULL,
			user_id INTEGER,
			session_token VARCHAR(64),
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS playlists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(255) NOT NULL UNIQUE,
			created_by INTEGER,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS playlist_videos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			playlist_id INTEGER NOT NULL,
			video_id INTEGER NOT NULL
		);`,
		// Beğeni tekilliği: anonim oturum ve giriş yapmış kullanıcı ayrı ayrı
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_video_likes_session ON video_likes(video_id, session_token) WHERE session_token IS NOT NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_video_likes_user ON video_likes(video_id, user_id) WHERE user_id IS NOT NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_post_likes_session ON post_likes(post_id, session_token) WHERE session_token IS NOT NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_post_likes_user ON post_likes(post_id, user_id) WHERE user_id IS NOT NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_playlist_videos_member ON playlist_videos(playlist_id, video_id);`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement failed: %w", err)
		}
	}
	return nil
}

func downInitialSchema(ctx context.Context, tx *sql.Tx) error {
	tables := []string{
		"playlist_videos", "playlists", "post_likes", "video_likes",
		"post_comments", "video_comments", "posts", "videos", "categories", "users",
	}
	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return err
		}
	}
	return nil
}
