package entities

import "time"

// Uniqueness is enforced with partial indexes (see migrations): one like per
// (video, session_token) and one per (video, user_id).

type VideoLike struct {
	ID           uint `gorm:"primaryKey"`
	VideoID      uint `gorm:"index;not null"`
	UserID       *uint
	SessionToken *string `gorm:"type:varchar(64)"`
	CreatedAt    time.Time
}

type PostLike struct {
	ID           uint `gorm:"primaryKey"`
	PostID       uint `gorm:"index;not null"`
	UserID       *uint
	SessionToken *string `gorm:"type:varchar(64)"`
	CreatedAt    time.Time
}
