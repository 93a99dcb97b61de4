package dto

import "time"

type LikeResponse struct {
	Likes int64 `json:"likes"`
}

type CreateCommentRequest struct {
	Content string `json:"content" form:"content"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	EntityID  uint      `json:"entity_id"`
	Content   string    `json:"content"`
	UserID    *uint     `json:"user_id,omitempty"`
	Anonymous bool      `json:"anonymous"`
	CreatedAt time.Time `json:"created_at"`
}

// ModerationComment is a comment joined with its parent video title for the
// admin moderation view.
type ModerationComment struct {
	ID         uint      `json:"id"`
	VideoID    uint      `json:"video_id"`
	VideoTitle string    `json:"video_title"`
	Content    string    `json:"content"`
	UserID     *uint     `json:"user_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
