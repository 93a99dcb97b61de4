package dto

import (
	"strconv"
	"strings"
	"time"

	"video-platform/pkg/errors"
	"video-platform/pkg/helper"
)

type UploadVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Channel     string `form:"channel"`
	CategoryID  *uint  `form:"category_id"`
	IsShort     bool   `form:"is_short"`
}

// ParseUploadVideoRequest applies the accepted form shape and coercion rules
// in one place instead of ad hoc reads per handler.
func ParseUploadVideoRequest(get func(key string) string) (*UploadVideoRequest, error) {
	req := &UploadVideoRequest{
		Title:       strings.TrimSpace(get("title")),
		Description: strings.TrimSpace(get("description")),
		Channel:     strings.TrimSpace(get("channel")),
		IsShort:     helper.ParseBoolish(get("is_short")),
	}

	if req.Title == "" {
		return nil, errors.ErrValidation("title zorunlu")
	}
	if req.Channel == "" {
		return nil, errors.ErrValidation("channel zorunlu")
	}

	if raw := strings.TrimSpace(get("category_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.ErrValidation("category_id sayı olmalı")
		}
		cid := uint(id)
		req.CategoryID = &cid
	}

	return req, nil
}

type UpdateVideoRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Channel     *string `json:"channel" form:"channel"`
	CategoryID  *uint   `json:"category_id" form:"category_id"`
	IsShort     *bool   `json:"is_short" form:"is_short"`
}

type UploadVideoResponse struct {
	Status  string `json:"status"`
	VideoID uint   `json:"video_id"`
	Message string `json:"message"`
}

type VideoResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Channel     string    `json:"channel"`
	VideoURL    string    `json:"video_url"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CategoryID  *uint     `json:"category_id,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedBy   uint      `json:"created_by"`
	Views       int64     `json:"views"`
	IsShort     bool      `json:"is_short"`
	Duration    string    `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type VideoListResponse struct {
	Videos      []VideoResponse `json:"videos"`
	TotalCount  int64           `json:"totalCount"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

type VideoDetailResponse struct {
	Video         VideoResponse   `json:"video"`
	RelatedVideos []VideoResponse `json:"relatedVideos"`
}

// ParsePagination returns page and limit with the defaults the frontend
// expects; non-numeric values are silently defaulted, not rejected.
func ParsePagination(pageRaw, limitRaw string) (page, limit int) {
	page, limit = 1, 10
	if p, err := strconv.Atoi(pageRaw); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(limitRaw); err == nil && l > 0 {
		limit = l
	}
	return page, limit
}
