package entities

import "time"

// Video ve post yorumları aynı şekle sahip iki paralel tablo.

type VideoComment struct {
	ID           uint   `gorm:"primaryKey"`
	VideoID      uint   `gorm:"index;not null"`
	Content      string `gorm:"type:text;not null"`
	UserID       *uint
	SessionToken *string `gorm:"type:varchar(64)"`
	CreatedAt    time.Time
}

type PostComment struct {
	ID           uint   `gorm:"primaryKey"`
	PostID       uint   `gorm:"index;not null"`
	Content      string `gorm:"type:text;not null"`
	UserID       *uint
	SessionToken *string `gorm:"type:varchar(64)"`
	CreatedAt    time.Time
}
