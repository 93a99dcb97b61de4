package entities

import "time"

type Playlist struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedBy uint
	CreatedAt time.Time
}

type PlaylistVideo struct {
	ID         uint `gorm:"primaryKey"`
	PlaylistID uint `gorm:"index;not null"`
	VideoID    uint `gorm:"index;not null"`
}
