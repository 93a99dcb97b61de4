package entities

import "time"

type Video struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Channel     string `gorm:"type:varchar(255);not null"`
	VideoURL    string `gorm:"type:varchar(500);not null"`
	AvatarURL   string `gorm:"type:varchar(500)"` // thumbnail; boş olabilir
	CategoryID  *uint  `gorm:"index"`
	CreatedBy   uint
	Views       int64  `gorm:"not null;default:0"`
	IsShort     bool   `gorm:"not null;default:false"`
	Duration    string `gorm:"type:varchar(16)"` // "M:SS", probe başarısızsa boş
	CreatedAt   time.Time
}
