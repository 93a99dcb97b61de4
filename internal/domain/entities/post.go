package entities

import "time"

// Post is the blog-side engagement parent. The blog CRUD itself lives in
// another service; comments and likes attach to it here.
type Post struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"type:varchar(255);not null"`
	Content   string `gorm:"type:text"`
	CreatedBy uint
	CreatedAt time.Time
}
