package model

import "time"

type GalleryImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:20;not null" json:"title"`
	FilePath  string    `gorm:"type:text;not null" json:"file_path"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
