package model

import "time"

// ギャラリーの1枚。画像本体は外部URL参照のみ（アップロードは扱わない）。
type GalleryImage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
