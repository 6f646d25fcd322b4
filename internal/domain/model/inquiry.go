package model

import "time"

// 問い合わせフォームの内容。管理画面で読むだけ。
type Inquiry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
