package model

import (
	"time"
)

// 書籍走硬刪除，不需要 DeletedAt
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"null" json:"updated_at"`
}
