package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm tabloların ortak alanları. Soft delete kullanılır;
// siparişlerce referans verilen kayıtlar hiçbir zaman hard delete edilmez.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
