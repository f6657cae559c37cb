package models

import "gorm.io/datatypes"

// DesignTemplate ürünlere bağlanan, yeniden kullanılabilir başlangıç
// canvas düzeni. Document canvas kütüphanesinin formatında opak JSON'dur.
type DesignTemplate struct {
	BaseModel
	Name     string         `gorm:"type:varchar(150);not null" json:"name"`
	Document datatypes.JSON `gorm:"type:jsonb;not null" json:"document"`
}
