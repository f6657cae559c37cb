package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductCategory ürün kategorisi.
type ProductCategory string

const (
	ProductCategoryDigital  ProductCategory = "DIGITAL"
	ProductCategoryPhysical ProductCategory = "PHYSICAL"
)

// Valid kategori değerinin tanımlı olup olmadığını söyler.
func (c ProductCategory) Valid() bool {
	return c == ProductCategoryDigital || c == ProductCategoryPhysical
}

// Product satılan davetiye ürünü. ThemeID doluysa ürün, satın alındığında
// kişiselleştirilebilir bir davetiye üretir; ThemeID tema renderer'ını ve
// form şemasını seçen anahtardır.
type Product struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Category    ProductCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Images      datatypes.JSON  `gorm:"type:jsonb" json:"images"` // ["url", ...]
	ThemeID     *string         `gorm:"type:varchar(50);index" json:"theme_id"`
	IsActive    bool            `gorm:"default:true;index" json:"is_active"`

	// Ürünle birlikte gelen başlangıç tasarım şablonu (opsiyonel)
	DesignTemplateID *uint           `gorm:"index" json:"design_template_id"`
	DesignTemplate   *DesignTemplate `gorm:"foreignKey:DesignTemplateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"design_template,omitempty"`
}
