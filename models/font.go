package models

// CustomFont tema/canvas render'ından önce istemci font kaydına yüklenen
// özel font tanımı.
type CustomFont struct {
	BaseModel
	DisplayName string `gorm:"type:varchar(150);not null" json:"display_name"`
	Weight      string `gorm:"type:varchar(20);default:'400'" json:"weight"`
	Style       string `gorm:"type:varchar(20);default:'normal'" json:"style"` // normal | italic
	AssetURL    string `gorm:"type:varchar(500);not null" json:"asset_url"`
}
