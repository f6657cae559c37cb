package models

// Address kullanıcıya ait teslimat adresi. Kullanıcı başına en fazla iki
// adres servis katmanında yumuşak olarak uygulanır, DB kısıtı yoktur.
type Address struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Title    string `gorm:"type:varchar(50)" json:"title"` // Ev, İş...
	FullName string `gorm:"type:varchar(150);not null" json:"full_name"`
	Line1    string `gorm:"type:varchar(255);not null" json:"line1"`
	Line2    string `gorm:"type:varchar(255)" json:"line2"`
	City     string `gorm:"type:varchar(100);not null" json:"city"`
	ZipCode  string `gorm:"type:varchar(20)" json:"zip_code"`
	Country  string `gorm:"type:varchar(100);default:'Türkiye'" json:"country"`
	Phone    string `gorm:"type:varchar(30)" json:"phone"`
}
