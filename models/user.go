package models

// User mağaza müşterisi ya da admin hesabı.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Name         string `gorm:"type:varchar(150)" json:"name"`
	PasswordHash string `gorm:"type:varchar(255)" json:"-"`
	IsAdmin      bool   `gorm:"default:false;index" json:"is_admin"`

	Addresses []Address `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
}
