package models

// Cart kullanıcı başına tek aktif sepet.
type Cart struct {
	BaseModel
	UserID uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID" json:"items"`
}

// CartItem sepet kalemi. Aynı ürün tekrar eklenirse miktar artırılır.
type CartItem struct {
	BaseModel
	CartID    uint    `gorm:"index:idx_cart_product,unique;not null" json:"cart_id"`
	ProductID uint    `gorm:"index:idx_cart_product,unique;not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
}
