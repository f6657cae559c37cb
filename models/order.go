package models

import (
	"github.com/shopspring/decimal"
)

// OrderStatus sipariş durumu. PAID sonrası sipariş, durum dışında değişmez.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusFailed    OrderStatus = "FAILED"
)

// Valid durum değerinin tanımlı olup olmadığını söyler.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusFailed:
		return true
	}
	return false
}

// Order bir checkout'ta oluşan sipariş. Durum geçişleri ödeme webhook'u
// tarafından sürülür.
type Order struct {
	BaseModel
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	User        User            `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	OrderNumber string          `gorm:"type:varchar(40);uniqueIndex;not null" json:"order_number"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem sipariş kalemi. UnitPrice sipariş anındaki fiyatın snapshot'ıdır.
type OrderItem struct {
	BaseModel
	OrderID   uint            `gorm:"index;not null" json:"order_id"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	Product   Product         `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"product"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
}
