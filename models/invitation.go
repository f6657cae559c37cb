package models

import "gorm.io/datatypes"

// InvitationStatus davetiye yayın durumu.
type InvitationStatus string

const (
	InvitationStatusActive   InvitationStatus = "ACTIVE"
	InvitationStatusInactive InvitationStatus = "INACTIVE"
)

// UserInvitation satın alınmış, kişiselleştirilebilir davetiye sayfası.
// Her davetiye tam olarak bir ödenmiş sipariş kalemine bağlıdır; OrderItem
// üzerinden Product'a, oradan tema kimliğine ulaşılır.
//
// FormData formschema zarfı olarak saklanır:
//
//	{"schema_version":1,"theme":"WEDDING_V1","fields":{...}}
//
// DesignData canvas kütüphanesinin serileştirdiği opak dokümandır; bu
// çekirdek içeriğini hiçbir zaman yorumlamaz, sadece taşır.
type UserInvitation struct {
	BaseModel
	UserID      uint             `gorm:"index;not null" json:"user_id"`
	User        User             `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Subdomain   string           `gorm:"type:varchar(63);uniqueIndex;not null" json:"subdomain"`
	Status      InvitationStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index" json:"status"`
	OrderItemID uint             `gorm:"uniqueIndex;not null" json:"order_item_id"`
	OrderItem   OrderItem        `gorm:"foreignKey:OrderItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"order_item"`

	FormData   datatypes.JSON `gorm:"type:jsonb" json:"form_data"`
	DesignData datatypes.JSON `gorm:"type:jsonb" json:"design_data"`

	RSVPs []Rsvp `gorm:"foreignKey:InvitationID" json:"-"`
}
