package models

// RsvpStatus LCV yanıt durumu.
type RsvpStatus string

const (
	RsvpStatusAttending    RsvpStatus = "ATTENDING"
	RsvpStatusNotAttending RsvpStatus = "NOT_ATTENDING"
	RsvpStatusMaybe        RsvpStatus = "MAYBE"
)

// Valid durum değerinin tanımlı olup olmadığını söyler.
func (s RsvpStatus) Valid() bool {
	return s == RsvpStatusAttending || s == RsvpStatusNotAttending || s == RsvpStatusMaybe
}

// Rsvp bir davetiyeye gelen misafir yanıtı. Linki bilen herkes
// oluşturabilir; liste sadece davetiye sahibine görünür.
// Aynı davetiyeye birden fazla RSVP olabilir, tekilleştirme yapılmaz.
type Rsvp struct {
	BaseModel
	InvitationID uint       `gorm:"index;not null" json:"invitation_id"`
	GuestName    string     `gorm:"type:varchar(150);not null" json:"guest_name"`
	GuestCount   int        `gorm:"not null;default:1" json:"guest_count"`
	Status       RsvpStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Message      string     `gorm:"type:text" json:"message"`
}
