package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Walk-ins have no registered client; they carry a free-text name instead.
	ClientID *uint `json:"client_id,omitempty"`
	Client   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	WalkInName string `gorm:"size:100" json:"walk_in_name,omitempty"`

	Service string `gorm:"size:100;not null" json:"service"`
	Barber  string `gorm:"size:100;not null;index" json:"barber"`

	// Once completed this holds the completion moment, not the booked time.
	ScheduledAt time.Time `json:"scheduled_at"`

	// Set when the service is completed.
	Value *float64 `json:"value,omitempty"`

	Status        string `gorm:"size:20;default:'scheduled'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	FeedbackSent bool `gorm:"default:false" json:"feedback_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientDisplayName resolves the name shown on agendas and payment listings.
func (a *Appointment) ClientDisplayName() string {
	if a.Client != nil {
		return a.Client.Name
	}
	return a.WalkInName
}
