package models

import "time"

type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Barber     string `gorm:"size:100;not null;index" json:"barber"`
	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Comment    string `gorm:"size:500;not null" json:"comment"`

	// One feedback per appointment, enforced at the store level.
	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
