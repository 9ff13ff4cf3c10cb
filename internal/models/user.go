package models

import "time"

const (
	RoleClient       = "client"
	RoleBarber       = "barber"
	RoleReceptionist = "receptionist"
	RoleAdmin        = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string    `gorm:"size:100;not null" json:"name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	BirthDate time.Time `json:"birth_date"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Role string `gorm:"size:20;default:'client'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsStaff reports whether the role can access reception/admin routes.
func IsStaff(role string) bool {
	return role == RoleReceptionist || role == RoleAdmin
}
