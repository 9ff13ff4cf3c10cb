package dto

import "time"

// AgendaItemDTO is an appointment with the client name resolved, as shown on
// barber and reception agendas.
type AgendaItemDTO struct {
	ID          uint      `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Service     string    `json:"service"`
	Barber      string    `json:"barber"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
}

// PendingPaymentDTO lists a completed, unpaid service.
type PendingPaymentDTO struct {
	ID         uint      `json:"id"`
	ClientName string    `json:"client_name"`
	Service    string    `json:"service"`
	Barber     string    `json:"barber"`
	Value      *float64  `json:"value"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FeedbackDTO is a feedback entry enriched with the appointment value.
type FeedbackDTO struct {
	ID         uint      `json:"id"`
	ClientName string    `json:"client_name"`
	Barber     string    `json:"barber"`
	Comment    string    `json:"comment"`
	Value      *float64  `json:"value,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
