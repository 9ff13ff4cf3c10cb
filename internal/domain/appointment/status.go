package appointment

import "github.com/BruksfildServices01/barbershop-backend/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// ===============================
// Validations
// ===============================

// CanComplete define se um atendimento pode ser concluído
func CanComplete(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness("already_completed")
	}
	return nil
}

// CanReschedule define se um agendamento pode ser remarcado.
// Atendimentos concluídos são finais.
func CanReschedule(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanPay define se um pagamento pode ser processado
func CanPay(current string) error {
	if current == PaymentPaid {
		return httperr.ErrBusiness("already_paid")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
