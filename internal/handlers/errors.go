package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-backend/internal/httperr"
)

// writeBusinessError maps domain failures to HTTP responses. Anything that is
// not a business error becomes a generic 500.
func writeBusinessError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "appointment_not_found":
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case "not_owner":
		httperr.Forbidden(c, "not_owner", "Você não tem permissão para alterar esse agendamento.")
	case "already_completed":
		httperr.BadRequest(c, "already_completed", "Este atendimento já foi concluído.")
	case "invalid_state":
		httperr.BadRequest(c, "invalid_state", "Agendamentos concluídos não podem ser remarcados.")
	case "invalid_value":
		httperr.BadRequest(c, "invalid_value", "Valor inválido.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case "already_paid":
		httperr.BadRequest(c, "already_paid", "Este pagamento já foi processado.")
	case "already_submitted":
		httperr.BadRequest(c, "already_submitted", "Você já enviou um feedback para este agendamento.")
	case "payments_not_configured":
		httperr.BadRequest(c, "payments_not_configured", "Pagamentos online não estão configurados.")
	case "":
		httperr.Internal(c, "internal_error", "Erro no servidor. Tente novamente mais tarde.")
	default:
		httperr.BadRequest(c, httperr.BusinessCode(err), "Operação inválida.")
	}
}
