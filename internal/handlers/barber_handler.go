package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-backend/internal/httperr"
	"github.com/BruksfildServices01/barbershop-backend/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-backend/internal/middleware"
	"github.com/BruksfildServices01/barbershop-backend/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barbershop-backend/internal/usecase/appointment"
)

// ======================================================
// HANDLER (rotas do barbeiro)
// ======================================================

type BarberHandler struct {
	repo       domain.Repository
	completeUC *ucAppointment.CompleteAppointment
	walkInUC   *ucAppointment.RegisterWalkIn
}

func NewBarberHandler(
	repo domain.Repository,
	completeUC *ucAppointment.CompleteAppointment,
	walkInUC *ucAppointment.RegisterWalkIn,
) *BarberHandler {
	return &BarberHandler{
		repo:       repo,
		completeUC: completeUC,
		walkInUC:   walkInUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CompleteAppointmentRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

type WalkInRequest struct {
	ClientName string   `json:"client_name" binding:"required"`
	Service    string   `json:"service" binding:"required"`
	Value      *float64 `json:"value" binding:"required"`
}

// ======================================================
// AGENDA (de hoje em diante)
// ======================================================

func (h *BarberHandler) Agenda(c *gin.Context) {
	barberName := c.MustGet(middleware.ContextUserName).(string)

	start := timezone.StartOfDay(timezone.Now())

	apps, err := h.repo.ListBarberAgenda(c.Request.Context(), barberName, start)
	if err != nil {
		httperr.Internal(c, "failed_to_list_agenda", "Erro no servidor ao buscar agenda.")
		return
	}

	httpresp.List(c, toAgendaItems(apps))
}

// ======================================================
// COMPLETE
// ======================================================

func (h *BarberHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barberName := c.MustGet(middleware.ContextUserName).(string)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_value", "Valor inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), barberID, barberName, id, *req.Value)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Atendimento concluído com sucesso!",
		"appointment": ap,
	})
}

// ======================================================
// WALK-IN
// ======================================================

func (h *BarberHandler) RegisterWalkIn(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barberName := c.MustGet(middleware.ContextUserName).(string)

	var req WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome do cliente, serviço e valor são obrigatórios.")
		return
	}

	ap, err := h.walkInUC.Execute(
		c.Request.Context(),
		barberID,
		barberName,
		req.ClientName,
		req.Service,
		*req.Value,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Atendimento walk-in registrado com sucesso!",
		"appointment": ap,
	})
}

// ======================================================
// STATS (concluídos hoje)
// ======================================================

func (h *BarberHandler) Stats(c *gin.Context) {
	barberName := c.MustGet(middleware.ContextUserName).(string)

	start, end := timezone.DayBounds(timezone.Now())

	count, err := h.repo.CountCompletedBetween(c.Request.Context(), barberName, start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro no servidor ao buscar estatísticas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_completed": count})
}
