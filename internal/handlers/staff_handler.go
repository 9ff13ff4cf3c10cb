package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-backend/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-backend/internal/dto"
	"github.com/BruksfildServices01/barbershop-backend/internal/httperr"
	"github.com/BruksfildServices01/barbershop-backend/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-backend/internal/middleware"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
	"github.com/BruksfildServices01/barbershop-backend/internal/payments"
	"github.com/BruksfildServices01/barbershop-backend/internal/timezone"
)

// ======================================================
// HANDLER (recepção / admin)
// ======================================================

type StaffHandler struct {
	db       *gorm.DB
	repo     domain.Repository
	audit    *audit.Dispatcher
	payments *payments.Client // nil when MP_ACCESS_TOKEN is not configured
}

func NewStaffHandler(
	db *gorm.DB,
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	paymentsClient *payments.Client,
) *StaffHandler {
	return &StaffHandler{
		db:       db,
		repo:     repo,
		audit:    dispatcher,
		payments: paymentsClient,
	}
}

// ======================================================
// DASHBOARD (faturamento + performance)
// ======================================================

type dashboardStats struct {
	FaturamentoTotal  float64 `json:"faturamentoTotal"`
	TotalAtendimentos int64   `json:"totalAtendimentos"`
}

type barberPerformance struct {
	Barbeiro     string  `json:"barbeiro"`
	Faturamento  float64 `json:"faturamento"`
	Atendimentos int64   `json:"atendimentos"`
}

func (h *StaffHandler) Dashboard(c *gin.Context) {
	barber := c.Query("barbeiro")
	startStr := c.Query("dataInicio")
	endStr := c.Query("dataFim")

	var start, end time.Time
	hasRange := false
	if startStr != "" && endStr != "" {
		var err error
		start, err = timezone.ParseDate(startStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		end, err = timezone.ParseDate(endStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		// dataFim covers its whole calendar day.
		end = end.AddDate(0, 0, 1)
		hasRange = true
	}

	filtered := func() *gorm.DB {
		q := h.db.Model(&models.Appointment{}).
			Where("status = ?", string(domain.StatusCompleted))
		if barber != "" {
			q = q.Where("barber = ?", barber)
		}
		if hasRange {
			q = q.Where("scheduled_at >= ? AND scheduled_at < ?", start, end)
		}
		return q
	}

	var stats dashboardStats
	if err := filtered().
		Select("COALESCE(SUM(value), 0) AS faturamento_total, COUNT(*) AS total_atendimentos").
		Scan(&stats).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro no servidor ao buscar dados.")
		return
	}

	var performance []barberPerformance
	if err := filtered().
		Select("barber AS barbeiro, COALESCE(SUM(value), 0) AS faturamento, COUNT(*) AS atendimentos").
		Group("barber").
		Order("faturamento DESC").
		Scan(&performance).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro no servidor ao buscar dados.")
		return
	}

	if performance == nil {
		performance = []barberPerformance{}
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":                stats,
		"performanceBarbeiros": performance,
	})
}

// ======================================================
// AGENDA DO DIA (todos os barbeiros)
// ======================================================

func (h *StaffHandler) DayAgenda(c *gin.Context) {
	start, end := timezone.DayBounds(timezone.Now())

	apps, err := h.repo.ListScheduledBetween(c.Request.Context(), start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_list_agenda", "Erro no servidor ao buscar agenda do dia.")
		return
	}

	httpresp.List(c, toAgendaItems(apps))
}

// ======================================================
// PAGAMENTOS PENDENTES
// ======================================================

func (h *StaffHandler) PendingPayments(c *gin.Context) {
	apps, err := h.repo.ListPendingPayments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Erro no servidor ao buscar pagamentos pendentes.")
		return
	}

	out := make([]dto.PendingPaymentDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.PendingPaymentDTO{
			ID:         ap.ID,
			ClientName: ap.ClientDisplayName(),
			Service:    ap.Service,
			Barber:     ap.Barber,
			Value:      ap.Value,
			UpdatedAt:  ap.UpdatedAt,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// PROCESSAR PAGAMENTO
// ======================================================

func (h *StaffHandler) ProcessPayment(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if err := domain.MarkPaid(ap); err != nil {
		writeBusinessError(c, err)
		return
	}

	if err := h.repo.Update(c.Request.Context(), ap); err != nil {
		httperr.Internal(c, "failed_to_process_payment", "Erro no servidor ao processar pagamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "payment_processed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Pagamento processado com sucesso!"})
}

// ======================================================
// LINK DE PAGAMENTO (Mercado Pago)
// ======================================================

func (h *StaffHandler) PaymentLink(c *gin.Context) {
	if h.payments == nil {
		writeBusinessError(c, httperr.ErrBusiness("payments_not_configured"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if ap.Status != string(domain.StatusCompleted) || ap.Value == nil {
		httperr.BadRequest(c, "invalid_state", "Apenas atendimentos concluídos podem gerar link de pagamento.")
		return
	}
	if err := domain.CanPay(ap.PaymentStatus); err != nil {
		writeBusinessError(c, err)
		return
	}

	link, err := h.payments.CheckoutLink(c.Request.Context(), ap)
	if err != nil {
		httperr.Internal(c, "failed_to_create_payment_link", "Erro ao gerar link de pagamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_url": link})
}
