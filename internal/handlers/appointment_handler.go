package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-backend/internal/httperr"
	"github.com/BruksfildServices01/barbershop-backend/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-backend/internal/middleware"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
	ucAppointment "github.com/BruksfildServices01/barbershop-backend/internal/usecase/appointment"
)

// ======================================================
// HANDLER (rotas do cliente)
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	repo         domain.Repository
	createUC     *ucAppointment.CreateAppointment
	cancelUC     *ucAppointment.CancelAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		repo:         repo,
		createUC:     createUC,
		cancelUC:     cancelUC,
		rescheduleUC: rescheduleUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Service string `json:"service" binding:"required"`
	Barber  string `json:"barber" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Time    string `json:"time" binding:"required"` // HH:mm
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID: clientID,
		Service:  req.Service,
		Barber:   req.Barber,
		Date:     req.Date,
		Time:     req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Seu agendamento foi criado com sucesso! Nos vemos em breve :)",
		"appointment": ap,
	})
}

// ======================================================
// CANCEL (hard delete, owner only)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), clientID, id); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento cancelado com sucesso!"})
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), clientID, id, req.Date, req.Time)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Agendamento remarcado com sucesso! Nos vemos em breve :)",
		"appointment": ap,
	})
}

// ======================================================
// LIST (próprios agendamentos)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	apps, err := h.repo.ListForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro no servidor ao buscar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// NOTIFICATIONS (aniversário)
// ======================================================

func (h *AppointmentHandler) Notifications(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	notifications := []gin.H{}

	today := timeNowUTC()
	birthday := user.BirthDate.UTC()
	if birthday.Month() == today.Month() && birthday.Day() == today.Day() {
		notifications = append(notifications, gin.H{
			"type":    "info",
			"message": "Feliz Aniversário, " + user.Name + "! Você ganhou 10% de desconto no seu próximo corte como presente!",
		})
	}

	httpresp.OK(c, notifications)
}

// ======================================================
// BARBERS (lista para o formulário de agendamento)
// ======================================================

type BarberDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (h *AppointmentHandler) ListBarbers(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Select("id", "name").
		Where("role = ?", models.RoleBarber).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro no servidor ao buscar barbeiros.")
		return
	}

	out := make([]BarberDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, BarberDTO{ID: b.ID, Name: b.Name})
	}

	httpresp.List(c, out)
}
