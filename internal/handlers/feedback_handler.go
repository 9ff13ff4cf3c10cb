package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-backend/internal/audit"
	domainAppointment "github.com/BruksfildServices01/barbershop-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-backend/internal/dto"
	"github.com/BruksfildServices01/barbershop-backend/internal/httperr"
	"github.com/BruksfildServices01/barbershop-backend/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-backend/internal/middleware"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
)

const (
	barberFeedbackLimit = 10
	staffFeedbackLimit  = 5
)

type FeedbackHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewFeedbackHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *FeedbackHandler {
	return &FeedbackHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type SubmitFeedbackRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Barber        string `json:"barber" binding:"required"`
	Comment       string `json:"comment" binding:"required"`
}

// ======================================================
// SUBMIT (cliente)
// ======================================================

func (h *FeedbackHandler) Submit(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)
	clientName := c.MustGet(middleware.ContextUserName).(string)

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados incompletos para o feedback.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, req.AppointmentID).Error; err != nil {
		httperr.Forbidden(c, "feedback_not_allowed", "Você não pode deixar feedback para esse agendamento.")
		return
	}

	// Absent and not-owned collapse into the same answer so appointment ids
	// cannot be probed.
	if !domainAppointment.OwnedBy(&ap, clientID) {
		httperr.Forbidden(c, "feedback_not_allowed", "Você não pode deixar feedback para esse agendamento.")
		return
	}

	if ap.FeedbackSent {
		httperr.BadRequest(c, "already_submitted", "Você já enviou um feedback para este agendamento.")
		return
	}

	fb := models.Feedback{
		Barber:        req.Barber,
		ClientName:    clientName,
		Comment:       req.Comment,
		AppointmentID: ap.ID,
	}

	if err := h.db.Create(&fb).Error; err != nil {
		// Second layer: the unique index catches a race the flag missed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "already_submitted", "Você já enviou um feedback para este agendamento.")
			return
		}
		httperr.Internal(c, "failed_to_save_feedback", "Erro no servidor ao salvar feedback.")
		return
	}

	// Two writes, no transaction: the store is treated as per-document
	// atomic only. The unique index above backstops a failure in between.
	if err := h.db.Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Update("feedback_sent", true).Error; err != nil {
		httperr.Internal(c, "failed_to_save_feedback", "Erro no servidor ao salvar feedback.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "feedback_submitted",
		Entity:   "feedback",
		EntityID: &fb.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Feedback enviado com sucesso! Obrigado!"})
}

// ======================================================
// LIST (barbeiro, últimos 10, com valor do atendimento)
// ======================================================

func (h *FeedbackHandler) ListMine(c *gin.Context) {
	barberName := c.MustGet(middleware.ContextUserName).(string)

	var feedbacks []models.Feedback
	if err := h.db.
		Preload("Appointment").
		Where("barber = ?", barberName).
		Order("created_at DESC").
		Limit(barberFeedbackLimit).
		Find(&feedbacks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_feedbacks", "Erro no servidor ao buscar feedbacks.")
		return
	}

	httpresp.List(c, toFeedbackDTOs(feedbacks, true))
}

// ======================================================
// LIST ALL (staff, últimos 5, filtro opcional por barbeiro)
// ======================================================

func (h *FeedbackHandler) ListAll(c *gin.Context) {
	q := h.db.Model(&models.Feedback{})

	if barber := c.Query("barber"); barber != "" {
		q = q.Where("barber = ?", barber)
	}

	var feedbacks []models.Feedback
	if err := q.
		Order("created_at DESC").
		Limit(staffFeedbackLimit).
		Find(&feedbacks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_feedbacks", "Erro no servidor ao buscar feedbacks.")
		return
	}

	httpresp.List(c, toFeedbackDTOs(feedbacks, false))
}

func toFeedbackDTOs(feedbacks []models.Feedback, withValue bool) []dto.FeedbackDTO {
	out := make([]dto.FeedbackDTO, 0, len(feedbacks))
	for _, fb := range feedbacks {
		item := dto.FeedbackDTO{
			ID:         fb.ID,
			ClientName: fb.ClientName,
			Barber:     fb.Barber,
			Comment:    fb.Comment,
			CreatedAt:  fb.CreatedAt,
		}
		if withValue {
			item.Value = fb.Appointment.Value
		}
		out = append(out, item)
	}
	return out
}
