package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-backend/internal/dto"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
)

// Birthdays are compared in UTC, matching how birth dates are stored.
func timeNowUTC() time.Time {
	return time.Now().UTC()
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func toAgendaItems(apps []models.Appointment) []dto.AgendaItemDTO {
	out := make([]dto.AgendaItemDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.AgendaItemDTO{
			ID:          ap.ID,
			ScheduledAt: ap.ScheduledAt,
			Service:     ap.Service,
			Barber:      ap.Barber,
			Status:      ap.Status,
			ClientName:  ap.ClientDisplayName(),
		})
	}
	return out
}
