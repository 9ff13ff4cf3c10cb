package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barbershop-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
	"github.com/BruksfildServices01/barbershop-backend/internal/timezone"
)

func TestBarberAgendaShowsOnlyOwnScheduled(t *testing.T) {
	r, db, cfg := setupTest(t)
	barber := createUser(t, db, "Carlos", "carlos@example.com", models.RoleBarber)
	client := createUser(t, db, "João", "joao@example.com", models.RoleClient)

	mine := scheduleAppointment(t, db, client.ID, "Carlos", timezone.Now().Add(time.Hour))
	scheduleAppointment(t, db, client.ID, "Pedro", timezone.Now().Add(time.Hour))

	w := doRequest(r, http.MethodGet, "/api/minha-agenda", tokenFor(t, cfg, barber), nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	require.EqualValues(t, 1, resp["total"])

	item := resp["data"].([]any)[0].(map[string]any)
	assert.EqualValues(t, mine.ID, item["id"])
	assert.Equal(t, "João", item["client_name"])
}

func TestCompleteAppointment(t *testing.T) {
	r, db, cfg := setupTest(t)
	barber := createUser(t, db, "Carlos", "carlos@example.com", models.RoleBarber)
	client := createUser(t, db, "João", "joao@example.com", models.RoleClient)
	token := tokenFor(t, cfg, barber)

	ap := scheduleAppointment(t, db, client.ID, "Carlos", timezone.Now().Add(time.Hour))

	w := doRequest(r, http.MethodPut, fmt.Sprintf("/api/agendamentos/concluir/%d", ap.ID), token, map[string]any{
		"value": 50.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Appointment
	require.NoError(t, db.First(&updated, ap.ID).Error)
	assert.Equal(t, string(domain.StatusCompleted), updated.Status)
	require.NotNil(t, updated.Value)
	assert.Equal(t, 50.0, *updated.Value)
	assert.Equal(t, domain.PaymentPending, updated.PaymentStatus)

	// Completing twice is final.
	again := doRequest(r, http.MethodPut, fmt.Sprintf("/api/agendamentos/concluir/%d", ap.ID), token, map[string]any{
		"value": 60.0,
	})
	require.Equal(t, http.StatusBadRequest, again.Code)
	assert.Equal(t, "already_completed", decodeBody(t, again)["error_code"])
}

func TestCompleteSomeoneElsesAppointment(t *testing.T) {
	r, db, cfg := setupTest(t)
	createUser(t, db, "Carlos", "carlos@example.com", models.RoleBarber)
	other := createUser(t, db, "Pedro", "pedro@example.com", models.RoleBarber)
	client := createUser(t, db, "João", "joao@example.com", models.RoleClient)

	ap := scheduleAppointment(t, db, client.ID, "Carlos", timezone.Now().Add(time.Hour))

	w := doRequest(r, http.MethodPut, fmt.Sprintf("/api/agendamentos/concluir/%d", ap.ID), tokenFor(t, cfg, other), map[string]any{
		"value": 50.0,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "not_owner", decodeBody(t, w)["error_code"])
}

func TestRegisterWalkIn(t *testing.T) {
	r, db, cfg := setupTest(t)
	barber := createUser(t, db, "Carlos", "carlos@example.com", models.RoleBarber)
	token := tokenFor(t, cfg, barber)

	w := doRequest(r, http.MethodPost, "/api/agendar/walkin", token, map[string]any{
		"client_name": "Cliente da Rua",
		"service":     "Barba",
		"value":       35.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var ap models.Appointment
	require.NoError(t, db.Where("walk_in_name = ?", "Cliente da Rua").First(&ap).Error)
	assert.Nil(t, ap.ClientID)
	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	assert.Equal(t, domain.PaymentPending, ap.PaymentStatus)
}

func TestRegisterWalkInRejectsNegativeValue(t *testing.T) {
	r, db, cfg := setupTest(t)
	barber := createUser(t, db, "Carlos", "carlos@example.com", models.RoleBarber)

	w := doRequest(r, http.MethodPost, "/api/agendar/walkin", tokenFor(t, cfg, barber), map[string]any{
		"client_name": "Cliente da Rua",
		"service":     "Barba",
		"value":       -5.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_value", decodeBody(t, w)["error_code"])
}

func TestRegisterWalkInAcceptsZeroValue(t *testing.T) {
	r, db, cfg := setupTest(t)
	barber := createUser(t, db, "Carlos", "carlos@example.com", models.RoleBarber)

	w := doRequest(r, http.MethodPost, "/api/agendar/walkin", tokenFor(t, cfg, barber), map[string]any{
		"client_name": "Cortesia",
		"service":     "Corte",
		"value":       0.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestBarberDailyStats(t *testing.T) {
	r, db, cfg := setupTest(t)
	barber := createUser(t, db, "Carlos", "carlos@example.com", models.RoleBarber)
	client := createUser(t, db, "João", "joao@example.com", models.RoleClient)
	token := tokenFor(t, cfg, barber)

	ap := scheduleAppointment(t, db, client.ID, "Carlos", timezone.Now().Add(time.Hour))
	w := doRequest(r, http.MethodPut, fmt.Sprintf("/api/agendamentos/concluir/%d", ap.ID), token, map[string]any{
		"value": 50.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	stats := doRequest(r, http.MethodGet, "/api/minha-agenda/estatisticas", token, nil)
	require.Equal(t, http.StatusOK, stats.Code)
	assert.EqualValues(t, 1, decodeBody(t, stats)["total_completed"])
}
