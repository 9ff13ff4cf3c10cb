package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-backend/internal/config"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
)

func TestRegister(t *testing.T) {
	r, db, _ := setupTest(t)

	body := map[string]any{
		"name":       "João Silva",
		"phone":      "11988887777",
		"birth_date": "1995-03-20",
		"email":      "joao@example.com",
		"password":   "secret123",
	}

	w := doRequest(r, http.MethodPost, "/api/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody(t, w)
	user := resp["user"].(map[string]any)
	assert.Equal(t, "joao@example.com", user["email"])
	assert.Equal(t, models.RoleClient, user["role"])

	var count int64
	db.Model(&models.User{}).Where("email = ?", "joao@example.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db, _ := setupTest(t)
	createUser(t, db, "Maria", "maria@example.com", models.RoleClient)

	body := map[string]any{
		"name":       "Outra Maria",
		"phone":      "11977776666",
		"birth_date": "1992-01-01",
		"email":      "maria@example.com",
		"password":   "secret123",
	}

	w := doRequest(r, http.MethodPost, "/api/register", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email_already_registered", decodeBody(t, w)["error_code"])
}

func TestRegisterInvalidBirthDate(t *testing.T) {
	r, _, _ := setupTest(t)

	body := map[string]any{
		"name":       "Sem Data",
		"phone":      "11977776666",
		"birth_date": "20/03/1995",
		"email":      "semdata@example.com",
		"password":   "secret123",
	}

	w := doRequest(r, http.MethodPost, "/api/register", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_birth_date", decodeBody(t, w)["error_code"])
}

func TestLoginIssuesSessionToken(t *testing.T) {
	r, db, cfg := setupTest(t)
	createUser(t, db, "Carlos", "carlos@example.com", models.RoleBarber)

	w := doRequest(r, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "carlos@example.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	tokenStr := resp["token"].(string)

	token, err := jwt.Parse(tokenStr, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "Carlos", claims["name"])
	assert.Equal(t, models.RoleBarber, claims["role"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), exp, time.Minute)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, db, _ := setupTest(t)
	createUser(t, db, "Ana", "ana@example.com", models.RoleClient)

	wrongPassword := doRequest(r, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "ana@example.com",
		"password": "senha-errada",
	})
	unknownEmail := doRequest(r, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "ninguem@example.com",
		"password": "qualquer-coisa",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestForgotPasswordAlwaysAnswersTheSame(t *testing.T) {
	r, db, _ := setupTest(t)
	createUser(t, db, "Ana", "ana@example.com", models.RoleClient)

	known := doRequest(r, http.MethodPost, "/api/forgot-password", "", map[string]any{
		"email": "ana@example.com",
	})
	unknown := doRequest(r, http.MethodPost, "/api/forgot-password", "", map[string]any{
		"email": "ninguem@example.com",
	})

	require.Equal(t, http.StatusOK, known.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String())
}

func resetTokenFor(t *testing.T, cfg *config.Config, userID uint, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":  userID,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return token
}

func TestResetPasswordIsSingleUse(t *testing.T) {
	r, db, cfg := setupTest(t)
	user := createUser(t, db, "Ana", "ana@example.com", models.RoleClient)

	token := resetTokenFor(t, cfg, user.ID, 20*time.Minute)

	first := doRequest(r, http.MethodPost, "/api/reset-password", "", map[string]any{
		"token":        token,
		"new_password": "nova-senha-123",
	})
	require.Equal(t, http.StatusOK, first.Code)

	login := doRequest(r, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "ana@example.com",
		"password": "nova-senha-123",
	})
	assert.Equal(t, http.StatusOK, login.Code)

	second := doRequest(r, http.MethodPost, "/api/reset-password", "", map[string]any{
		"token":        token,
		"new_password": "outra-senha-456",
	})
	require.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, "invalid_or_expired_token", decodeBody(t, second)["error_code"])
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	r, db, cfg := setupTest(t)
	user := createUser(t, db, "Ana", "ana@example.com", models.RoleClient)

	token := resetTokenFor(t, cfg, user.ID, -time.Minute)

	w := doRequest(r, http.MethodPost, "/api/reset-password", "", map[string]any{
		"token":        token,
		"new_password": "nova-senha-123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_or_expired_token", decodeBody(t, w)["error_code"])
}
