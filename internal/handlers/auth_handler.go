package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-backend/internal/config"
	"github.com/BruksfildServices01/barbershop-backend/internal/httperr"
	"github.com/BruksfildServices01/barbershop-backend/internal/mailer"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
	"github.com/BruksfildServices01/barbershop-backend/internal/resettoken"
	"github.com/BruksfildServices01/barbershop-backend/internal/validators"
)

const (
	sessionTokenTTL = 8 * time.Hour
	resetTokenTTL   = 20 * time.Minute
)

// Same body whether or not the email exists.
const genericResetMessage = "Se o email existir em nossa base de dados, um link de recuperação será enviado."

type AuthHandler struct {
	db          *gorm.DB
	config      *config.Config
	mailer      *mailer.Mailer
	resetTokens resettoken.Store
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	m *mailer.Mailer,
	resetTokens resettoken.Store,
) *AuthHandler {
	return &AuthHandler{
		db:          db,
		config:      cfg,
		mailer:      m,
		resetTokens: resetTokens,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"` // YYYY-MM-DD
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados incompletos para o cadastro.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainPlausible(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Pelo o que nossos servidores mostram, esse email já está cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro no servidor. Tente novamente mais tarde.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Phone:        req.Phone,
		BirthDate:    birthDate,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleClient,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "email_already_registered", "Pelo o que nossos servidores mostram, esse email já está cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro no servidor. Tente novamente mais tarde.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Você foi cadastrado com sucesso! Bem vindo à nossa barbearia :)",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password answer identically so the endpoint
	// cannot be used to enumerate accounts.
	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Email ou senha inválidos. Tente novamente.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro no servidor. Tente novamente mais tarde.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha inválidos. Tente novamente.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro no servidor. Tente novamente mais tarde.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Está tudo certo, seja bem vindo de volta :)",
		"token":   token,
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": genericResetMessage})
		return
	}

	token, err := h.generateResetToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro no servidor ao enviar email.")
		return
	}

	link := h.config.ResetURLBase + "?token=" + token

	// Success was already promised; a delivery failure must not turn into an
	// enumeration oracle.
	if err := h.mailer.SendPasswordReset(user.Email, user.Name, link); err != nil {
		log.Println("failed to send password reset email:", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": genericResetMessage})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	token, err := jwt.Parse(req.Token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(h.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		httperr.BadRequest(c, "invalid_or_expired_token", "Link de recuperação inválido ou expirado. Por favor, solicite um novo link.")
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		httperr.BadRequest(c, "invalid_or_expired_token", "Link de recuperação inválido ou expirado. Por favor, solicite um novo link.")
		return
	}

	userID, ok1 := claims["id"].(float64)
	jti, ok2 := claims["jti"].(string)
	if !ok1 || !ok2 {
		httperr.BadRequest(c, "invalid_or_expired_token", "Link de recuperação inválido ou expirado. Por favor, solicite um novo link.")
		return
	}

	used, err := h.resetTokens.IsUsed(c.Request.Context(), jti)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro no servidor ao redefinir a senha.")
		return
	}
	if used {
		httperr.BadRequest(c, "invalid_or_expired_token", "Link de recuperação inválido ou expirado. Por favor, solicite um novo link.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro no servidor ao redefinir a senha.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", uint(userID)).
		Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro no servidor ao redefinir a senha.")
		return
	}

	// The marker only needs to live as long as the token itself.
	ttl := resetTokenTTL
	if exp, ok := claims["exp"].(float64); ok {
		if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
			ttl = remaining
		}
	}
	if err := h.resetTokens.MarkUsed(c.Request.Context(), jti, ttl); err != nil {
		log.Println("failed to mark reset token as used:", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha atualizada com sucesso! Seja bem vindo novamente :)"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID,
		"name": user.Name,
		"role": user.Role,
		"exp":  time.Now().Add(sessionTokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func (h *AuthHandler) generateResetToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":  user.ID,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(resetTokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
