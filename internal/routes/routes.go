package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-backend/internal/audit"
	"github.com/BruksfildServices01/barbershop-backend/internal/config"
	"github.com/BruksfildServices01/barbershop-backend/internal/handlers"
	"github.com/BruksfildServices01/barbershop-backend/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-backend/internal/mailer"
	"github.com/BruksfildServices01/barbershop-backend/internal/middleware"
	"github.com/BruksfildServices01/barbershop-backend/internal/payments"
	"github.com/BruksfildServices01/barbershop-backend/internal/resettoken"
	ucAppointment "github.com/BruksfildServices01/barbershop-backend/internal/usecase/appointment"
)

// RegisterRoutes monta toda a árvore de rotas da API e faz a composição
// das dependências (repositórios, use cases, handlers).
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// COMPOSIÇÃO
	// ======================================================

	repo := repository.NewAppointmentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	createUC := ucAppointment.NewCreateAppointment(repo, dispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(repo, dispatcher)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(repo, dispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(repo, dispatcher)
	walkInUC := ucAppointment.NewRegisterWalkIn(repo, dispatcher)

	m := mailer.New(cfg)

	var resetTokens resettoken.Store
	if cfg.RedisURL != "" {
		store, err := resettoken.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Redis indisponível, usando store em memória: %v", err)
			resetTokens = resettoken.NewMemoryStore()
		} else {
			resetTokens = store
		}
	} else {
		resetTokens = resettoken.NewMemoryStore()
	}

	var paymentsClient *payments.Client
	if cfg.MPAccessToken != "" {
		client, err := payments.New(cfg.MPAccessToken)
		if err != nil {
			log.Printf("⚠️ Mercado Pago não configurado: %v", err)
		} else {
			paymentsClient = client
		}
	}

	authHandler := handlers.NewAuthHandler(db, cfg, m, resetTokens)
	appointmentHandler := handlers.NewAppointmentHandler(db, repo, createUC, cancelUC, rescheduleUC)
	barberHandler := handlers.NewBarberHandler(repo, completeUC, walkInUC)
	feedbackHandler := handlers.NewFeedbackHandler(db, dispatcher)
	staffHandler := handlers.NewStaffHandler(db, repo, dispatcher, paymentsClient)
	meHandler := handlers.NewMeHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROTAS PÚBLICAS
	// ======================================================

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/forgot-password", authHandler.ForgotPassword)
		api.POST("/reset-password", authHandler.ResetPassword)
	}

	// ======================================================
	// ROTAS AUTENTICADAS
	// ======================================================

	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)

		// Cliente
		secured.POST("/agendar", appointmentHandler.Create)
		secured.DELETE("/agendamentos/:id", appointmentHandler.Cancel)
		secured.PUT("/agendamentos/:id", appointmentHandler.Reschedule)
		secured.GET("/meus-agendamentos", appointmentHandler.ListMine)
		secured.GET("/minhas-notificacoes", appointmentHandler.Notifications)
		secured.GET("/barbeiros", appointmentHandler.ListBarbers)
		secured.POST("/deixar-feedback", feedbackHandler.Submit)

		// Barbeiro
		secured.GET("/minha-agenda", barberHandler.Agenda)
		secured.GET("/minha-agenda/estatisticas", barberHandler.Stats)
		secured.PUT("/agendamentos/concluir/:id", barberHandler.Complete)
		secured.POST("/agendar/walkin", barberHandler.RegisterWalkIn)
		secured.GET("/meus-feedbacks", feedbackHandler.ListMine)
	}

	// ======================================================
	// ROTAS DE STAFF (recepção / admin)
	// ======================================================

	staff := secured.Group("/")
	staff.Use(middleware.RequireStaff())
	{
		staff.GET("/feedbacks-todos", feedbackHandler.ListAll)
		staff.GET("/dashboard-admin", staffHandler.Dashboard)
		staff.GET("/agenda-do-dia", staffHandler.DayAgenda)
		staff.GET("/pagamentos-pendentes", staffHandler.PendingPayments)
		staff.PUT("/pagamentos/processar/:id", staffHandler.ProcessPayment)
		staff.POST("/pagamentos/link/:id", staffHandler.PaymentLink)
		staff.GET("/audit-logs", auditLogsHandler.List)
	}
}
