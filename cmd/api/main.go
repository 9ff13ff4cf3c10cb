package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-backend/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-backend/internal/db"
	"github.com/BruksfildServices01/barbershop-backend/internal/middleware"
	"github.com/BruksfildServices01/barbershop-backend/internal/routes"
)

func main() {
	cfg := config.Load()

	db := dbpkg.NewDB(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("🚀 Servidor rodando na porta %s", cfg.ServerPort)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("❌ Erro ao iniciar servidor: %v", err)
	}
}
