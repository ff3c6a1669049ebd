package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hirestack/hirestack/config"
	"github.com/hirestack/hirestack/internal/api/handlers"
	"github.com/hirestack/hirestack/internal/api/middleware"
	"github.com/hirestack/hirestack/internal/api/routes"
	"github.com/hirestack/hirestack/internal/logger"
	"github.com/hirestack/hirestack/internal/models"
	pgrepo "github.com/hirestack/hirestack/internal/repositories/postgres"
	"github.com/hirestack/hirestack/internal/services"
	"github.com/hirestack/hirestack/internal/storage"
	"github.com/hirestack/hirestack/internal/token"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)

	db, err := config.NewPostgres(cfg.PostgresURI)
	if err != nil {
		l.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.JobPosting{},
		&models.Application{},
	); err != nil {
		l.Fatalf("migration error: %v", err)
	}
	l.Info("PostgreSQL connected")

	uploader, err := storage.NewGCSUploader(context.Background(), cfg.GCSBucket)
	if err != nil {
		l.Fatalf("GCS init error: %v", err)
	}
	defer uploader.Close()

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	users := pgrepo.NewUserRepo(db)
	companies := pgrepo.NewCompanyRepo(db)
	jobs := pgrepo.NewJobRepo(db)

	authSvc := services.NewAuthService(users, tokens, cfg.PhoneRegion)
	companySvc := services.NewCompanyService(companies, uploader, cfg.PhoneRegion)
	jobSvc := services.NewJobService(jobs)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))
	r.Use(cors.Default())

	routes.RegisterRoutes(r, routes.Deps{
		Tokens:  tokens,
		Auth:    authSvc,
		AuthH:   handlers.NewAuthHandler(authSvc),
		Company: handlers.NewCompanyHandler(companySvc),
		Job:     handlers.NewJobHandler(jobSvc),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		l.Fatalf("server error: %v", err)
	}
}
