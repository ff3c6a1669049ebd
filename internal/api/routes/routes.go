package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hirestack/hirestack/internal/api/handlers"
	"github.com/hirestack/hirestack/internal/api/middleware"
	"github.com/hirestack/hirestack/internal/services"
	"github.com/hirestack/hirestack/internal/token"
)

type Deps struct {
	Tokens  *token.Manager
	Auth    services.AuthService
	AuthH   *handlers.AuthHandler
	Company *handlers.CompanyHandler
	Job     *handlers.JobHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/auth/register", d.AuthH.Register)
	r.POST("/auth/login", d.AuthH.Login)

	// Public company directory
	r.GET("/company/all", d.Company.List)

	// Protected routes: token verify, then subject -> user resolution
	auth := r.Group("/")
	auth.Use(middleware.TokenAuth(d.Tokens), middleware.RequireUser(d.Auth))

	auth.POST("/company/register", d.Company.Register)
	auth.GET("/company/profile", d.Company.Profile)
	auth.PUT("/company/profile", d.Company.Update)
	auth.POST("/company/upload/logo", d.Company.UploadLogo)
	auth.POST("/company/upload/banner", d.Company.UploadBanner)

	auth.POST("/jobs", d.Job.Create)
	auth.GET("/jobs", d.Job.ListMine)
	auth.GET("/jobs/stats", d.Job.Stats)
	auth.GET("/jobs/:id", d.Job.Get)
	auth.PUT("/jobs/:id", d.Job.Update)
	auth.DELETE("/jobs/:id", d.Job.Delete)
}
