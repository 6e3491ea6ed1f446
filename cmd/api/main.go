package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Mahesh20s/job-portal/internal/auth"
	"github.com/Mahesh20s/job-portal/internal/config"
	"github.com/Mahesh20s/job-portal/internal/database"
	"github.com/Mahesh20s/job-portal/internal/handlers"
	"github.com/Mahesh20s/job-portal/internal/services"
	"github.com/Mahesh20s/job-portal/internal/storage"
)

func main() {
	// 1. Configuration & Logging
	cfg := config.Load()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	// 2. Database Connection
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}

	// 3. Resume Storage
	store, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir setup failed")
	}

	// 4. Core Services
	mailer := services.NewSMTPMailer(cfg)
	accountService := services.NewAccountService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db, mailer)
	bookmarkService := services.NewBookmarkService(db)
	companyService := services.NewCompanyService(db)
	dashboardService := services.NewDashboardService(db)

	// 5. Sessions
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)

	// 6. Handlers
	authHandler := handlers.NewAuthHandler(accountService, tokens)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, jobService, store)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// 7. Router & Middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Requested-With"}
	corsConfig.AllowCredentials = false
	r.Use(cors.New(corsConfig))

	r.Use(auth.Authenticate(tokens, db))

	// 8. Routes
	r.GET("/health", handlers.HealthCheck)

	r.GET("/", jobHandler.ListJobs)
	r.GET("/job/:id", jobHandler.JobDetail)
	r.GET("/companies", companyHandler.ListCompanies)
	r.GET("/company/:id", companyHandler.CompanyDetail)

	r.GET("/register", authHandler.RegisterForm)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)

	private := r.Group("/", auth.RequireAuth())
	{
		private.GET("/logout", authHandler.Logout)

		private.GET("/job/create", jobHandler.NewJob)
		private.POST("/job/create", jobHandler.CreateJob)
		private.GET("/job/:id/edit", jobHandler.EditJob)
		private.POST("/job/:id/edit", jobHandler.UpdateJob)

		private.GET("/apply/:id", applicationHandler.ApplyForm)
		private.POST("/apply/:id", applicationHandler.Apply)

		private.GET("/job/:id/bookmark", bookmarkHandler.ToggleBookmark)
		private.POST("/job/:id/bookmark", bookmarkHandler.ToggleBookmark)

		private.GET("/dashboard", dashboardHandler.Dashboard)
		private.GET("/my-applications", applicationHandler.MyApplications)
		private.GET("/my-bookmarks", bookmarkHandler.MyBookmarks)
	}

	// Uploaded resumes are served straight off disk.
	r.Static("/media", store.Dir())

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
