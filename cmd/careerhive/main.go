package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/careerhive/careerhive/internal/auth"
	"github.com/careerhive/careerhive/internal/config"
	"github.com/careerhive/careerhive/internal/database"
	"github.com/careerhive/careerhive/internal/handlers"
	"github.com/careerhive/careerhive/internal/models"
	"github.com/careerhive/careerhive/internal/services"
	"github.com/careerhive/careerhive/internal/storage"
)

// Session tokens on the job board are valid for 10 hours; the cookie
// carrying them lives for 1 hour.
const tokenValidity = 10 * time.Hour

func main() {
	_ = godotenv.Load()
	log := zerolog.New(os.Stderr).With().Timestamp().Str("app", "careerhive").Logger()

	cfg, err := config.Load("8080", tokenValidity)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("closing database")
		}
	}()

	err = database.Migrate(db,
		&models.User{}, &models.Company{}, &models.Job{}, &models.Application{})
	if err != nil {
		log.Fatal().Err(err).Msg("migrations")
	}

	var uploader storage.Uploader
	if cfg.CloudinaryURL != "" {
		uploader, err = storage.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal().Err(err).Msg("cloudinary")
		}
	} else {
		log.Warn().Msg("CLOUDINARY_URL not set, file uploads disabled")
	}

	tokens := auth.NewTokenIssuer(cfg.SecretKey, cfg.TokenTTL)
	cookieMaxAge := int(cfg.CookieMaxAge.Seconds())

	userHandler := handlers.NewUserHandler(services.NewUserService(services.NewUserStore(db)), tokens, uploader, cookieMaxAge, log)
	jobHandler := handlers.NewJobHandler(services.NewJobService(db, log), log)
	companyHandler := handlers.NewCompanyHandler(services.NewCompanyService(db), uploader, log)
	applicationHandler := handlers.NewApplicationHandler(services.NewApplicationService(db), log)

	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authRequired := auth.RequireCookie(tokens)

	api := r.Group("/api/v1")
	api.GET("/health", handlers.HealthCheck)

	user := api.Group("/user")
	{
		user.POST("/register", userHandler.Register)
		user.POST("/login", userHandler.Login)
		user.GET("/logout", userHandler.Logout)
		user.POST("/profile/update", authRequired, userHandler.UpdateProfile)
	}

	company := api.Group("/company", authRequired)
	{
		company.POST("/register", companyHandler.Register)
		company.GET("/get", companyHandler.List)
		company.GET("/get/:id", companyHandler.GetByID)
		company.PUT("/update/:id", companyHandler.Update)
		company.DELETE("/delete/:id", companyHandler.Delete)
	}

	job := api.Group("/job", authRequired)
	{
		job.POST("/post", jobHandler.Create)
		job.GET("/get", jobHandler.List)
		job.GET("/getadminjobs", jobHandler.AdminJobs)
		job.GET("/get/:id", jobHandler.GetByID)
		job.PUT("/update/:id", jobHandler.Update)
		job.DELETE("/delete/:id", jobHandler.Delete)
	}

	application := api.Group("/application", authRequired)
	{
		application.GET("/apply/:id", applicationHandler.Apply)
		application.GET("/get", applicationHandler.AppliedJobs)
		application.GET("/:id/applicants", applicationHandler.Applicants)
		application.POST("/status/:id/update", applicationHandler.UpdateStatus)
		application.GET("/:id/count", applicationHandler.Count)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
