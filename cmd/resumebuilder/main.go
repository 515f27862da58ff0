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
)

// Resume-builder tokens are short-lived.
const tokenValidity = time.Hour

func main() {
	_ = godotenv.Load()
	log := zerolog.New(os.Stderr).With().Timestamp().Str("app", "resumebuilder").Logger()

	cfg, err := config.Load("5001", tokenValidity)
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
		&models.ResumeUser{}, &models.ResumeDraft{}, &models.Resume{})
	if err != nil {
		log.Fatal().Err(err).Msg("migrations")
	}

	tokens := auth.NewTokenIssuer(cfg.SecretKey, cfg.TokenTTL)
	resumeHandler := handlers.NewResumeHandler(services.NewResumeService(db), tokens, log)

	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", handlers.HealthCheck)
	r.POST("/signup", resumeHandler.Signup)
	r.POST("/login", resumeHandler.Login)
	r.PUT("/update-profile", resumeHandler.UpdateProfile)
	r.POST("/resumeSubmit", resumeHandler.SubmitResume)
	r.GET("/getResume", resumeHandler.GetResume)
	// Auth on /generate-pdf is optional: a valid bearer token additionally
	// persists the generated CV.
	r.POST("/generate-pdf", resumeHandler.GeneratePDF)
	r.GET("/resumes", auth.RequireBearer(tokens), resumeHandler.ListResumes)

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
