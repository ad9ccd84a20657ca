package main

import (
	"fmt"
	"net/http"

	"rioserver/internal/config"
	"rioserver/internal/handlers"
	"rioserver/internal/middleware"
	"rioserver/internal/repositories/mongodb"
	"rioserver/internal/services"
	"rioserver/pkg/database"
	"rioserver/pkg/logger"
	"rioserver/pkg/mailer"
	"rioserver/pkg/whatsapp"
	"rioserver/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const maxBodyBytes = 10 << 20 // attachments travel base64-inline

func main() {
	// Local development reads .env; deployments set real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// The database handle is built once and injected. A missing URI or
	// an unreachable server degrades persistence instead of refusing to
	// start: submissions must still relay by email.
	var db *database.MongoDB
	if cfg.Database.URI != "" {
		db, err = database.NewMongoDB(&database.DatabaseConfig{
			URI:            cfg.Database.URI,
			Database:       cfg.Database.Database,
			MaxPoolSize:    cfg.Database.MaxPoolSize,
			MinPoolSize:    cfg.Database.MinPoolSize,
			ConnectTimeout: cfg.Database.ConnectTimeout,
			SocketTimeout:  cfg.Database.SocketTimeout,
		})
		if err != nil {
			log.WithError(err).Warn("mongodb unavailable, persistence degraded")
			db = nil
		} else {
			defer db.Close()
		}
	} else {
		log.Warn("MONGODB_URI is not set, persistence degraded")
	}

	repo := mongodb.NewSubmissionRepository(db)

	mail := mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Secure:   cfg.SMTP.Secure,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
	})

	var wa whatsapp.Provider
	switch cfg.WhatsApp.Provider {
	case "twilio":
		wa = whatsapp.NewTwilioProvider(
			cfg.WhatsApp.Twilio.AccountSID,
			cfg.WhatsApp.Twilio.AuthToken,
			cfg.WhatsApp.Twilio.FromNumber,
		)
	default:
		wa = whatsapp.NewCloudAPIProvider(cfg.WhatsApp.PhoneNumberID, cfg.WhatsApp.AccessToken)
	}

	intakeService := services.NewIntakeService(repo, mail, wa, cfg, log)

	submissionHandler := handlers.NewSubmissionHandler(intakeService, log)
	adminHandler := handlers.NewAdminHandler(repo, log)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.BodySizeLimitMiddleware(maxBodyBytes))

	routes.SetupIntakeRoutes(router, submissionHandler)
	routes.SetupAdminRoutes(router, adminHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Infof("intake server listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
