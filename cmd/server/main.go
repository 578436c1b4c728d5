package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"fedoffice/config"
	_ "fedoffice/docs"
	authadapter "fedoffice/internal/adapters/auth"
	"fedoffice/internal/adapters/email"
	delivery "fedoffice/internal/delivery/http"
	"fedoffice/internal/delivery/http/controllers"
	"fedoffice/internal/delivery/http/middleware"
	"fedoffice/internal/repository/postgres"
	"fedoffice/internal/services"
)

// @title Federation Back Office API
// @version 1.0
// @description Registration resolution and pricing reconciliation for federation events.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	regRepo := postgres.NewRegistrationRepository(db)
	tempRepo := postgres.NewTempRegistrationRepository(db)
	txRepo := postgres.NewTransactionRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	athleteRepo := postgres.NewAthleteRepository(db)
	labelRepo := postgres.NewLabelRepository(db)
	pricingRepo := postgres.NewPricingRepository(db)

	issuer, verifier := authadapter.NewJWTCodec(cfg.JWTSecret)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: email.SESConfig{
			Region:          cfg.Mailer.SESRegion,
			AccessKeyID:     cfg.Mailer.SESAccessKeyID,
			SecretAccessKey: cfg.Mailer.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	pricingEngine := services.NewPricingEngine(pricingRepo, logger)
	lookupService := services.NewLookupService(regRepo, tempRepo, txRepo, eventRepo, athleteRepo, labelRepo, pricingEngine, logger)
	summaryService := services.NewSummaryService(lookupService, mailer, email.NewTemplateRenderer(), logger)
	authService := services.NewAuthService(issuer, authadapter.NewBcryptVerifier(), cfg.AdminEmail, cfg.AdminPasswordHash, cfg.TokenExpiry)

	lookupController := controllers.NewLookupController(logger, lookupService, summaryService)
	authController := controllers.NewAuthController(logger, authService)

	mux := delivery.NewRouter(lookupController, authController, verifier, logger)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	if len(cfg.CORSOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSOrigins, handler)
	}

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "environment", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
