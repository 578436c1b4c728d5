package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"fedoffice/internal/delivery/http/controllers"
	"fedoffice/internal/delivery/http/helpers"
	"fedoffice/internal/delivery/http/middleware"
	"fedoffice/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	lookupController *controllers.LookupController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Registrations
	mux.HandleFunc("GET /registrations/{protocol}", requireAuth(lookupController.GetRegistration))
	mux.HandleFunc("POST /registrations/{protocol}/email", requireAuth(lookupController.EmailSummary))

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
