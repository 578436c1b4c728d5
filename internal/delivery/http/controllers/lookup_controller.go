package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "fedoffice/internal/delivery/http/helpers"
	"fedoffice/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// EmailSummaryRequest is the request body for POST /registrations/{protocol}/email
type EmailSummaryRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (e EmailSummaryRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(e.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

type LookupController struct {
	Logger  *slog.Logger
	Lookup  domain.LookupService
	Summary domain.SummaryService
}

func NewLookupController(logger *slog.Logger, lookup domain.LookupService, summary domain.SummaryService) *LookupController {
	return &LookupController{
		Logger:  logger,
		Lookup:  lookup,
		Summary: summary,
	}
}

// GetRegistration godoc
// @Summary Look up a registration by protocol
// @Description Resolve a protocol string (with or without the EVE- prefix) into the canonical registration record, reconciling confirmed registrations, pending purchases, and gateway payments.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param protocol path string true "Registration protocol"
// @Success 200 {object} helpers.APIResponse "data contains the registration details"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/{protocol} [get]
func (c *LookupController) GetRegistration(w http.ResponseWriter, r *http.Request) {
	protocol := strings.TrimSpace(r.PathValue("protocol"))
	if protocol == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "protocol is required")
		return
	}

	details, err := c.Lookup.GetByProtocol(r.Context(), protocol)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "failed to resolve registration")
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, details)
}

// EmailSummary godoc
// @Summary Email a registration summary
// @Description Resolve the protocol and send a summary of the registration to the given address.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param protocol path string true "Registration protocol"
// @Param body body EmailSummaryRequest true "Destination address"
// @Success 202 {object} helpers.APIResponse "data contains the destination address"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/{protocol}/email [post]
func (c *LookupController) EmailSummary(w http.ResponseWriter, r *http.Request) {
	protocol := strings.TrimSpace(r.PathValue("protocol"))
	if protocol == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "protocol is required")
		return
	}
	var req EmailSummaryRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	to := strings.TrimSpace(strings.ToLower(req.Email))

	if err := c.Summary.EmailSummary(r.Context(), protocol, to); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "failed to send summary")
		return
	}

	h.WriteJSONSuccess(w, http.StatusAccepted, map[string]string{"email": to})
}
