package handlers

import (
	"errors"
	"net/http"

	"ecolearn/internal/service"
)

// PortalHandler serves the educator portal endpoints
type PortalHandler struct {
	portalService    *service.PortalService
	analyticsService *service.AnalyticsService
}

// NewPortalHandler creates a new portal handler
func NewPortalHandler(portalService *service.PortalService, analyticsService *service.AnalyticsService) *PortalHandler {
	return &PortalHandler{
		portalService:    portalService,
		analyticsService: analyticsService,
	}
}

// Login checks the portal password and issues an access token
func (h *PortalHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	token, err := h.portalService.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPortalDisabled):
			respondWithError(w, http.StatusNotFound, "Educator portal not available", "", nil)
		case errors.Is(err, service.ErrInvalidPassword):
			respondWithError(w, http.StatusUnauthorized, "Invalid password", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Portal login failed", "Failed to issue portal token", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Overview returns the class roster summary
func (h *PortalHandler) Overview(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.analyticsService.ClassOverview())
}

// Analytics returns the class chart data
func (h *PortalHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.analyticsService.ClassAnalytics())
}
