package handlers

import (
	"net/http"
	"strings"

	"ecolearn/internal/service"
)

// ContactHandler accepts contact-form submissions
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit stores a contact message and queues delivery
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		respondWithError(w, http.StatusBadRequest, "Name, email and message are required", "", nil)
		return
	}
	if !strings.Contains(req.Email, "@") {
		respondWithError(w, http.StatusBadRequest, "Invalid email address", "", nil)
		return
	}

	msg, err := h.contactService.Submit(r.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to submit message", "Contact submission failed", err)
		return
	}

	respondWithJSON(w, http.StatusAccepted, map[string]string{"id": msg.ID, "status": "received"})
}
