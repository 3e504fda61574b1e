package handlers

import (
	"net/http"

	"ecolearn/internal/models"
	"ecolearn/internal/progression"
)

// StudentHandler serves the student profile endpoints
type StudentHandler struct {
	store *progression.Store
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(store *progression.Store) *StudentHandler {
	return &StudentHandler{store: store}
}

// GetStudent returns the current record with derived progress fields
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	student := GetStudentFromContext(r.Context())
	if student == nil {
		student = h.store.Student()
	}
	respondWithJSON(w, http.StatusOK, NewStudentView(student, h.store.OwnedItems()))
}

// UpdateStudent applies a profile merge-update
func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	student, err := h.store.UpdateProfile(update)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update profile", "Profile update failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, NewStudentView(student, h.store.OwnedItems()))
}
