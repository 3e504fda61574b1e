package handlers

import (
	"net/http"

	"ecolearn/internal/catalog"
	"ecolearn/internal/progression"
)

// BadgeHandler serves the badge catalog with earned state
type BadgeHandler struct {
	catalog *catalog.Catalog
	store   *progression.Store
}

// NewBadgeHandler creates a new badge handler
func NewBadgeHandler(cat *catalog.Catalog, store *progression.Store) *BadgeHandler {
	return &BadgeHandler{catalog: cat, store: store}
}

// ListBadges returns the catalog overlaid with the student's earned badges
func (h *BadgeHandler) ListBadges(w http.ResponseWriter, r *http.Request) {
	student := h.store.Student()
	respondWithJSON(w, http.StatusOK, NewBadgeViews(h.catalog.Badges(), student.EarnedBadges))
}
