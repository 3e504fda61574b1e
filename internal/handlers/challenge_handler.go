package handlers

import (
	"net/http"

	"ecolearn/internal/catalog"
	"ecolearn/internal/progression"
)

// ChallengeHandler serves the challenge catalog and completions
type ChallengeHandler struct {
	catalog *catalog.Catalog
	store   *progression.Store
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(cat *catalog.Catalog, store *progression.Store) *ChallengeHandler {
	return &ChallengeHandler{catalog: cat, store: store}
}

// ListChallenges returns the catalog with completion markers
func (h *ChallengeHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, NewChallengeViews(h.catalog.Challenges(), h.store.Student()))
}

// GetChallenge returns one challenge by id
func (h *ChallengeHandler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	challenge, ok := h.catalog.ChallengeByID(r.PathValue("id"))
	if !ok {
		respondWithError(w, http.StatusNotFound, "Challenge not found", "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, challenge)
}

// CompleteChallenge records a completion. Unknown ids return the record
// unchanged rather than an error, mirroring the store's no-op.
func (h *ChallengeHandler) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	student, err := h.store.CompleteChallenge(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to complete challenge", "Challenge completion failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, NewStudentView(student, h.store.OwnedItems()))
}
