package handlers

import (
	"errors"
	"net/http"

	"ecolearn/internal/progression"
	"ecolearn/internal/service"
)

// LessonHandler serves lesson content and quiz submissions
type LessonHandler struct {
	lessonService *service.LessonService
	store         *progression.Store
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lessonService *service.LessonService, store *progression.Store) *LessonHandler {
	return &LessonHandler{lessonService: lessonService, store: store}
}

// ListLessons returns the catalog with completion markers
func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, NewLessonViews(h.lessonService.Lessons(), h.store.Student()))
}

// GetLesson returns one lesson with its content and quiz
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.lessonService.Lesson(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Lesson not found", "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, lesson)
}

// SubmitQuiz grades an answer sheet; passing completes the lesson
func (h *LessonHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers []int `json:"answers"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	result, err := h.lessonService.GradeQuiz(r.PathValue("id"), req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			respondWithError(w, http.StatusNotFound, "Lesson not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to grade quiz", "Quiz grading failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// CompleteLesson records a lesson completion directly, without a quiz
func (h *LessonHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	student, err := h.store.CompleteLesson(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to complete lesson", "Lesson completion failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, NewStudentView(student, h.store.OwnedItems()))
}
