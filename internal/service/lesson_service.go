package service

import (
	"errors"
	"math"

	"ecolearn/internal/catalog"
	"ecolearn/internal/models"
	"ecolearn/internal/progression"
)

var ErrLessonNotFound = errors.New("lesson not found")

// passFraction is the share of quiz questions that must be answered
// correctly to complete a lesson.
const passFraction = 0.7

// LessonService serves lesson content and grades quiz submissions.
type LessonService struct {
	catalog *catalog.Catalog
	store   *progression.Store
}

// NewLessonService creates a new lesson service
func NewLessonService(cat *catalog.Catalog, store *progression.Store) *LessonService {
	return &LessonService{catalog: cat, store: store}
}

// Lessons returns the lesson catalog
func (s *LessonService) Lessons() []models.Lesson {
	return s.catalog.Lessons()
}

// Lesson returns a single lesson by id
func (s *LessonService) Lesson(id string) (models.Lesson, error) {
	lesson, ok := s.catalog.LessonByID(id)
	if !ok {
		return models.Lesson{}, ErrLessonNotFound
	}
	return lesson, nil
}

// GradeQuiz scores an answer sheet against the lesson quiz and records
// the lesson as completed on a pass. Answers are option indexes, one per
// question; missing or out-of-range entries count as wrong.
func (s *LessonService) GradeQuiz(lessonID string, answers []int) (*models.QuizResult, error) {
	lesson, ok := s.catalog.LessonByID(lessonID)
	if !ok {
		return nil, ErrLessonNotFound
	}

	questions := lesson.Quiz.Questions
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}

	result := &models.QuizResult{
		LessonID: lessonID,
		Total:    len(questions),
		Correct:  correct,
		Passed:   correct >= passingScore(len(questions)),
	}

	if result.Passed {
		if _, err := s.store.CompleteLesson(lessonID); err != nil {
			return nil, err
		}
		result.PointsEarned = progression.LessonCompletionPoints
	}

	return result, nil
}

// passingScore returns the minimum correct answers needed to pass
func passingScore(total int) int {
	return int(math.Ceil(float64(total) * passFraction))
}
