package service

import (
	"errors"
	"testing"

	"ecolearn/internal/catalog"
	"ecolearn/internal/progression"
)

func TestGradeQuiz(t *testing.T) {
	cat := catalog.Default()
	lesson, ok := cat.LessonByID("lesson-1")
	if !ok {
		t.Fatal("lesson-1 missing from catalog")
	}

	correctAnswers := make([]int, len(lesson.Quiz.Questions))
	for i, q := range lesson.Quiz.Questions {
		correctAnswers[i] = q.CorrectAnswer
	}
	allWrong := make([]int, len(lesson.Quiz.Questions))
	for i, q := range lesson.Quiz.Questions {
		allWrong[i] = q.CorrectAnswer + 1
	}

	tests := []struct {
		name        string
		answers     []int
		wantCorrect int
		wantPassed  bool
		wantPoints  int
	}{
		{
			name:        "all correct passes",
			answers:     correctAnswers,
			wantCorrect: len(correctAnswers),
			wantPassed:  true,
			wantPoints:  progression.LessonCompletionPoints,
		},
		{
			name:        "all wrong fails",
			answers:     allWrong,
			wantCorrect: 0,
			wantPassed:  false,
			wantPoints:  0,
		},
		{
			name:        "missing answers count as wrong",
			answers:     nil,
			wantCorrect: 0,
			wantPassed:  false,
			wantPoints:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			svc := NewLessonService(cat, store)

			before := len(store.Student().CompletedLessons)

			result, err := svc.GradeQuiz("lesson-1", tt.answers)
			if err != nil {
				t.Fatalf("GradeQuiz() error = %v", err)
			}
			if result.Correct != tt.wantCorrect {
				t.Errorf("Correct = %d, want %d", result.Correct, tt.wantCorrect)
			}
			if result.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v", result.Passed, tt.wantPassed)
			}
			if result.PointsEarned != tt.wantPoints {
				t.Errorf("PointsEarned = %d, want %d", result.PointsEarned, tt.wantPoints)
			}

			after := len(store.Student().CompletedLessons)
			if tt.wantPassed && after != before+1 {
				t.Errorf("completed lessons = %d, want %d", after, before+1)
			}
			if !tt.wantPassed && after != before {
				t.Errorf("completed lessons = %d, want unchanged %d", after, before)
			}
		})
	}
}

func TestGradeQuizUnknownLesson(t *testing.T) {
	svc := NewLessonService(catalog.Default(), newTestStore(t))

	if _, err := svc.GradeQuiz("lesson-999", nil); !errors.Is(err, ErrLessonNotFound) {
		t.Errorf("GradeQuiz() error = %v, want ErrLessonNotFound", err)
	}
}

func TestPassingScore(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{10, 7},
	}
	for _, tt := range tests {
		if got := passingScore(tt.total); got != tt.want {
			t.Errorf("passingScore(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}
