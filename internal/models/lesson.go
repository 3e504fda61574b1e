package models

// Lesson is a content unit with sections and a quiz
type Lesson struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Duration    int           `json:"duration"`
	Difficulty  string        `json:"difficulty"`
	Category    string        `json:"category"`
	Content     LessonContent `json:"content"`
	Quiz        Quiz          `json:"quiz"`
	ImageURL    string        `json:"imageUrl"`
	Points      int           `json:"points"`
}

// LessonContent groups the ordered content sections of a lesson
type LessonContent struct {
	Sections []ContentSection `json:"sections"`
}

// ContentSection is one readable block within a lesson
type ContentSection struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// Quiz is the set of questions closing out a lesson
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice quiz question
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuizResult summarizes a graded quiz submission
type QuizResult struct {
	LessonID     string `json:"lessonId"`
	Total        int    `json:"total"`
	Correct      int    `json:"correct"`
	Passed       bool   `json:"passed"`
	PointsEarned int    `json:"pointsEarned"`
}
