package handlers

import "ecolearn/internal/models"

const pointsPerLevel = 200

// StudentView wraps the student record with the derived progress numbers
// the dashboard renders. Derivations stay out of the stored record.
type StudentView struct {
	*models.Student
	LevelProgress     float64  `json:"levelProgress"`
	PointsToNextLevel int      `json:"pointsToNextLevel"`
	WeeklyProgress    float64  `json:"weeklyProgress"`
	MonthlyProgress   float64  `json:"monthlyProgress"`
	OwnedItems        []string `json:"ownedItems"`
}

// NewStudentView derives the display fields from the student record
func NewStudentView(student *models.Student, ownedItems []string) *StudentView {
	view := &StudentView{
		Student:           student,
		LevelProgress:     float64(student.EcoPoints%pointsPerLevel) / pointsPerLevel * 100,
		PointsToNextLevel: pointsPerLevel - student.EcoPoints%pointsPerLevel,
		OwnedItems:        ownedItems,
	}
	if student.WeeklyGoal > 0 {
		view.WeeklyProgress = float64(student.EcoPoints%student.WeeklyGoal) / float64(student.WeeklyGoal) * 100
	}
	if student.MonthlyGoal > 0 {
		view.MonthlyProgress = float64(student.EcoPoints%student.MonthlyGoal) / float64(student.MonthlyGoal) * 100
	}
	return view
}

// BadgeView overlays the earned date on a catalog badge
type BadgeView struct {
	models.Badge
	Earned     bool   `json:"earned"`
	DateEarned string `json:"dateEarned,omitempty"`
}

// NewBadgeViews merges the badge catalog with the student's earned list.
// Re-awarded badges show their first earned date.
func NewBadgeViews(badges []models.Badge, earned []models.EarnedBadge) []BadgeView {
	firstEarned := make(map[string]string)
	for _, e := range earned {
		if _, ok := firstEarned[e.BadgeID]; !ok {
			firstEarned[e.BadgeID] = e.DateEarned
		}
	}

	views := make([]BadgeView, 0, len(badges))
	for _, badge := range badges {
		view := BadgeView{Badge: badge}
		if date, ok := firstEarned[badge.ID]; ok {
			view.Earned = true
			view.DateEarned = date
		}
		views = append(views, view)
	}
	return views
}

// ChallengeView marks catalog challenges the student has completed
type ChallengeView struct {
	models.Challenge
	Completed bool `json:"completed"`
}

// NewChallengeViews merges the challenge catalog with completion state
func NewChallengeViews(challenges []models.Challenge, student *models.Student) []ChallengeView {
	views := make([]ChallengeView, 0, len(challenges))
	for _, challenge := range challenges {
		views = append(views, ChallengeView{
			Challenge: challenge,
			Completed: student.HasCompletedChallenge(challenge.ID),
		})
	}
	return views
}

// LessonView marks catalog lessons the student has completed
type LessonView struct {
	models.Lesson
	Completed bool `json:"completed"`
}

// NewLessonViews merges the lesson catalog with completion state
func NewLessonViews(lessons []models.Lesson, student *models.Student) []LessonView {
	views := make([]LessonView, 0, len(lessons))
	for _, lesson := range lessons {
		views = append(views, LessonView{
			Lesson:    lesson,
			Completed: student.HasCompletedLesson(lesson.ID),
		})
	}
	return views
}
