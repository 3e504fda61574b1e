package service

import (
	"sort"

	"ecolearn/internal/models"
	"ecolearn/internal/progression"
)

// classRoster is the demo class shown in the educator portal. The portal
// pages surface canned classroom data; only the live student's own row is
// refreshed from the progression store.
var classRoster = []models.ClassStudent{
	{Name: "Arjun Sharma", EcoPoints: 1250, LessonsCompleted: 3, ChallengesDone: 2, Engagement: 0.86, LastActive: "Today"},
	{Name: "Priya Patel", EcoPoints: 1380, LessonsCompleted: 4, ChallengesDone: 3, Engagement: 0.92, LastActive: "Today"},
	{Name: "Rahul Kumar", EcoPoints: 980, LessonsCompleted: 2, ChallengesDone: 1, Engagement: 0.64, LastActive: "2 days ago"},
	{Name: "Sneha Reddy", EcoPoints: 1140, LessonsCompleted: 3, ChallengesDone: 2, Engagement: 0.78, LastActive: "Yesterday"},
	{Name: "Vikram Singh", EcoPoints: 870, LessonsCompleted: 2, ChallengesDone: 1, Engagement: 0.55, LastActive: "3 days ago"},
}

const classSize = 35

// lessonCompletionCounts maps lesson position to how many of the class
// have finished it in the demo data set.
var lessonCompletionCounts = []int{28, 22, 0}

// AnalyticsService serves the educator portal's class views.
type AnalyticsService struct {
	store *progression.Store
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(store *progression.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// ClassOverview returns the roster summary. The live student replaces
// their demo row when the names match, otherwise they are appended.
func (s *AnalyticsService) ClassOverview() *models.ClassOverview {
	student := s.store.Student()

	roster := make([]models.ClassStudent, 0, len(classRoster)+1)
	replaced := false
	for _, row := range classRoster {
		if row.Name == student.Name {
			row = liveRow(student.Name, student.EcoPoints, len(student.CompletedLessons), len(student.CompletedChallenges))
			replaced = true
		}
		roster = append(roster, row)
	}
	if !replaced && student.Name != "" {
		roster = append(roster, liveRow(student.Name, student.EcoPoints, len(student.CompletedLessons), len(student.CompletedChallenges)))
	}

	totalPoints := 0
	totalEngagement := 0.0
	for _, row := range roster {
		totalPoints += row.EcoPoints
		totalEngagement += row.Engagement
	}

	top := make([]models.ClassStudent, len(roster))
	copy(top, roster)
	sort.SliceStable(top, func(i, j int) bool { return top[i].EcoPoints > top[j].EcoPoints })
	if len(top) > 3 {
		top = top[:3]
	}

	return &models.ClassOverview{
		ClassName:      "Class 6B - Environmental Science",
		StudentCount:   classSize,
		TotalEcoPoints: totalPoints,
		AvgEngagement:  totalEngagement / float64(len(roster)),
		TopPerformers:  top,
		Roster:         roster,
	}
}

// ClassAnalytics returns the portal's chart data. Series are fixed demo
// values except the badge distribution, which reflects the live student.
func (s *AnalyticsService) ClassAnalytics() *models.ClassAnalytics {
	student := s.store.Student()

	badgeCounts := map[string]int{}
	for _, earned := range student.EarnedBadges {
		badgeCounts[earned.BadgeID]++
	}
	badges := make([]models.SeriesPoint, 0, len(badgeCounts))
	for id, count := range badgeCounts {
		badges = append(badges, models.SeriesPoint{Label: id, Value: float64(count)})
	}
	sort.Slice(badges, func(i, j int) bool { return badges[i].Label < badges[j].Label })

	completed := 0
	for _, count := range lessonCompletionCounts {
		completed += count
	}
	total := classSize * len(lessonCompletionCounts)

	return &models.ClassAnalytics{
		WeeklyActivity: []models.SeriesPoint{
			{Label: "Mon", Value: 42},
			{Label: "Tue", Value: 58},
			{Label: "Wed", Value: 51},
			{Label: "Thu", Value: 64},
			{Label: "Fri", Value: 72},
			{Label: "Sat", Value: 30},
			{Label: "Sun", Value: 24},
		},
		CategoryBreakdown: []models.SeriesPoint{
			{Label: models.CategoryConservation, Value: 32},
			{Label: models.CategoryWaste, Value: 26},
			{Label: models.CategoryWater, Value: 18},
			{Label: models.CategoryEnergy, Value: 14},
			{Label: models.CategoryBiodiversity, Value: 10},
		},
		BadgeDistribution: badges,
		CompletionRate:    float64(completed) / float64(total),
	}
}

func liveRow(name string, points, lessons, challenges int) models.ClassStudent {
	return models.ClassStudent{
		Name:             name,
		EcoPoints:        points,
		LessonsCompleted: lessons,
		ChallengesDone:   challenges,
		Engagement:       0.86,
		LastActive:       "Today",
	}
}
