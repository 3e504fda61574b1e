package models

// ClassStudent is one row in the educator portal's class roster.
// Roster data is fixed demo content, not live records.
type ClassStudent struct {
	Name             string  `json:"name"`
	EcoPoints        int     `json:"ecoPoints"`
	LessonsCompleted int     `json:"lessonsCompleted"`
	ChallengesDone   int     `json:"challengesDone"`
	Engagement       float64 `json:"engagement"` // 0.0 - 1.0
	LastActive       string  `json:"lastActive"`
}

// ClassOverview is the educator portal summary view
type ClassOverview struct {
	ClassName      string         `json:"className"`
	StudentCount   int            `json:"studentCount"`
	TotalEcoPoints int            `json:"totalEcoPoints"`
	AvgEngagement  float64        `json:"avgEngagement"`
	TopPerformers  []ClassStudent `json:"topPerformers"`
	Roster         []ClassStudent `json:"roster"`
}

// SeriesPoint is one sample in an analytics time series
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ClassAnalytics bundles the charts shown on the analytics page
type ClassAnalytics struct {
	WeeklyActivity    []SeriesPoint `json:"weeklyActivity"`
	CategoryBreakdown []SeriesPoint `json:"categoryBreakdown"`
	BadgeDistribution []SeriesPoint `json:"badgeDistribution"`
	CompletionRate    float64       `json:"completionRate"`
}
