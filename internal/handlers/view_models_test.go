package handlers

import (
	"testing"

	"ecolearn/internal/models"
)

func TestStudentViewDerivations(t *testing.T) {
	tests := []struct {
		name              string
		ecoPoints         int
		weeklyGoal        int
		wantLevelProgress float64
		wantPointsToNext  int
		wantWeekly        float64
	}{
		{
			name:              "mid level",
			ecoPoints:         1250,
			weeklyGoal:        200,
			wantLevelProgress: 25,
			wantPointsToNext:  150,
			wantWeekly:        25,
		},
		{
			name:              "level boundary",
			ecoPoints:         400,
			weeklyGoal:        200,
			wantLevelProgress: 0,
			wantPointsToNext:  200,
			wantWeekly:        0,
		},
		{
			name:              "zero goal skips goal progress",
			ecoPoints:         130,
			weeklyGoal:        0,
			wantLevelProgress: 65,
			wantPointsToNext:  70,
			wantWeekly:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := &models.Student{EcoPoints: tt.ecoPoints, WeeklyGoal: tt.weeklyGoal}
			view := NewStudentView(student, nil)

			if view.LevelProgress != tt.wantLevelProgress {
				t.Errorf("LevelProgress = %v, want %v", view.LevelProgress, tt.wantLevelProgress)
			}
			if view.PointsToNextLevel != tt.wantPointsToNext {
				t.Errorf("PointsToNextLevel = %d, want %d", view.PointsToNextLevel, tt.wantPointsToNext)
			}
			if view.WeeklyProgress != tt.wantWeekly {
				t.Errorf("WeeklyProgress = %v, want %v", view.WeeklyProgress, tt.wantWeekly)
			}
		})
	}
}

func TestBadgeViewsOverlayFirstEarnedDate(t *testing.T) {
	badges := []models.Badge{
		{ID: "tree-hugger", Name: "Tree Hugger"},
		{ID: "waste-warrior", Name: "Waste Warrior"},
	}
	earned := []models.EarnedBadge{
		{BadgeID: "tree-hugger", DateEarned: "2024-01-20T14:30:00Z"},
		{BadgeID: "tree-hugger", DateEarned: "2024-02-01T09:00:00Z"},
	}

	views := NewBadgeViews(badges, earned)

	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}
	if !views[0].Earned || views[0].DateEarned != "2024-01-20T14:30:00Z" {
		t.Errorf("tree-hugger view = %+v, want earned with first date", views[0])
	}
	if views[1].Earned {
		t.Errorf("waste-warrior should not be earned")
	}
}

func TestChallengeViewsMarkCompleted(t *testing.T) {
	challenges := []models.Challenge{{ID: "challenge-1"}, {ID: "challenge-3"}}
	student := &models.Student{CompletedChallenges: []string{"challenge-1"}}

	views := NewChallengeViews(challenges, student)

	if !views[0].Completed {
		t.Error("challenge-1 should be completed")
	}
	if views[1].Completed {
		t.Error("challenge-3 should not be completed")
	}
}
