package models

import "time"

// Student is the progression aggregate for the active learner. One record
// exists per deployment, mirroring the single browser profile it replaces.
type Student struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Grade               string        `json:"grade"`
	School              string        `json:"school"`
	State               string        `json:"state"`
	EcoPoints           int           `json:"ecoPoints"`
	Level               int           `json:"level"`
	Streak              int           `json:"streak"`
	CompletedLessons    []string      `json:"completedLessons"`
	CompletedChallenges []string      `json:"completedChallenges"`
	EarnedBadges        []EarnedBadge `json:"earnedBadges"`
	TotalImpactScore    float64       `json:"totalImpactScore"`
	WeeklyGoal          int           `json:"weeklyGoal"`
	MonthlyGoal         int           `json:"monthlyGoal"`
	Avatar              string        `json:"avatar"`
	JoinDate            string        `json:"joinDate"`
}

// EarnedBadge is one entry in the append-only badge log
type EarnedBadge struct {
	BadgeID    string `json:"badgeId"`
	DateEarned string `json:"dateEarned"`
}

// HasBadge reports whether the badge already appears in the earned log
func (s *Student) HasBadge(badgeID string) bool {
	for _, b := range s.EarnedBadges {
		if b.BadgeID == badgeID {
			return true
		}
	}
	return false
}

// HasCompletedLesson reports whether the lesson appears in the completed list
func (s *Student) HasCompletedLesson(lessonID string) bool {
	for _, id := range s.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// HasCompletedChallenge reports whether the challenge appears in the completed list
func (s *Student) HasCompletedChallenge(challengeID string) bool {
	for _, id := range s.CompletedChallenges {
		if id == challengeID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hold a snapshot while the
// store keeps mutating its own record.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	clone := *s
	clone.CompletedLessons = append([]string(nil), s.CompletedLessons...)
	clone.CompletedChallenges = append([]string(nil), s.CompletedChallenges...)
	clone.EarnedBadges = append([]EarnedBadge(nil), s.EarnedBadges...)
	return &clone
}

// ProfileUpdate carries the merge-patch fields accepted by profile edits.
// Nil pointers mean "leave untouched"; no validation happens at this layer.
type ProfileUpdate struct {
	Name        *string `json:"name,omitempty"`
	Grade       *string `json:"grade,omitempty"`
	School      *string `json:"school,omitempty"`
	State       *string `json:"state,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
	WeeklyGoal  *int    `json:"weeklyGoal,omitempty"`
	MonthlyGoal *int    `json:"monthlyGoal,omitempty"`
}

// Session represents a logged-in browser session for the student profile
type Session struct {
	ID        string
	StudentID string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session has passed its expiry time
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
