// Package progression owns the student's progression state: eco points,
// completed lessons and challenges, earned badges and purchased shop items.
// All mutation goes through the Store; each operation is an atomic
// read-modify-persist step, so in-memory and persisted state never diverge
// once an operation returns.
package progression

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"ecolearn/internal/catalog"
	"ecolearn/internal/models"
)

// LessonCompletionPoints is the fixed reward for finishing a lesson.
// Lessons ignore their catalog point value; challenges use theirs.
const LessonCompletionPoints = 25

// impactPerPoint converts earned points into impact score
const impactPerPoint = 0.1

// Store is the single source of truth for the active student's record and
// owned-items set. A mutex serializes concurrent HTTP callers; mutations
// are applied to a clone and swapped in only after a successful persist.
type Store struct {
	mu       sync.Mutex
	student  *models.Student
	owned    []string
	state    StateStore
	catalog  *catalog.Catalog
	notifier Notifier
}

// NewStore loads persisted state if present, else seeds the default
// student. Absence of persisted data is not an error.
func NewStore(state StateStore, cat *catalog.Catalog, notifier Notifier) (*Store, error) {
	s := &Store{
		state:    state,
		catalog:  cat,
		notifier: notifier,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultStudent returns the seed record used when no state is persisted yet
func DefaultStudent() *models.Student {
	return &models.Student{
		ID:                  "student-1",
		Name:                "Arjun Sharma",
		Grade:               "9th",
		School:              "Green Valley School",
		State:               "Maharashtra",
		EcoPoints:           1250,
		Level:               7,
		Streak:              12,
		CompletedLessons:    []string{"lesson-1", "lesson-2", "lesson-3"},
		CompletedChallenges: []string{"challenge-1", "challenge-2", "challenge-5"},
		EarnedBadges: []models.EarnedBadge{
			{BadgeID: models.BadgeEcoRookie, DateEarned: "2024-01-15T10:00:00Z"},
			{BadgeID: models.BadgeTreeHugger, DateEarned: "2024-01-20T14:30:00Z"},
			{BadgeID: models.BadgeWasteWarrior, DateEarned: "2024-01-25T09:15:00Z"},
		},
		TotalImpactScore: 125.5,
		WeeklyGoal:       200,
		MonthlyGoal:      800,
		Avatar:           "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		JoinDate:         "2024-01-01T00:00:00Z",
	}
}

func (s *Store) load() error {
	raw, ok, err := s.state.Get(StudentStateKey)
	if err != nil {
		return fmt.Errorf("failed to load student state: %w", err)
	}
	if ok {
		var student models.Student
		if err := json.Unmarshal([]byte(raw), &student); err != nil {
			return fmt.Errorf("failed to decode student state: %w", err)
		}
		s.student = &student
	} else {
		s.student = DefaultStudent()
	}

	raw, ok, err = s.state.Get(OwnedItemsStateKey)
	if err != nil {
		return fmt.Errorf("failed to load owned items: %w", err)
	}
	if ok {
		var owned []string
		if err := json.Unmarshal([]byte(raw), &owned); err != nil {
			return fmt.Errorf("failed to decode owned items: %w", err)
		}
		s.owned = owned
	}

	return nil
}

// Student returns a snapshot of the current record
func (s *Store) Student() *models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.student.Clone()
}

// OwnedItems returns a snapshot of the purchased shop item ids
func (s *Store) OwnedItems() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.owned...)
}

// OwnsItem reports whether the item has been purchased
func (s *Store) OwnsItem(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return containsString(s.owned, itemID)
}

// UpdateProfile merges the supplied fields into the record. Fields left nil
// are untouched; values are accepted as-is, validation belongs to the form
// layer in front of this.
func (s *Store) UpdateProfile(update models.ProfileUpdate) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.student.Clone()
	if update.Name != nil {
		next.Name = *update.Name
	}
	if update.Grade != nil {
		next.Grade = *update.Grade
	}
	if update.School != nil {
		next.School = *update.School
	}
	if update.State != nil {
		next.State = *update.State
	}
	if update.Avatar != nil {
		next.Avatar = *update.Avatar
	}
	if update.WeeklyGoal != nil {
		next.WeeklyGoal = *update.WeeklyGoal
	}
	if update.MonthlyGoal != nil {
		next.MonthlyGoal = *update.MonthlyGoal
	}

	if err := s.persistStudent(next); err != nil {
		return nil, err
	}
	s.student = next
	return next.Clone(), nil
}

// AddPoints adds amount to the eco point balance and amount*0.1 to the
// impact score. The amount is not clamped: a negative amount is a
// deduction.
func (s *Store) AddPoints(amount int) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.student.Clone()
	addPoints(next, amount)

	if err := s.persistStudent(next); err != nil {
		return nil, err
	}
	s.student = next
	s.notify(EventAchievement)
	return next.Clone(), nil
}

// CompleteLesson records the lesson and awards the fixed lesson reward.
// Re-completion is not blocked: the id is appended again and the reward
// paid again, matching the established product behavior.
func (s *Store) CompleteLesson(lessonID string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.student.Clone()
	next.CompletedLessons = append(next.CompletedLessons, lessonID)
	addPoints(next, LessonCompletionPoints)

	if err := s.persistStudent(next); err != nil {
		return nil, err
	}
	s.student = next
	s.notify(EventAchievement)
	return next.Clone(), nil
}

// CompleteChallenge records the challenge, pays its catalog reward and runs
// the badge rules. An id missing from the catalog is a silent no-op: the
// current record is returned unchanged.
func (s *Store) CompleteChallenge(challengeID string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.catalog.ChallengeByID(challengeID)
	if !ok {
		return s.student.Clone(), nil
	}

	next := s.student.Clone()
	next.CompletedChallenges = append(next.CompletedChallenges, challengeID)
	addPoints(next, challenge.Points)

	// The badge rules see the record with this challenge already appended,
	// so the milestone check counts it exactly once.
	newBadges := EvaluateBadges(next, challenge)
	now := time.Now().UTC().Format(time.RFC3339)
	for _, badgeID := range newBadges {
		next.EarnedBadges = append(next.EarnedBadges, models.EarnedBadge{BadgeID: badgeID, DateEarned: now})
	}

	if err := s.persistStudent(next); err != nil {
		return nil, err
	}
	s.student = next
	s.notify(EventAchievement)
	for range newBadges {
		s.notify(EventBadge)
	}
	return next.Clone(), nil
}

// AwardBadge appends the badge to the earned log unconditionally. Callers
// are responsible for checking non-duplication first; the badge evaluator
// already does.
func (s *Store) AwardBadge(badgeID string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.student.Clone()
	next.EarnedBadges = append(next.EarnedBadges, models.EarnedBadge{
		BadgeID:    badgeID,
		DateEarned: time.Now().UTC().Format(time.RFC3339),
	})

	if err := s.persistStudent(next); err != nil {
		return nil, err
	}
	s.student = next
	s.notify(EventBadge)
	return next.Clone(), nil
}

// PurchaseItem deducts price and records ownership. It returns false with
// no state change when the balance is short or the item is already owned;
// this is the one operation whose failure is part of the caller contract.
func (s *Store) PurchaseItem(itemID string, price int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.student.EcoPoints < price || containsString(s.owned, itemID) {
		return false, nil
	}

	next := s.student.Clone()
	next.EcoPoints -= price
	nextOwned := append(append([]string(nil), s.owned...), itemID)

	// Ownership goes first: if the second write fails, the persisted
	// record must never show points deducted for an item not owned.
	if err := s.persistOwned(nextOwned); err != nil {
		return false, err
	}
	if err := s.persistStudent(next); err != nil {
		return false, err
	}
	s.student = next
	s.owned = nextOwned
	s.notify(EventPurchase)
	return true, nil
}

func addPoints(student *models.Student, amount int) {
	student.EcoPoints += amount
	student.TotalImpactScore += float64(amount) * impactPerPoint
}

func (s *Store) persistStudent(student *models.Student) error {
	data, err := json.Marshal(student)
	if err != nil {
		return fmt.Errorf("failed to encode student state: %w", err)
	}
	if err := s.state.Set(StudentStateKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist student state: %w", err)
	}
	return nil
}

func (s *Store) persistOwned(owned []string) error {
	data, err := json.Marshal(owned)
	if err != nil {
		return fmt.Errorf("failed to encode owned items: %w", err)
	}
	if err := s.state.Set(OwnedItemsStateKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist owned items: %w", err)
	}
	return nil
}

// notify hands the event to the notifier without letting a slow or broken
// implementation affect the mutation that triggered it.
func (s *Store) notify(eventKind string) {
	if s.notifier == nil {
		return
	}
	notifier := s.notifier
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("notifier panic for %s event: %v", eventKind, r)
			}
		}()
		notifier.Notify(eventKind)
	}()
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
