package service

import (
	"math/rand"
	"sort"
	"sync"

	"ecolearn/internal/models"
	"ecolearn/internal/progression"
)

// peerProfile is a synthetic leaderboard competitor. Real multi-student
// rankings would come from a shared backend; until then the board mixes
// the live student into a fixed peer roster with small random movement
// so the standings feel alive between visits.
type peerProfile struct {
	Name      string
	EcoPoints int
	School    string
	State     string
}

var leaderboardPeers = []peerProfile{
	{Name: "Arjun Sharma", EcoPoints: 2450, School: "Green Valley School", State: "Maharashtra"},
	{Name: "Priya Patel", EcoPoints: 2380, School: "Eco International", State: "Gujarat"},
	{Name: "Rahul Kumar", EcoPoints: 2320, School: "Nature Academy", State: "Karnataka"},
	{Name: "Sneha Reddy", EcoPoints: 2180, School: "Earth School", State: "Telangana"},
	{Name: "Vikram Singh", EcoPoints: 2050, School: "Green Future School", State: "Rajasthan"},
}

var leaderboardTrends = []string{"up", "down", "same"}

// LeaderboardService builds ranked standings around the live student.
type LeaderboardService struct {
	store *progression.Store

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLeaderboardService creates a leaderboard service using the given
// random source for the per-request score jitter.
func NewLeaderboardService(store *progression.Store, rng *rand.Rand) *LeaderboardService {
	return &LeaderboardService{store: store, rng: rng}
}

// Standings returns the board for the requested scope. Every scope uses
// the same roster; the scope is echoed back so clients can label the view.
func (s *LeaderboardService) Standings(scope string) *models.Leaderboard {
	switch scope {
	case models.ScopeSchool, models.ScopeState, models.ScopeNational:
	default:
		scope = models.ScopeSchool
	}

	student := s.store.Student()

	entries := make([]models.LeaderboardEntry, 0, len(leaderboardPeers)+1)

	s.mu.Lock()
	for _, peer := range leaderboardPeers {
		if peer.Name == student.Name {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			Name:   peer.Name,
			Points: peer.EcoPoints + s.rng.Intn(100),
			School: peer.School,
			State:  peer.State,
			Trend:  leaderboardTrends[s.rng.Intn(len(leaderboardTrends))],
		})
	}
	s.mu.Unlock()

	entries = append(entries, models.LeaderboardEntry{
		Name:   student.Name,
		Points: student.EcoPoints,
		School: "Green Valley School",
		State:  "Maharashtra",
		Trend:  "up",
		IsSelf: true,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return &models.Leaderboard{Scope: scope, Entries: entries}
}
