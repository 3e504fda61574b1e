package models

// Leaderboard scopes
const (
	ScopeSchool   = "school"
	ScopeState    = "state"
	ScopeNational = "national"
)

// LeaderboardEntry is one row on a leaderboard. Peer rows are synthesized
// around the live student on every request, so points and trends drift
// between renders on purpose.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	School string `json:"school"`
	State  string `json:"state"`
	Points int    `json:"points"`
	Trend  string `json:"trend"` // "up", "down" or "same"
	IsSelf bool   `json:"isSelf"`
	Avatar string `json:"avatar,omitempty"`
}

// Leaderboard is the API response for a scoped board
type Leaderboard struct {
	Scope   string             `json:"scope"`
	Entries []LeaderboardEntry `json:"entries"`
}
