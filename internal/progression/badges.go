package progression

import "ecolearn/internal/models"

// Milestone counts for the exact-count badges. These are deliberately
// equality checks, not thresholds: a count skipped past (e.g. by a bulk
// import) misses the badge, matching the product rules.
const (
	ecoRookieMilestone     = 5
	greenChampionMilestone = 15
)

// EvaluateBadges decides which new badges a challenge completion unlocks.
// It is a pure function: student must already include the just-completed
// challenge in CompletedChallenges, and the returned ids are guaranteed not
// to be in student.EarnedBadges. It never returns the same id twice.
func EvaluateBadges(student *models.Student, completed models.Challenge) []string {
	var award []string

	if completed.Category == models.CategoryConservation && !student.HasBadge(models.BadgeTreeHugger) {
		award = append(award, models.BadgeTreeHugger)
	}
	if completed.Category == models.CategoryWaste && !student.HasBadge(models.BadgeWasteWarrior) {
		award = append(award, models.BadgeWasteWarrior)
	}

	totalCompleted := len(student.CompletedChallenges)
	if totalCompleted == ecoRookieMilestone && !student.HasBadge(models.BadgeEcoRookie) {
		award = append(award, models.BadgeEcoRookie)
	}
	if totalCompleted == greenChampionMilestone && !student.HasBadge(models.BadgeGreenChampion) {
		award = append(award, models.BadgeGreenChampion)
	}

	return award
}
