package models

// Badge ids awarded by the progression rules. Keep these stable because
// clients persist them in the earned-badge log.
const (
	BadgeTreeHugger    = "tree-hugger"
	BadgeWasteWarrior  = "waste-warrior"
	BadgeEcoRookie     = "eco-rookie"
	BadgeGreenChampion = "green-champion"
)

// Badge is a named achievement definition from the catalog
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Criteria    string `json:"criteria"`
	Tier        string `json:"tier"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Rarity      string `json:"rarity"`
}
