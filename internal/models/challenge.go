package models

// Challenge categories recognized by the badge rules
const (
	CategoryConservation = "conservation"
	CategoryWaste        = "waste"
	CategoryWater        = "water"
	CategoryEnergy       = "energy"
	CategoryBiodiversity = "biodiversity"
	CategoryClimate      = "climate"
)

// Challenge is a real-world task definition with a fixed point reward
type Challenge struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Points        int      `json:"points"`
	EstimatedTime string   `json:"estimatedTime"`
	Requirements  []string `json:"requirements"`
	State         string   `json:"state,omitempty"`
	Season        string   `json:"season,omitempty"`
	ImageURL      string   `json:"imageUrl"`
	Instructions  []string `json:"instructions"`
}
