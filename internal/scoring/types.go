package scoring

// #region imports
import "github.com/kibbyd/tensegrity/internal/balance"

// #endregion imports

// #region band

// Band is the qualitative classification of a single balance value.
type Band string

const (
	BandLow      Band = "low"
	BandBalanced Band = "balanced"
	BandHigh     Band = "high"
)

// #endregion band

// #region tier

// Tier is the qualitative classification of the aggregate integrity score.
type Tier string

const (
	TierExcellent   Tier = "excellent"
	TierGood        Tier = "good"
	TierModerate    Tier = "moderate"
	TierSignificant Tier = "significant"
	TierCritical    Tier = "critical"
)

// TierDetail pairs a tier with its display text.
type TierDetail struct {
	Tier    Tier   `json:"tier"`
	Label   string `json:"label"`
	Summary string `json:"summary"`
}

// #endregion tier

// #region effect

// Effect is the per-point band classification with its descriptive text.
// Bands are independent per field; there is no cross-field interaction.
type Effect struct {
	Point balance.Point `json:"point"`
	Label string        `json:"label"`
	Band  Band          `json:"band"`
	Text  string        `json:"text"`
}

// #endregion effect

// #region report

// Report bundles everything the scoring engine derives from one state.
type Report struct {
	Score   float64  `json:"score"`
	Tier    Tier     `json:"tier"`
	Label   string   `json:"label"`
	Summary string   `json:"summary"`
	Effects []Effect `json:"effects"`
}

// #endregion report
