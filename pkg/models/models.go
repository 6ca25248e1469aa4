package models

// Match is one league fixture as listed on a league page.
// Round is only meaningful when HasRound is true; the source sometimes
// omits the round for rescheduled fixtures.
type Match struct {
	ID       int    `json:"id"`
	Round    int    `json:"round"`
	HasRound bool   `json:"has_round"`
	Date     string `json:"date"`
}

// Shot outcome vocabulary. Unmapped non-empty source labels pass through
// verbatim, so Outcome values outside this set can appear in a table.
const (
	OutcomeGoal      = "goal"
	OutcomeSaved     = "saved"
	OutcomeBlocked   = "blocked"
	OutcomeOffTarget = "off_target"
	OutcomeUnknown   = "unknown"
)

// Shot is one attempt on goal, the atomic record of the pipeline.
// X and Y are pitch meters (0-105, 0-68) attacking left to right.
// A Shot is never mutated after normalization.
type Shot struct {
	MatchID    int     `json:"match_id"`
	Date       string  `json:"date"`
	Player     string  `json:"player"`
	Team       string  `json:"team"`
	Minute     int     `json:"minute"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	XG         float64 `json:"xg"`
	Outcome    string  `json:"outcome"`
	IsPenalty  bool    `json:"is_penalty"`
	PlayerID   int     `json:"player_id"`
	HasPlayer  bool    `json:"has_player_id"`
	HA         string  `json:"h_a"`
	Situation  string  `json:"situation"`
	ShotType   string  `json:"shotType"`
	AssistedBy string  `json:"assisted_by"`
	LastAction string  `json:"lastAction"`
}

// Columns is the canonical persisted column order for a shot table.
var Columns = []string{
	"match_id", "date", "player", "team", "minute",
	"x", "y", "xg", "outcome", "is_penalty",
	"player_id", "h_a", "situation", "shotType", "assisted_by", "lastAction",
}

// RunOptions configures a fetch run.
type RunOptions struct {
	League      string
	Season      int
	FromRound   int // 0 = no lower bound
	ToRound     int // 0 = no upper bound
	LimitRecent int // keep only the most recent N matches after sorting
	Progress    bool
}
