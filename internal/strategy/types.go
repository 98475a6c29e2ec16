package strategy

// Plan is the strict, normalized strategy plan shape. It is constructed
// once per Normalize call and not mutated afterwards.
type Plan struct {
	Title         string     `json:"title"`
	Confidence    Confidence `json:"confidence"`
	TopLevers     []Lever    `json:"top_levers"`
	IfThenRules   []string   `json:"if_then_rules"`
	PlanDays      []DayPlan  `json:"plan_days"`
	NextQuestions []Question `json:"next_questions"`
}

type Confidence struct {
	Score          int      `json:"score"`
	Band           string   `json:"band"`
	MissingSignals []string `json:"missing_signals"`
	Assumptions    []string `json:"assumptions"`
}

// Lever is one actionable, measurable behavior-change instruction.
type Lever struct {
	Title        string   `json:"title"`
	Do           []string `json:"do"`
	Stop         []string `json:"stop"`
	Why          string   `json:"why"`
	Metric       string   `json:"metric"`
	NextMockRule string   `json:"next_mock_rule"`
}

type DayPlan struct {
	Day     int      `json:"day"`
	Title   string   `json:"title"`
	Minutes int      `json:"minutes"`
	Tasks   []string `json:"tasks"`
}

type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Unlocks  string   `json:"unlocks,omitempty"`
}

// Failure-mode themes used to deduplicate levers.
const (
	ThemeDamageControl = "damage_control"
	ThemeSelectionBias = "selection_bias"
	ThemeEndGame       = "end_game"
	ThemeUnknown       = "unknown"
)

// Shape bounds enforced by Normalize and checked by Validate.
const (
	MaxLevers     = 3
	MinIfThen     = 3
	MaxIfThen     = 10
	MinPlanDays   = 3
	MaxPlanDays   = 14
	MaxDayTasks   = 8
	MaxQuestions  = 2
	DefaultScore  = 50
	DefaultBand   = "medium"
	DefaultTitle  = "Next Mock Strategy Plan"
	DefaultDayMin = 60
)
