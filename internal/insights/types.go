package insights

// AttemptRecord is one historical mock attempt as submitted by the caller.
// The input list is assumed newest-first. CreatedAt may be an ISO-8601-like
// string or null; Report is the raw analyzer payload and may be nil, a
// mapping, or garbage. Both are read-only to this package.
type AttemptRecord struct {
	CreatedAt any `json:"createdAt"`
	Report    any `json:"report"`
}

// Error kinds recognized in a report's error_types mapping.
const (
	ErrorConceptual    = "conceptual"
	ErrorCareless      = "careless"
	ErrorTime          = "time"
	ErrorComprehension = "comprehension"
)

type Persona struct {
	Label      string   `json:"label"`
	Confidence string   `json:"confidence"`
	Evidence   []string `json:"evidence"`
}

type StuckLoop struct {
	Active        bool     `json:"active"`
	Topic         string   `json:"topic,omitempty"`
	RepeatsInLast int      `json:"repeats_in_last,omitempty"`
	AvgSeverity   *float64 `json:"avg_severity,omitempty"`
	Evidence      []string `json:"evidence,omitempty"`
}

type LearningBehavior struct {
	Cadence        string    `json:"cadence"`
	StreakDays     int       `json:"streak_days"`
	WeeklyActivity float64   `json:"weekly_activity"`
	Responsiveness string    `json:"responsiveness"`
	DeltaXP        float64   `json:"delta_xp"`
	StuckLoop      StuckLoop `json:"stuck_loop"`
	ExecutionStyle string    `json:"execution_style"`
	Confidence     string    `json:"confidence"`
	Evidence       []string  `json:"evidence"`
}

// CurvePoint is one chronological entry of the learning curve: the clamped
// focus score of a usable attempt plus its timestamp when one parsed.
type CurvePoint struct {
	Index int     `json:"index"`
	XP    float64 `json:"xp"`
	Date  *string `json:"date"`
}

type Result struct {
	Trend            string           `json:"trend"`
	DominantError    string           `json:"dominant_error"`
	Consistency      string           `json:"consistency"`
	Volatility       int              `json:"volatility"`
	RiskZone         string           `json:"risk_zone"`
	Personas         []Persona        `json:"personas"`
	LearningCurve    []CurvePoint     `json:"learning_curve"`
	LearningBehavior LearningBehavior `json:"learning_behavior"`
}
