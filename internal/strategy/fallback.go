package strategy

// Canonical fallback content substituted when generated content is absent
// or unusable. All strings here must pass the generic-content guard.

// fallbackLevers is the fixed two-lever plan: damage control first, then
// protecting end-game time.
func fallbackLevers() []Lever {
	return []Lever{
		{
			Title: "Cut careless losses first",
			Do: []string{
				"Recheck only flagged answers, max 2 per section",
				"Mark every guess with a G while solving",
			},
			Stop:         []string{"Re-solving questions you already marked correct"},
			Why:          "Careless marks are the cheapest points to recover",
			Metric:       "Careless errors in the next mock",
			NextMockRule: "IF an answer feels rushed THEN flag it and move on",
		},
		{
			Title: "Protect the last ten minutes",
			Do: []string{
				"Stop opening new questions when 10 minutes remain",
				"Use the final minutes only for flagged reviews",
			},
			Stop:         []string{"Starting a fresh multi-step problem near the section close"},
			Why:          "Late-section panic converts small delays into unforced errors",
			Metric:       "Unforced errors in the final 10 minutes",
			NextMockRule: "IF 10 minutes remain THEN switch to review mode",
		},
	}
}

// fallbackPlanDays is the fixed three-day sequence used when fewer than
// three valid days survive coercion.
func fallbackPlanDays() []DayPlan {
	return []DayPlan{
		{
			Day:     1,
			Title:   "Damage-control drill",
			Minutes: DefaultDayMin,
			Tasks: []string{
				"20 questions with a hard 90-second cutoff each",
				"Log every miss as concept, careless, or time",
			},
		},
		{
			Day:     2,
			Title:   "Question-selection drill",
			Minutes: DefaultDayMin,
			Tasks: []string{
				"Two-pass run on a mixed set: easy first, then medium",
				"Note every question you should have left alone",
			},
		},
		{
			Day:     3,
			Title:   "End-game simulation",
			Minutes: DefaultDayMin,
			Tasks: []string{
				"Final 15 minutes of a sectional under full time pressure",
				"Review only flagged questions in the last 5 minutes",
			},
		},
	}
}

// fillerIfThenRules pads if_then_rules up to the minimum of three.
var fillerIfThenRules = []string{
	"IF stuck > 60s THEN skip and move on",
	"IF two answers in a row feel like guesses THEN slow down for one question",
	"IF a question needs 3+ unknown steps THEN bank it for the second pass",
}

// Single-item defaults for missing lever sub-fields.
var (
	defaultLeverTitle  = "Execution lever"
	defaultLeverDo     = []string{"Apply this rule in the next mock"}
	defaultLeverStop   = []string{"Abandoning the rule halfway through a section"}
	defaultLeverWhy    = "Addresses a recurring score leak seen in recent mocks"
	defaultLeverMetric = "Error count in the next mock"
	defaultLeverRule   = "Apply from the first section onward"
)

// Defaults for coerced plan-day entries.
var (
	defaultDayTitle = "Execution drill"
	defaultDayTasks = []string{
		"Timed drill with a strict per-question cutoff",
		"Error log: tag each miss as concept, careless, or time",
	}
)
