package strategy

import "strings"

// bannedPhrases are advice fragments with no execution mechanism. Any plan
// text containing one warrants a single regeneration round.
var bannedPhrases = []string{
	"practice more",
	"revise",
	"study more",
	"be confident",
	"focus more",
	"work harder",
	"improve concepts",
	"do more questions",
	"keep practicing",
}

func planTextFields(p Plan) []string {
	fields := []string{p.Title}
	for _, lv := range p.TopLevers {
		fields = append(fields, lv.Title, lv.Why, lv.Metric, lv.NextMockRule)
		fields = append(fields, lv.Do...)
		fields = append(fields, lv.Stop...)
	}
	fields = append(fields, p.IfThenRules...)
	for _, d := range p.PlanDays {
		fields = append(fields, d.Title)
		fields = append(fields, d.Tasks...)
	}
	for _, q := range p.NextQuestions {
		fields = append(fields, q.Question, q.Unlocks)
		fields = append(fields, q.Options...)
	}
	return fields
}

// ContainsGenericContent scans every text field of a normalized plan for
// banned phrases, case-insensitive. It returns the distinct phrases found.
func ContainsGenericContent(p Plan) (bool, []string) {
	hits := []string{}
	seen := map[string]bool{}
	for _, field := range planTextFields(p) {
		lower := strings.ToLower(field)
		for _, phrase := range bannedPhrases {
			if strings.Contains(lower, phrase) && !seen[phrase] {
				seen[phrase] = true
				hits = append(hits, phrase)
			}
		}
	}
	return len(hits) > 0, hits
}
