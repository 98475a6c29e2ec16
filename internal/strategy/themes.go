package strategy

import "strings"

// themeKeywords maps each failure-mode theme to the phrases that signal it.
// Order matters: the first theme with any hit wins.
var themeKeywords = []struct {
	theme string
	words []string
}{
	{ThemeDamageControl, []string{"negative", "accuracy", "mistake", "guess", "careless"}},
	{ThemeSelectionBias, []string{"order", "reorder", "selection", "skip", "attempt", "confidence-bucket"}},
	{ThemeEndGame, []string{"time", "minutes", "timer", "section-end", "last", "end-game", "deadline"}},
}

// classifyLeverTheme assigns exactly one theme to a lever by keyword
// matching over its concatenated text fields.
func classifyLeverTheme(lv Lever) string {
	parts := []string{lv.Title, lv.Why, lv.Metric, lv.NextMockRule}
	parts = append(parts, lv.Do...)
	parts = append(parts, lv.Stop...)
	blob := strings.ToLower(strings.Join(parts, " "))

	for _, tk := range themeKeywords {
		for _, w := range tk.words {
			if strings.Contains(blob, w) {
				return tk.theme
			}
		}
	}
	return ThemeUnknown
}
