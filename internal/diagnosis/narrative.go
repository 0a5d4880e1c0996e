package diagnosis

import "github.com/alexanderramin/compass/internal/domain"

var suggestedApproaches = map[string]string{
	domain.UrgencyCrisis:      "Stabilize first: run a rapid diagnosis, protect cash and customers, and commit to a small number of high-impact interventions before revisiting long-term strategy.",
	domain.UrgencyUrgent:      "Move fast with structure: focus analysis on the few issues that matter most and build momentum with visible early wins while the broader plan takes shape.",
	domain.UrgencyImportant:   "Take a balanced approach: pair thorough analysis with phased implementation so that each step builds lasting capability.",
	domain.UrgencyExploratory: "Explore broadly: use scenario planning and advanced frameworks to surface new options and test long-term bets before committing resources.",
}

var estimatedTimeframes = map[string]string{
	domain.UrgencyCrisis:      "2-4 weeks for initial stabilization",
	domain.UrgencyUrgent:      "1-3 months for core initiatives",
	domain.UrgencyImportant:   "3-6 months for full implementation",
	domain.UrgencyExploratory: "6-12 months for strategic exploration",
}

// Narrative returns the fixed approach and timeframe text for an urgency id.
// ok is false when the id has no entry, which means the urgency taxonomy and
// the narrative tables have drifted apart.
func Narrative(urgencyID string) (approach, timeframe string, ok bool) {
	approach, okA := suggestedApproaches[urgencyID]
	timeframe, okT := estimatedTimeframes[urgencyID]
	return approach, timeframe, okA && okT
}
