package diagnosis

import "github.com/alexanderramin/compass/internal/domain"

// DefaultAnswerScore is used for every unanswered or unrecognised question,
// so an incomplete questionnaire reads as "developing".
const DefaultAnswerScore = 2

// ScoreMaturity returns the unweighted mean of the per-question option scores.
// answers maps question id to option id. It never fails.
func ScoreMaturity(questions []domain.CapabilityQuestion, answers map[string]string) float64 {
	if len(questions) == 0 {
		return DefaultAnswerScore
	}
	total := 0
	for _, q := range questions {
		total += answerScore(q, answers[q.ID])
	}
	return float64(total) / float64(len(questions))
}

func answerScore(q domain.CapabilityQuestion, optionID string) int {
	if optionID == "" {
		return DefaultAnswerScore
	}
	if score, ok := q.OptionScore(optionID); ok {
		return score
	}
	return DefaultAnswerScore
}
