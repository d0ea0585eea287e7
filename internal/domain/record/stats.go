package record

// Stats summarizes the whole session history.
type Stats struct {
	TotalQuestions int `json:"totalQuestions"`
	TotalCorrect   int `json:"totalCorrect"`
	AccuracyRate   int `json:"accuracyRate"` // rounded percentage, 0 with no questions
	SessionCount   int `json:"sessionCount"`
}

// Summarize derives Stats from records. It keeps no state; call it again
// whenever the history changes.
func Summarize(records []Record) Stats {
	stats := Stats{SessionCount: len(records)}
	for _, r := range records {
		stats.TotalQuestions += r.QuestionCount
		stats.TotalCorrect += r.Score
	}
	stats.AccuracyRate = percent(stats.TotalCorrect, stats.TotalQuestions)
	return stats
}
