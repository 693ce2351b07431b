package models

import "math"

// TotalVotes sums the vote counters across a poll's options.
func TotalVotes(p Poll) int {
	total := 0
	for _, o := range p.Options {
		total += o.Votes
	}
	return total
}

// Results computes per-option vote percentages for display. Every
// percentage is 0 when no votes have been cast. Percentages are rounded
// independently, so they may not sum to exactly 100.
func Results(p Poll) []OptionResult {
	total := TotalVotes(p)
	results := make([]OptionResult, len(p.Options))
	for i, o := range p.Options {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(o.Votes) / float64(total) * 100))
		}
		results[i] = OptionResult{
			ID:         o.ID,
			Text:       o.Text,
			Votes:      o.Votes,
			Percentage: pct,
		}
	}
	return results
}
