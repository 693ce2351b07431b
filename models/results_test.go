package models

import "testing"

func pollWithVotes(votes ...int) Poll {
	opts := make([]Option, len(votes))
	for i, v := range votes {
		opts[i] = Option{ID: i, Text: "opt", Votes: v}
	}
	return Poll{ID: "p1", Question: "Q?", Type: TypeMultipleChoice, Options: opts, IsActive: true}
}

func TestTotalVotes(t *testing.T) {
	if got := TotalVotes(pollWithVotes(3, 2, 5)); got != 10 {
		t.Errorf("TotalVotes = %d, expected 10", got)
	}
	if got := TotalVotes(pollWithVotes(0, 0)); got != 0 {
		t.Errorf("TotalVotes = %d, expected 0", got)
	}
}

func TestResultsZeroTotal(t *testing.T) {
	results := Results(pollWithVotes(0, 0, 0))
	for _, r := range results {
		if r.Percentage != 0 {
			t.Errorf("Option %d percentage = %d, expected 0 with no votes", r.ID, r.Percentage)
		}
	}
}

func TestResultsPercentages(t *testing.T) {
	tests := []struct {
		name     string
		votes    []int
		expected []int
	}{
		{"all one option", []int{0, 4}, []int{0, 100}},
		{"even split", []int{2, 2}, []int{50, 50}},
		{"thirds round half up", []int{1, 1, 1}, []int{33, 33, 33}},
		{"half rounds up", []int{1, 7}, []int{13, 88}}, // 12.5 → 13, 87.5 → 88
		{"sixths", []int{1, 5}, []int{17, 83}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Results(pollWithVotes(tt.votes...))
			for i, r := range results {
				if r.Percentage != tt.expected[i] {
					t.Errorf("Option %d percentage = %d, expected %d", i, r.Percentage, tt.expected[i])
				}
			}
		})
	}
}

func TestResultsPercentageBounds(t *testing.T) {
	// Independent rounding keeps each value in [0,100] and the sum
	// within options-1 of 100.
	cases := [][]int{
		{1, 1, 1},
		{1, 2, 4},
		{7, 11, 13, 17},
		{1, 0, 0, 0, 99},
	}

	for _, votes := range cases {
		p := pollWithVotes(votes...)
		results := Results(p)
		sum := 0
		for _, r := range results {
			if r.Percentage < 0 || r.Percentage > 100 {
				t.Errorf("Percentage %d out of [0,100] for votes %v", r.Percentage, votes)
			}
			sum += r.Percentage
		}
		slack := len(votes) - 1
		if sum < 100-slack || sum > 100+slack {
			t.Errorf("Percentages for %v sum to %d, expected 100±%d", votes, sum, slack)
		}
	}
}

func TestResultsDoesNotMutate(t *testing.T) {
	p := pollWithVotes(1, 2)
	_ = Results(p)
	_ = Results(p)
	if p.Options[0].Votes != 1 || p.Options[1].Votes != 2 {
		t.Error("Results must not mutate the poll")
	}
}
