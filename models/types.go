package models

import "time"

// Poll type constants
const (
	TypeMultipleChoice = "multiple"
	TypeYesNo          = "yesno"
	TypeRatingScale    = "rating"
)

// Input limits, matching the original creation form
const (
	MaxQuestionLen = 200
	MaxOptionLen   = 100
	MaxOptions     = 10
)

// Request types

type CreatePollRequest struct {
	Question string       `json:"question"`
	Type     string       `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Scale    *RatingScale `json:"scale,omitempty"`
}

type VoteRequest struct {
	OptionID int `json:"option_id"`
}

type JoinRequest struct {
	Code string `json:"code"`
}

// Response types

type CreatePollResponse struct {
	Poll      Poll   `json:"poll"`
	ShareCode string `json:"share_code"`
}

// PollSummary backs one card on the list screen.
type PollSummary struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Type        string `json:"type"`
	Code        string `json:"code"`
	OptionCount int    `json:"option_count"`
	TotalVotes  int    `json:"total_votes"`
	HasVoted    bool   `json:"has_voted"`
	CreatedAgo  string `json:"created_ago"`
}

// PollDetail backs the voting screen: the poll plus the local user's
// recorded choice, if any.
type PollDetail struct {
	Poll     Poll `json:"poll"`
	HasVoted bool `json:"has_voted"`
	UserVote *int `json:"user_vote,omitempty"`
}

type VoteResponse struct {
	PollID   string `json:"poll_id"`
	OptionID int    `json:"option_id"`
	Message  string `json:"message"`
}

type OptionResult struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

type ResultsResponse struct {
	PollID     string         `json:"poll_id"`
	Question   string         `json:"question"`
	Type       string         `json:"type"`
	Code       string         `json:"code"`
	TotalVotes int            `json:"total_votes"`
	Options    []OptionResult `json:"options"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types
// JSON tags mirror the original browser-storage layout so previously
// exported state loads as-is.

type Poll struct {
	ID          string       `json:"id"`
	Code        string       `json:"code"`
	Question    string       `json:"question"`
	Type        string       `json:"type"`
	Options     []Option     `json:"options"`
	RatingScale *RatingScale `json:"ratingScale,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	IsActive    bool         `json:"isActive"`
}

type Option struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type RatingScale struct {
	Min    int         `json:"min"`
	Max    int         `json:"max"`
	Labels ScaleLabels `json:"labels"`
}

type ScaleLabels struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// UserVotes maps poll id to the option id the local user chose. Presence
// of an entry is the sole "has voted" signal.
type UserVotes map[string]int
