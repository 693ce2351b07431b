package models

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pollbox/pollbox/pollcode"
)

var idMu sync.Mutex
var lastID int64

// nextID returns a millisecond-timestamp id, bumped past the previous one
// when two polls land in the same millisecond.
func nextID(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()
	id := now.UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}

// NewPoll validates creation input and builds a poll with zeroed vote
// counts. It has no side effects beyond returning the record; inserting
// it into the store is a separate, explicit step for the caller.
func NewPoll(question, pollType string, options []string, scale *RatingScale) (Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Poll{}, NewValidationError("question required")
	}
	if utf8.RuneCountInString(question) > MaxQuestionLen {
		return Poll{}, NewValidationError(fmt.Sprintf("question exceeds %d characters", MaxQuestionLen))
	}

	var opts []Option
	var err error
	switch pollType {
	case TypeMultipleChoice:
		opts, err = buildChoiceOptions(options)
	case TypeYesNo:
		opts = []Option{{ID: 0, Text: "Yes"}, {ID: 1, Text: "No"}}
	case TypeRatingScale:
		opts, err = buildScaleOptions(scale)
	default:
		err = NewValidationError("unknown poll type: " + pollType)
	}
	if err != nil {
		return Poll{}, err
	}

	now := time.Now().UTC()
	p := Poll{
		ID:        nextID(now),
		Code:      pollcode.Generate(),
		Question:  question,
		Type:      pollType,
		Options:   opts,
		CreatedAt: now,
		IsActive:  true,
	}
	if pollType == TypeRatingScale {
		s := *scale
		p.RatingScale = &s
	}
	return p, nil
}

// buildChoiceOptions trims the supplied texts, drops blanks, and assigns
// dense ids in input order.
func buildChoiceOptions(texts []string) ([]Option, error) {
	opts := make([]Option, 0, len(texts))
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if utf8.RuneCountInString(t) > MaxOptionLen {
			return nil, NewValidationError(fmt.Sprintf("option exceeds %d characters", MaxOptionLen))
		}
		opts = append(opts, Option{ID: len(opts), Text: t})
	}
	if len(opts) < 2 {
		return nil, NewValidationError("insufficient options")
	}
	if len(opts) > MaxOptions {
		return nil, NewValidationError(fmt.Sprintf("at most %d options allowed", MaxOptions))
	}
	return opts, nil
}

// buildScaleOptions expands the scale into one option per integer in
// [min, max], with id = value - min.
func buildScaleOptions(scale *RatingScale) ([]Option, error) {
	if scale == nil {
		return nil, NewValidationError("rating scale required")
	}
	if scale.Min >= scale.Max {
		return nil, NewValidationError("invalid rating bounds")
	}
	opts := make([]Option, 0, scale.Max-scale.Min+1)
	for v := scale.Min; v <= scale.Max; v++ {
		opts = append(opts, Option{ID: v - scale.Min, Text: strconv.Itoa(v)})
	}
	return opts, nil
}
