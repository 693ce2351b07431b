package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/pollcode"
)

// Persistence keys, matching the original browser-storage layout.
const (
	keyPolls = "polls"
	keyVotes = "userVotes"
)

// KV is the persistence substrate: named whole-value reads and writes.
// Both collections are serialized and overwritten in full on every
// mutation; there is no incremental write path.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// Store owns the ordered poll collection and the local user's vote map.
// All mutation goes through Add, Vote, and Delete so the in-memory view
// and the persistence layer never diverge.
type Store struct {
	mu    sync.Mutex
	kv    KV
	polls []models.Poll
	votes models.UserVotes
}

func New(kv KV) *Store {
	return &Store{kv: kv, votes: models.UserVotes{}}
}

// Load reads both collections from the persistence layer. Absent or
// unparseable data starts the store empty; that is default
// initialization, not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.polls = nil
	s.votes = models.UserVotes{}

	raw, ok, err := s.kv.Get(keyPolls)
	if err != nil {
		return fmt.Errorf("failed to read polls: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &s.polls); err != nil {
			slog.Warn("stored polls unparseable, starting empty", "error", err)
			s.polls = nil
		}
	}

	raw, ok, err = s.kv.Get(keyVotes)
	if err != nil {
		return fmt.Errorf("failed to read user votes: %w", err)
	}
	if ok {
		var votes models.UserVotes
		if err := json.Unmarshal(raw, &votes); err != nil {
			slog.Warn("stored user votes unparseable, starting empty", "error", err)
		} else if votes != nil {
			s.votes = votes
		}
	}

	return nil
}

// List returns the polls in creation order.
func (s *Store) List() []models.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePolls(s.polls)
}

// Get returns a poll by id.
func (s *Store) Get(pollID string) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.polls {
		if s.polls[i].ID == pollID {
			return clonePoll(s.polls[i]), nil
		}
	}
	return models.Poll{}, models.ErrPollNotFound
}

// Add appends a poll to the collection and persists it.
func (s *Store) Add(p models.Poll) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.polls = append(s.polls, clonePoll(p))
	if err := s.persistPolls(); err != nil {
		s.polls = s.polls[:len(s.polls)-1]
		return err
	}
	return nil
}

// Vote applies the local user's single vote to one option of a poll.
// The counter increment and the vote-map entry land together or not at
// all; a failed persistence write rolls both back.
func (s *Store) Vote(pollID string, optionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, voted := s.votes[pollID]; voted {
		return models.ErrAlreadyVoted
	}

	pi := -1
	for i := range s.polls {
		if s.polls[i].ID == pollID {
			pi = i
			break
		}
	}
	if pi < 0 {
		return models.ErrPollNotFound
	}

	oi := -1
	for i := range s.polls[pi].Options {
		if s.polls[pi].Options[i].ID == optionID {
			oi = i
			break
		}
	}
	if oi < 0 {
		return models.ErrOptionNotFound
	}

	s.polls[pi].Options[oi].Votes++
	s.votes[pollID] = optionID

	if err := s.persist(); err != nil {
		s.polls[pi].Options[oi].Votes--
		delete(s.votes, pollID)
		return err
	}
	return nil
}

// Delete removes a poll from the collection and purges the user's vote
// entry for it.
func (s *Store) Delete(pollID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi := -1
	for i := range s.polls {
		if s.polls[i].ID == pollID {
			pi = i
			break
		}
	}
	if pi < 0 {
		return models.ErrPollNotFound
	}

	removed := s.polls[pi]
	vote, hadVote := s.votes[pollID]

	s.polls = append(s.polls[:pi], s.polls[pi+1:]...)
	delete(s.votes, pollID)

	if err := s.persist(); err != nil {
		s.polls = append(s.polls[:pi], append([]models.Poll{removed}, s.polls[pi:]...)...)
		if hadVote {
			s.votes[pollID] = vote
		}
		return err
	}
	return nil
}

// JoinByCode resolves raw user-entered input to an active poll. Input is
// normalized first, so "ab-C123" matches a poll coded "ABC123". When
// distinct polls share a code the first match in collection order wins.
func (s *Store) JoinByCode(raw string) (models.Poll, error) {
	code, err := pollcode.Normalize(raw)
	if err != nil {
		return models.Poll{}, models.NewValidationError("malformed code")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.polls {
		if s.polls[i].Code == code {
			if !s.polls[i].IsActive {
				return models.Poll{}, models.ErrPollInactive
			}
			return clonePoll(s.polls[i]), nil
		}
	}
	return models.Poll{}, models.ErrPollNotFound
}

// HasVoted reports whether the local user has voted on the poll.
func (s *Store) HasVoted(pollID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.votes[pollID]
	return ok
}

// UserVote returns the option id the local user chose on the poll.
func (s *Store) UserVote(pollID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.votes[pollID]
	return id, ok
}

// persist writes both collections; callers hold the lock. Votes go
// first: if the second write fails, the stored snapshot may hold a
// vote record without its counter increment, but never an incremented
// counter the user could repeat after a reload.
func (s *Store) persist() error {
	if err := s.persistVotes(); err != nil {
		return err
	}
	return s.persistPolls()
}

func (s *Store) persistPolls() error {
	raw, err := json.Marshal(s.pollsOrEmpty())
	if err != nil {
		return fmt.Errorf("failed to serialize polls: %w", err)
	}
	if err := s.kv.Set(keyPolls, raw); err != nil {
		return fmt.Errorf("failed to persist polls: %w", err)
	}
	return nil
}

func (s *Store) persistVotes() error {
	raw, err := json.Marshal(s.votes)
	if err != nil {
		return fmt.Errorf("failed to serialize user votes: %w", err)
	}
	if err := s.kv.Set(keyVotes, raw); err != nil {
		return fmt.Errorf("failed to persist user votes: %w", err)
	}
	return nil
}

// pollsOrEmpty keeps the stored snapshot a JSON array even when the
// collection is empty.
func (s *Store) pollsOrEmpty() []models.Poll {
	if s.polls == nil {
		return []models.Poll{}
	}
	return s.polls
}

func clonePoll(p models.Poll) models.Poll {
	c := p
	c.Options = make([]models.Option, len(p.Options))
	copy(c.Options, p.Options)
	if p.RatingScale != nil {
		scale := *p.RatingScale
		c.RatingScale = &scale
	}
	return c
}

func clonePolls(polls []models.Poll) []models.Poll {
	out := make([]models.Poll, len(polls))
	for i := range polls {
		out[i] = clonePoll(polls[i])
	}
	return out
}
