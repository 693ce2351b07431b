/*
Package models defines the poll data model, request/response types, and the
pure domain operations over them.

# Domain Types

  - Poll: a question with a fixed set of answer options, a 6-character
    share code, and running vote tallies
  - Option: one selectable answer; ids are dense integers from 0
  - RatingScale: integer bounds and end labels for rating polls
  - UserVotes: poll id → chosen option id for the local user

Polls are immutable after creation except for vote counters. JSON tags
follow the original browser-storage field names.

# Poll Factory

NewPoll validates input and builds the option list per poll type:

  - TypeMultipleChoice: one option per trimmed non-blank text, in order
  - TypeYesNo: fixed "Yes"/"No" pair
  - TypeRatingScale: one option per integer in [min, max]

Invalid input returns a *ValidationError.

# Results

TotalVotes and Results are pure computations; Results rounds each
percentage half-up independently.

# Errors

Sentinel errors (ErrPollNotFound, ErrOptionNotFound, ErrAlreadyVoted,
ErrPollInactive) plus the ValidationError type cover every failure the
user can recover from.
*/
package models
