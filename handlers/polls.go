package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/pollcode"
	"github.com/pollbox/pollbox/store"
)

type PollHandler struct {
	store *store.Store
}

func NewPollHandler(st *store.Store) *PollHandler {
	return &PollHandler{store: st}
}

// ListPolls handles GET /polls
// Returns the list-screen summaries in creation order.
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls := h.store.List()

	summaries := make([]models.PollSummary, len(polls))
	for i, p := range polls {
		summaries[i] = models.PollSummary{
			ID:          p.ID,
			Question:    p.Question,
			Type:        p.Type,
			Code:        pollcode.Format(p.Code),
			OptionCount: len(p.Options),
			TotalVotes:  models.TotalVotes(p),
			HasVoted:    h.store.HasVoted(p.ID),
			CreatedAgo:  humanize.Time(p.CreatedAt),
		}
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := models.NewPoll(req.Question, req.Type, req.Options, req.Scale)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.store.Add(poll); err != nil {
		slog.Error("failed to store poll", "error", err, "poll_id", poll.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "type", poll.Type, "code", poll.Code)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		Poll:      poll,
		ShareCode: pollcode.Format(poll.Code),
	})
}

// GetPoll handles GET /polls/{id}
// Returns the voting-screen payload: the poll plus the user's own choice.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	poll, err := h.store.Get(pollID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	detail := models.PollDetail{Poll: poll}
	if optionID, ok := h.store.UserVote(pollID); ok {
		detail.HasVoted = true
		detail.UserVote = &optionID
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	if err := h.store.Delete(pollID); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)
	w.WriteHeader(http.StatusNoContent)
}
