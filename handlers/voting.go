package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/store"
)

type VotingHandler struct {
	store *store.Store
}

func NewVotingHandler(st *store.Store) *VotingHandler {
	return &VotingHandler{store: st}
}

// SubmitVote handles POST /polls/{id}/vote
// Records the local user's one vote on the chosen option. Re-voting,
// vote changing, and retraction are unsupported.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.Vote(pollID, req.OptionID); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "option_id", req.OptionID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		PollID:   pollID,
		OptionID: req.OptionID,
		Message:  "Vote recorded",
	})
}
