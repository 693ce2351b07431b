package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/store"
)

type JoinHandler struct {
	store *store.Store
}

func NewJoinHandler(st *store.Store) *JoinHandler {
	return &JoinHandler{store: st}
}

// Join handles POST /join
// Resolves a user-entered code to an active poll and returns the voting
// payload. Joining does not mark the poll as voted.
func (h *JoinHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req models.JoinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.store.JoinByCode(req.Code)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("poll joined by code", "poll_id", poll.ID, "code", poll.Code)

	detail := models.PollDetail{Poll: poll}
	if optionID, ok := h.store.UserVote(poll.ID); ok {
		detail.HasVoted = true
		detail.UserVote = &optionID
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}
