package handlers

import (
	"net/http"

	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/pollcode"
	"github.com/pollbox/pollbox/store"
)

type ResultsHandler struct {
	store *store.Store
}

func NewResultsHandler(st *store.Store) *ResultsHandler {
	return &ResultsHandler{store: st}
}

// GetResults handles GET /polls/{id}/results
// Returns total votes and per-option percentages for the charts.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
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

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		PollID:     poll.ID,
		Question:   poll.Question,
		Type:       poll.Type,
		Code:       pollcode.Format(poll.Code),
		TotalVotes: models.TotalVotes(poll),
		Options:    models.Results(poll),
		CreatedAt:  poll.CreatedAt,
	})
}
