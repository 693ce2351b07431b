package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/models"
)

// writeDomainError maps core errors onto HTTP statuses. Anything
// unrecognized is logged and reported as a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Reason)
	case errors.Is(err, models.ErrPollNotFound), errors.Is(err, models.ErrOptionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrPollInactive):
		middleware.ErrorResponse(w, http.StatusGone, err.Error())
	default:
		slog.Error("unexpected error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
