package leaderboard

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"artprize/internal/api/handlers"
	"artprize/internal/core/leaderboard"
)

// defaultLimit matches the contest's fixed top-10 display.
const defaultLimit = 10

// GetTopHandler serves the ranked leaderboard.
type GetTopHandler struct {
	service leaderboard.Service
}

// NewGetTopHandler creates a new leaderboard handler
func NewGetTopHandler(service leaderboard.Service) *GetTopHandler {
	return &GetTopHandler{service: service}
}

// HandleGetTop returns up to n leaderboard entries.
// GET /artworks/top?n=10
func (h *GetTopHandler) HandleGetTop(w http.ResponseWriter, r *http.Request) {
	n := defaultLimit
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "Invalid value for n.")
			return
		}
		n = parsed
	}

	entries, err := h.service.GetTop(r.Context(), n)
	if err != nil {
		if errors.Is(err, leaderboard.ErrInvalidLimit) {
			handlers.WriteError(w, http.StatusBadRequest, "Invalid value for n.")
			return
		}
		log.Printf("[LEADERBOARD] Get top error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// A short (or empty) list is valid data, not an error; the UI treats it
	// as its "insufficient data" state.
	if entries == nil {
		entries = []leaderboard.Entry{}
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.Response{
		Success: true,
		Data:    entries,
	})
}
