package vote

import (
	"errors"
	"log"
	"net/http"

	"artprize/internal/api/handlers"
	"artprize/internal/core/votes"
)

// handleServiceError converts vote service errors to HTTP responses.
// Business-rule rejections are 400 with a specific message; anything else
// (store or verifier failure) is a generic 500 with the detail logged only.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *votes.ValidationError
	if errors.As(err, &validationErr) {
		handlers.WriteError(w, http.StatusBadRequest, "Missing required fields.")
		return
	}

	switch {
	case errors.Is(err, votes.ErrVotingClosed):
		handlers.WriteError(w, http.StatusBadRequest, "Voting period has ended.")
	case errors.Is(err, votes.ErrCaptchaFailed):
		handlers.WriteError(w, http.StatusBadRequest, "reCAPTCHA verification failed.")
	case errors.Is(err, votes.ErrInvalidArtwork):
		handlers.WriteError(w, http.StatusBadRequest, "Invalid artwork selected.")
	default:
		log.Printf("[VOTE] Cast vote error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
