package captcha

import (
	"encoding/json"
	"log"
	"net/http"

	"artprize/internal/api/handlers"
	"artprize/internal/core/votes"
)

// VerifyHandler proxies captcha checks for the frontend so the siteverify
// secret stays server-side.
type VerifyHandler struct {
	verifier votes.CaptchaVerifier
}

// NewVerifyHandler creates a new captcha verify handler
func NewVerifyHandler(verifier votes.CaptchaVerifier) *VerifyHandler {
	return &VerifyHandler{verifier: verifier}
}

type verifyInput struct {
	Token string `json:"token"`
}

// HandleVerify checks a captcha token.
// POST /captcha/verify
//
// Request body: { "token" }
func (h *VerifyHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var input verifyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if input.Token == "" {
		handlers.WriteError(w, http.StatusBadRequest, "Missing required fields.")
		return
	}

	ok, err := h.verifier.Verify(r.Context(), input.Token)
	if err != nil {
		log.Printf("[CAPTCHA] Verify error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !ok {
		handlers.WriteError(w, http.StatusBadRequest, "reCAPTCHA verification failed.")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.Response{Success: true})
}
