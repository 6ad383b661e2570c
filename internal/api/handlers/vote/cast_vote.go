package vote

import (
	"encoding/json"
	"net/http"

	"artprize/internal/api/handlers"
	"artprize/internal/api/middleware"
	"artprize/internal/core/votes"
)

// CastVoteHandler handles ballot submission.
type CastVoteHandler struct {
	service votes.Service
}

// NewCastVoteHandler creates a new cast vote handler
func NewCastVoteHandler(service votes.Service) *CastVoteHandler {
	return &CastVoteHandler{service: service}
}

// castVoteInput is the request body for POST /votes.
// TokenID is a pointer so a missing field is distinguishable from token 0.
type castVoteInput struct {
	WalletAddress   string `json:"walletAddress"`
	ContractAddress string `json:"contractAddress"`
	TokenID         *int64 `json:"tokenId"`
	CaptchaToken    string `json:"captchaToken"`
}

// HandleCastVote records, confirms, or switches a wallet's ballot.
// POST /votes
//
// Request body: { "walletAddress", "contractAddress", "tokenId", "captchaToken" }
func (h *CastVoteHandler) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	var input castVoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if input.WalletAddress == "" || input.ContractAddress == "" || input.TokenID == nil || input.CaptchaToken == "" {
		handlers.WriteError(w, http.StatusBadRequest, "Missing required fields.")
		return
	}

	req := votes.CastVoteRequest{
		WalletAddress:   input.WalletAddress,
		ContractAddress: input.ContractAddress,
		TokenID:         *input.TokenID,
		CaptchaToken:    input.CaptchaToken,
		IPAddress:       middleware.ClientIP(r),
		UserAgent:       r.UserAgent(),
	}

	result, err := h.service.CastVote(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.Response{
		Success: true,
		Status:  result.Status,
		Message: result.Message,
	})
}
