package routes

import (
	"github.com/go-chi/chi/v5"

	"artprize/internal/api/handlers/vote"
	"artprize/internal/core/votes"
)

// RegisterVoteRoutes registers ballot submission endpoints on the router.
func RegisterVoteRoutes(r chi.Router, service votes.Service) {
	castVoteHandler := vote.NewCastVoteHandler(service)

	// POST /votes - record, confirm, or switch a wallet's ballot
	r.Post("/votes", castVoteHandler.HandleCastVote)
}
