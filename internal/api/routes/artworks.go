package routes

import (
	"github.com/go-chi/chi/v5"

	leaderboardHandler "artprize/internal/api/handlers/leaderboard"
	"artprize/internal/core/leaderboard"
)

// RegisterArtworkRoutes registers leaderboard read endpoints on the router.
func RegisterArtworkRoutes(r chi.Router, service leaderboard.Service) {
	getTopHandler := leaderboardHandler.NewGetTopHandler(service)

	// GET /artworks/top?n=10 - ranked leaderboard with on-chain metadata
	r.Get("/artworks/top", getTopHandler.HandleGetTop)
}
