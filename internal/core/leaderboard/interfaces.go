package leaderboard

import (
	"context"

	"artprize/internal/core/artworks"
)

// Service defines the read interface for the ranked leaderboard.
type Service interface {
	// GetTop returns up to n entries ordered by vote count descending.
	// Fewer than n distinct voted artworks yields a shorter list, not an
	// error. Metadata failures degrade per entry, never the whole request.
	GetTop(ctx context.Context, n int) ([]Entry, error)
}

// Repository aggregates the votes table into ordered tallies.
type Repository interface {
	// TopArtworks returns up to limit (artwork, count) pairs ordered by
	// count descending; ties order by contract address then token id
	// ascending so results are reproducible.
	TopArtworks(ctx context.Context, limit int) ([]Tally, error)
}

// MetadataResolver reads display metadata for a single token. Each call has
// its own failure domain; a failed lookup must not poison the batch.
type MetadataResolver interface {
	FetchTokenMetadata(ctx context.Context, contractAddress string, tokenID int64) (*Metadata, error)
}

// LinksProvider supplies the curated objkt/twitter links for an artwork.
type LinksProvider interface {
	LinksFor(contractAddress string, tokenID int64) artworks.Links
}
