package leaderboard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// maxLimit caps a single leaderboard read. The contest UI asks for 10.
const maxLimit = 50

// metadataTimeout bounds each per-token chain lookup.
const metadataTimeout = 10 * time.Second

type leaderboardService struct {
	repo     Repository
	resolver MetadataResolver
	links    LinksProvider
}

// NewLeaderboardService creates a new leaderboard service.
func NewLeaderboardService(repo Repository, resolver MetadataResolver, links LinksProvider) Service {
	return &leaderboardService{
		repo:     repo,
		resolver: resolver,
		links:    links,
	}
}

// GetTop returns up to n entries ordered by vote count descending.
func (s *leaderboardService) GetTop(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 || n > maxLimit {
		return nil, ErrInvalidLimit
	}

	tallies, err := s.repo.TopArtworks(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate votes: %w", err)
	}

	// Fan out metadata lookups; each entry keeps its own failure domain and
	// its position in the ranked order.
	entries := make([]Entry, len(tallies))
	var wg sync.WaitGroup
	for i, tally := range tallies {
		wg.Add(1)
		go func(i int, tally Tally) {
			defer wg.Done()
			entries[i] = s.buildEntry(ctx, tally)
		}(i, tally)
	}
	wg.Wait()

	return entries, nil
}

// buildEntry joins one tally with its on-chain metadata and curated links,
// substituting fallback display fields when the lookup fails.
func (s *leaderboardService) buildEntry(ctx context.Context, tally Tally) Entry {
	entry := Entry{
		ContractAddress: tally.ContractAddress,
		TokenID:         tally.TokenID,
		VoteCount:       tally.VoteCount,
	}

	links := s.links.LinksFor(tally.ContractAddress, tally.TokenID)
	entry.ObjktLink = links.ObjktLink
	entry.TwitterHandle = links.TwitterHandle
	entry.TwitterUsername = links.TwitterUsername

	mctx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()

	meta, err := s.resolver.FetchTokenMetadata(mctx, tally.ContractAddress, tally.TokenID)
	if err != nil {
		log.Printf("[LEADERBOARD] Metadata lookup failed for %s_%d: %v", tally.ContractAddress, tally.TokenID, err)
		entry.Name = fmt.Sprintf("Token %d", tally.TokenID)
		entry.Description = "No description available."
		entry.Image = ""
		return entry
	}

	entry.Name = meta.Name
	if entry.Name == "" {
		entry.Name = fmt.Sprintf("Token %d", tally.TokenID)
	}
	entry.Description = meta.Description
	if entry.Description == "" {
		entry.Description = "No description available."
	}
	// Prefer the artifact over the generic image when both are present
	entry.Image = meta.ArtifactURI
	if entry.Image == "" {
		entry.Image = meta.ImageURI
	}

	return entry
}
