package votes

import "context"

// Service defines the business logic interface for casting votes.
type Service interface {
	// CastVote records a first-time ballot, confirms a repeat ballot, or
	// switches an existing ballot to a different artwork.
	// Flow: validate fields -> deadline check -> captcha -> allow-list -> upsert.
	// Upsert semantics keyed by wallet address:
	//   - No existing vote   -> insert, StatusRecorded
	//   - Same artwork again -> no write, StatusUnchanged
	//   - Different artwork  -> update in place, StatusUpdated
	CastVote(ctx context.Context, req CastVoteRequest) (*CastVoteResult, error)
}

// Repository defines the data access interface for the votes table.
type Repository interface {
	// Create inserts a new vote row. Returns ErrVoteAlreadyExists when the
	// wallet uniqueness constraint fires (concurrent insert race).
	Create(ctx context.Context, vote *Vote) error

	// GetByWallet retrieves the wallet's current ballot.
	// Returns ErrVoteNotFound if the wallet has not voted.
	GetByWallet(ctx context.Context, walletAddress string) (*Vote, error)

	// UpdateArtwork points an existing ballot at a different artwork,
	// refreshing the audit fields and updated_at.
	UpdateArtwork(ctx context.Context, vote *Vote) error
}

// CaptchaVerifier checks that a request likely originated from a human.
// ok=false means the token was rejected; a non-nil error means the verifier
// itself could not be reached.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) (ok bool, err error)
}

// Eligibility guards castVote against ballots for artworks outside the
// curated contest set.
type Eligibility interface {
	IsEligible(contractAddress string, tokenID int64) bool
}
