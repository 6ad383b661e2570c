package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"artprize/internal/core/leaderboard"
	"artprize/internal/core/votes"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// VoteRepository is the PostgreSQL implementation of votes.Repository and
// leaderboard.Repository. Both read the same votes table.
type VoteRepository struct {
	db *sql.DB
}

// NewVoteRepository creates a new PostgreSQL vote repository
func NewVoteRepository(db *sql.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Create inserts a new vote row.
// Returns votes.ErrVoteAlreadyExists when the wallet uniqueness constraint
// fires, so the service can recover the insert race as an update.
func (r *VoteRepository) Create(ctx context.Context, vote *votes.Vote) error {
	query := `
		INSERT INTO votes (
			wallet_address, contract_address, token_id,
			ip_address, user_agent
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		vote.WalletAddress, vote.ContractAddress, vote.TokenID,
		vote.IPAddress, vote.UserAgent,
	).Scan(&vote.ID, &vote.CreatedAt, &vote.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return votes.ErrVoteAlreadyExists
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

// GetByWallet retrieves the wallet's current ballot.
func (r *VoteRepository) GetByWallet(ctx context.Context, walletAddress string) (*votes.Vote, error) {
	query := `
		SELECT
			id, wallet_address, contract_address, token_id,
			ip_address, user_agent, created_at, updated_at
		FROM votes
		WHERE wallet_address = $1
	`

	var vote votes.Vote

	err := r.db.QueryRowContext(ctx, query, walletAddress).Scan(
		&vote.ID, &vote.WalletAddress, &vote.ContractAddress, &vote.TokenID,
		&vote.IPAddress, &vote.UserAgent, &vote.CreatedAt, &vote.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, votes.ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote by wallet: %w", err)
	}

	return &vote, nil
}

// UpdateArtwork points an existing ballot at a different artwork and
// refreshes the audit fields. created_at is preserved.
func (r *VoteRepository) UpdateArtwork(ctx context.Context, vote *votes.Vote) error {
	query := `
		UPDATE votes
		SET contract_address = $2,
		    token_id = $3,
		    ip_address = $4,
		    user_agent = $5,
		    updated_at = NOW()
		WHERE wallet_address = $1
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		vote.WalletAddress, vote.ContractAddress, vote.TokenID,
		vote.IPAddress, vote.UserAgent,
	).Scan(&vote.ID, &vote.CreatedAt, &vote.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return votes.ErrVoteNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update vote: %w", err)
	}

	return nil
}

// TopArtworks aggregates current rows into ordered tallies.
// Ties order by contract address then token id ascending for reproducibility.
func (r *VoteRepository) TopArtworks(ctx context.Context, limit int) ([]leaderboard.Tally, error) {
	query := `
		SELECT contract_address, token_id, COUNT(*) AS vote_count
		FROM votes
		GROUP BY contract_address, token_id
		ORDER BY vote_count DESC, contract_address ASC, token_id ASC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top artworks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []leaderboard.Tally
	for rows.Next() {
		var tally leaderboard.Tally
		if err := rows.Scan(&tally.ContractAddress, &tally.TokenID, &tally.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan tally: %w", err)
		}
		result = append(result, tally)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tallies: %w", err)
	}

	return result, nil
}
