package votes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

type voteService struct {
	repo        Repository
	verifier    CaptchaVerifier
	eligibility Eligibility
	deadline    time.Time
	now         func() time.Time
}

// NewVoteService creates a new vote service. The deadline closes the voting
// window; requests arriving after it are rejected before any external call.
func NewVoteService(
	repo Repository,
	verifier CaptchaVerifier,
	eligibility Eligibility,
	deadline time.Time,
) Service {
	return &voteService{
		repo:        repo,
		verifier:    verifier,
		eligibility: eligibility,
		deadline:    deadline,
		now:         time.Now,
	}
}

// CastVote records, confirms, or switches a wallet's ballot.
func (s *voteService) CastVote(ctx context.Context, req CastVoteRequest) (*CastVoteResult, error) {
	// 1. Validate input (cheap checks first, before any external call)
	if req.WalletAddress == "" {
		return nil, NewValidationError("walletAddress", "required")
	}
	if req.ContractAddress == "" {
		return nil, NewValidationError("contractAddress", "required")
	}
	if req.TokenID < 0 {
		return nil, NewValidationError("tokenId", "must be a non-negative integer")
	}
	if req.CaptchaToken == "" {
		return nil, NewValidationError("captchaToken", "required")
	}

	// 2. Voting window must still be open
	if s.now().After(s.deadline) {
		return nil, ErrVotingClosed
	}

	// 3. Verify captcha
	ok, err := s.verifier.Verify(ctx, req.CaptchaToken)
	if err != nil {
		return nil, fmt.Errorf("captcha verifier unavailable: %w", err)
	}
	if !ok {
		return nil, ErrCaptchaFailed
	}

	// 4. Artwork must be in the curated allow-list
	if !s.eligibility.IsEligible(req.ContractAddress, req.TokenID) {
		return nil, ErrInvalidArtwork
	}

	// 5. Upsert keyed by wallet address
	existing, err := s.repo.GetByWallet(ctx, req.WalletAddress)
	if err != nil && !errors.Is(err, ErrVoteNotFound) {
		return nil, fmt.Errorf("failed to look up existing vote: %w", err)
	}

	if existing == nil {
		// First-time voter
		vote := &Vote{
			WalletAddress:   req.WalletAddress,
			ContractAddress: req.ContractAddress,
			TokenID:         req.TokenID,
			IPAddress:       req.IPAddress,
			UserAgent:       req.UserAgent,
		}

		err = s.repo.Create(ctx, vote)
		if errors.Is(err, ErrVoteAlreadyExists) {
			// Lost an insert race to a concurrent first vote from the same
			// wallet. The row exists now, so retry as a vote change.
			log.Printf("[VOTE] Insert race for wallet %s, retrying as update", req.WalletAddress)
			return s.changeVote(ctx, req)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to record vote: %w", err)
		}

		log.Printf("[VOTE] Recorded first vote: wallet=%s artwork=%s_%d", req.WalletAddress, req.ContractAddress, req.TokenID)
		return &CastVoteResult{
			Status:  StatusRecorded,
			Message: "Vote recorded successfully.",
		}, nil
	}

	if existing.ContractAddress == req.ContractAddress && existing.TokenID == req.TokenID {
		// Repeat vote for the same artwork: no write, updated_at untouched
		return &CastVoteResult{
			Status:  StatusUnchanged,
			Message: "You have already voted for this artwork.",
		}, nil
	}

	return s.updateVote(ctx, req)
}

// changeVote re-reads the wallet's row after a lost insert race and resolves
// the request against it.
func (s *voteService) changeVote(ctx context.Context, req CastVoteRequest) (*CastVoteResult, error) {
	existing, err := s.repo.GetByWallet(ctx, req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read vote after insert conflict: %w", err)
	}

	if existing.ContractAddress == req.ContractAddress && existing.TokenID == req.TokenID {
		return &CastVoteResult{
			Status:  StatusUnchanged,
			Message: "You have already voted for this artwork.",
		}, nil
	}

	return s.updateVote(ctx, req)
}

// updateVote switches an existing ballot to a different artwork.
func (s *voteService) updateVote(ctx context.Context, req CastVoteRequest) (*CastVoteResult, error) {
	vote := &Vote{
		WalletAddress:   req.WalletAddress,
		ContractAddress: req.ContractAddress,
		TokenID:         req.TokenID,
		IPAddress:       req.IPAddress,
		UserAgent:       req.UserAgent,
	}

	if err := s.repo.UpdateArtwork(ctx, vote); err != nil {
		return nil, fmt.Errorf("failed to update vote: %w", err)
	}

	log.Printf("[VOTE] Updated vote: wallet=%s artwork=%s_%d", req.WalletAddress, req.ContractAddress, req.TokenID)
	return &CastVoteResult{
		Status:  StatusUpdated,
		Message: "Your vote has been updated successfully.",
	}, nil
}
