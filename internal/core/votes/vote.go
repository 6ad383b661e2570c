package votes

import (
	"time"
)

// Vote represents one wallet's current ballot. At most one row exists per
// wallet; changing a vote mutates the row in place.
type Vote struct {
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
	WalletAddress   string    `json:"walletAddress" db:"wallet_address"`
	ContractAddress string    `json:"contractAddress" db:"contract_address"`
	IPAddress       string    `json:"-" db:"ip_address"`
	UserAgent       string    `json:"-" db:"user_agent"`
	TokenID         int64     `json:"tokenId" db:"token_id"`
	ID              int64     `json:"id" db:"id"`
}

// CastVoteRequest carries everything needed to record or change a ballot.
// IPAddress and UserAgent are audit fields filled in by the HTTP layer.
type CastVoteRequest struct {
	WalletAddress   string
	ContractAddress string
	TokenID         int64
	CaptchaToken    string
	IPAddress       string
	UserAgent       string
}

// Status values of a completed castVote call.
const (
	StatusRecorded  = "recorded"
	StatusUnchanged = "unchanged"
	StatusUpdated   = "updated"
)

// CastVoteResult reports the outcome of a successful castVote call.
type CastVoteResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
