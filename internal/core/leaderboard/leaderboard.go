package leaderboard

// Tally is the current vote count for one artwork, derived from the votes
// table on every read. Never stored.
type Tally struct {
	ContractAddress string `json:"contractAddress" db:"contract_address"`
	TokenID         int64  `json:"tokenId" db:"token_id"`
	VoteCount       int64  `json:"voteCount" db:"vote_count"`
}

// Metadata is the display metadata for a token, read from chain.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ArtifactURI string `json:"artifactUri"`
	ImageURI    string `json:"imageUri"`
}

// Entry is one ranked leaderboard row: a tally joined with on-chain metadata
// and the curated display links. Built per-request.
type Entry struct {
	ContractAddress string `json:"contractAddress"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	ObjktLink       string `json:"objktLink"`
	TwitterHandle   string `json:"twitterHandle"`
	TwitterUsername string `json:"twitterUsername"`
	TokenID         int64  `json:"tokenId"`
	VoteCount       int64  `json:"voteCount"`
}
