package artworks

import (
	"encoding/json"
	"fmt"
	"os"
)

// Links holds the curated display links for an allow-listed artwork.
type Links struct {
	ObjktLink       string `json:"objktLink"`
	TwitterHandle   string `json:"twitterHandle"`
	TwitterUsername string `json:"twitterUsername"`
}

// Artwork is one eligible contest entry.
type Artwork struct {
	ContractAddress string `json:"contractAddress"`
	TokenID         int64  `json:"tokenId"`
	Links           Links  `json:"links"`
}

// Allowlist is the fixed set of artworks eligible to receive votes in a
// contest round. Immutable after construction.
type Allowlist struct {
	entries map[string]Artwork
}

// Key returns the canonical artwork identifier used across the system.
func Key(contractAddress string, tokenID int64) string {
	return fmt.Sprintf("%s_%d", contractAddress, tokenID)
}

// New builds an allow-list from a slice of artworks.
func New(entries []Artwork) *Allowlist {
	m := make(map[string]Artwork, len(entries))
	for _, a := range entries {
		m[Key(a.ContractAddress, a.TokenID)] = a
	}
	return &Allowlist{entries: m}
}

// LoadFile reads a JSON array of artworks from path.
func LoadFile(path string) (*Allowlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read allow-list: %w", err)
	}
	var entries []Artwork
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse allow-list: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("allow-list is empty")
	}
	return New(entries), nil
}

// IsEligible reports whether the (contract, tokenId) pair may receive votes.
func (al *Allowlist) IsEligible(contractAddress string, tokenID int64) bool {
	_, ok := al.entries[Key(contractAddress, tokenID)]
	return ok
}

// LinksFor returns the curated links for an artwork. Unknown artworks get a
// synthesized objkt link and placeholder socials so the leaderboard never
// renders a broken link.
func (al *Allowlist) LinksFor(contractAddress string, tokenID int64) Links {
	if a, ok := al.entries[Key(contractAddress, tokenID)]; ok {
		return a.Links
	}
	return Links{
		ObjktLink:       fmt.Sprintf("https://objkt.com/tokens/%s/%d", contractAddress, tokenID),
		TwitterHandle:   "#",
		TwitterUsername: "@unknown",
	}
}

// Size returns the number of eligible artworks.
func (al *Allowlist) Size() int {
	return len(al.entries)
}

// Default returns the curated top-10 for the current contest round.
func Default() *Allowlist {
	return New([]Artwork{
		{"KT1Tj26yEQwFAKnpHCF6pWasz5qeYbVWC1iP", 0, Links{"https://objkt.com/tokens/KT1Tj26yEQwFAKnpHCF6pWasz5qeYbVWC1iP/0", "https://x.com/JaycPraiz", "@JaycPraiz"}},
		{"KT1DCRK2mkTdY25FkyMFjAiXkEFMQ8XWCBDr", 0, Links{"https://objkt.com/tokens/KT1DCRK2mkTdY25FkyMFjAiXkEFMQ8XWCBDr/0", "https://twitter.com/JestemZero", "@JestemZero"}},
		{"KT1TVawuuBjxzUWj4kY9su4QpU4bRJXNXaga", 0, Links{"https://objkt.com/tokens/KT1TVawuuBjxzUWj4kY9su4QpU4bRJXNXaga/0", "https://x.com/MyReceiptTT", "@MyReceiptTT"}},
		{"KT1LykCakzibfukS9XkfMtWE2yQ8Ak4G4tQD", 4, Links{"https://objkt.com/tokens/KT1LykCakzibfukS9XkfMtWE2yQ8Ak4G4tQD/4", "https://x.com/neur0mancer1", "@neur0mancer1"}},
		{"KT1VgQzWU6RmpCnRqWDi6NSF9jqZTvaKe99P", 6, Links{"https://objkt.com/tokens/KT1VgQzWU6RmpCnRqWDi6NSF9jqZTvaKe99P/6", "https://x.com/Stalomir", "@Stalomir"}},
		{"KT1MEH1sCeQm3VecuP9ykmas7bmQ3URTsTTc", 5, Links{"https://objkt.com/tokens/KT1MEH1sCeQm3VecuP9ykmas7bmQ3URTsTTc/5", "https://x.com/santiagoitzcoat", "@santiagoitzcoat"}},
		{"KT1XKuiQuubqTPehsLS4EHkWD2u7PR4ciAsp", 2, Links{"https://objkt.com/tokens/KT1XKuiQuubqTPehsLS4EHkWD2u7PR4ciAsp/2", "https://twitter.com/oblivion_fields", "@oblivion_fields"}},
		{"KT1QQaWkaft3B6Fdig6rAvVuvgPCGiqt9pFv", 1, Links{"https://objkt.com/tokens/KT1QQaWkaft3B6Fdig6rAvVuvgPCGiqt9pFv/1", "https://twitter.com/msergisonmain", "@msergisonmain"}},
		{"KT1A1r5J3NKVyhSBm2S7PPaG3Y1NtgAoUTho", 30, Links{"https://objkt.com/tokens/KT1A1r5J3NKVyhSBm2S7PPaG3Y1NtgAoUTho/30", "https://twitter.com/WildMissingNos", "@WildMissingNos"}},
		{"KT1VcZmxPrkiWe54vyZYnK9ggzxG5DJu7zgT", 2, Links{"https://objkt.com/tokens/KT1VcZmxPrkiWe54vyZYnK9ggzxG5DJu7zgT/2", "https://twitter.com/My_3y3", "@My_3y3"}},
	})
}
