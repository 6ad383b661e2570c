// Package tezos reads token display metadata from a TzKT-style indexer API.
// It implements leaderboard.MetadataResolver.
package tezos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"artprize/internal/core/leaderboard"
)

// Client queries the /v1/tokens endpoint of a TzKT-compatible indexer.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a metadata client against the given indexer base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// tokenRow is one element of the /v1/tokens response.
type tokenRow struct {
	Metadata *struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ArtifactURI string `json:"artifactUri"`
		DisplayURI  string `json:"displayUri"`
		ImageURI    string `json:"imageUri"`
	} `json:"metadata"`
}

// FetchTokenMetadata looks up one token's metadata. Any failure (transport,
// bad status, missing metadata) is returned as an error; the caller decides
// how to degrade.
func (c *Client) FetchTokenMetadata(ctx context.Context, contractAddress string, tokenID int64) (*leaderboard.Metadata, error) {
	endpoint := fmt.Sprintf("%s/v1/tokens?contract=%s&tokenId=%d&limit=1",
		c.baseURL, url.QueryEscape(contractAddress), tokenID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create token metadata request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query token metadata: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Failed to close token metadata response body: %v", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("indexer returned %d: %s", resp.StatusCode, string(body))
	}

	var rows []tokenRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to parse token metadata response: %w", err)
	}

	if len(rows) == 0 || rows[0].Metadata == nil {
		return nil, fmt.Errorf("no metadata for token %s_%d", contractAddress, tokenID)
	}

	m := rows[0].Metadata
	return &leaderboard.Metadata{
		Name:        m.Name,
		Description: m.Description,
		ArtifactURI: m.ArtifactURI,
		ImageURI:    m.ImageURI,
	}, nil
}
