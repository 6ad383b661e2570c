// Package captcha verifies reCAPTCHA tokens against the Google siteverify
// endpoint using a server-held secret. The secret never reaches clients.
package captcha

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
)

// Verifier calls the siteverify endpoint and applies the v3 score/action
// policy when the response carries one.
type Verifier struct {
	httpClient     *http.Client
	verifyURL      string
	secret         string
	expectedAction string
	minScore       float64
}

// NewVerifier creates a verifier. expectedAction may be empty to skip the
// action check (v2 checkbox tokens carry no action).
func NewVerifier(verifyURL, secret string, minScore float64, expectedAction string) *Verifier {
	return &Verifier{
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		verifyURL:      verifyURL,
		secret:         secret,
		expectedAction: expectedAction,
		minScore:       minScore,
	}
}

// siteverifyResponse is the Google siteverify response body. Score and
// action are only present for v3 tokens.
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks a captcha token. ok=false means the token was rejected;
// a non-nil error means the verification service could not be reached.
func (v *Verifier) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to create siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call siteverify: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Failed to close siteverify response body: %v", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("siteverify returned %d: %s", resp.StatusCode, string(body))
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to parse siteverify response: %w", err)
	}

	if !result.Success {
		log.Printf("[CAPTCHA] Token rejected: error-codes=%v", result.ErrorCodes)
		return false, nil
	}
	if result.Score != nil && *result.Score < v.minScore {
		log.Printf("[CAPTCHA] Score %.2f below threshold %.2f", *result.Score, v.minScore)
		return false, nil
	}
	if v.expectedAction != "" && result.Action != "" && result.Action != v.expectedAction {
		log.Printf("[CAPTCHA] Action mismatch: got %q want %q", result.Action, v.expectedAction)
		return false, nil
	}

	return true, nil
}
