package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrTokenRejected means the peer answered but reported the token invalid.
// Transport-level failures are returned as-is so callers can log them
// distinctly from a plain rejection.
var ErrTokenRejected = errors.New("auth: token rejected by peer")

// RemoteUser is the minimal identity the peer deployment reports for a valid
// token. It is not guaranteed to exist in the local user store.
type RemoteUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type verifyResponse struct {
	Valid bool        `json:"valid"`
	User  *RemoteUser `json:"user"`
}

// Verifier forwards bearer tokens to a trusted peer deployment for
// verification. Every request pays the cost of one synchronous call: no
// caching, no retry, no circuit breaker.
type Verifier struct {
	endpoint string
	client   *http.Client
}

// NewVerifier builds a verifier against the peer's verification endpoint.
// The peer base URL must not have a trailing slash.
func NewVerifier(peerURL string) *Verifier {
	return &Verifier{
		endpoint: peerURL + "/v1/auth/verify",
		client:   &http.Client{},
	}
}

// NewVerifierWithClient allows injecting the HTTP client, used in tests.
func NewVerifierWithClient(peerURL string, client *http.Client) *Verifier {
	v := NewVerifier(peerURL)
	v.client = client
	return v
}

// Verify forwards the raw token to the peer and returns the identity the
// peer vouches for. Any transport error, non-2xx status, or {valid:false}
// response fails verification.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*RemoteUser, error) {
	body, _ := json.Marshal(map[string]string{"token": rawToken})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth: peer verification call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth: peer verification returned status %d", resp.StatusCode)
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("auth: failed to parse peer response: %w", err)
	}
	if !out.Valid || out.User == nil {
		return nil, ErrTokenRejected
	}
	return out.User, nil
}
