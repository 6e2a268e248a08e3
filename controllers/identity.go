package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrInvalidSession is returned when the identity provider rejects the
// presented session id.
var ErrInvalidSession = errors.New("invalid session")

// IdentityPayload is the identity the provider hands back for a session id.
type IdentityPayload struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// IdentityProvider exchanges an externally-issued session id for a verified
// identity.
type IdentityProvider interface {
	SessionData(ctx context.Context, sessionID string) (*IdentityPayload, error)
}

// HTTPIdentityProvider calls the provider endpoint with the session id
// forwarded as a header.
type HTTPIdentityProvider struct {
	url    string
	client *http.Client
}

func NewHTTPIdentityProvider(url string) *HTTPIdentityProvider {
	return &HTTPIdentityProvider{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPIdentityProvider) SessionData(ctx context.Context, sessionID string) (*IdentityPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidSession
	}

	var payload IdentityPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode identity payload: %w", err)
	}
	return &payload, nil
}
