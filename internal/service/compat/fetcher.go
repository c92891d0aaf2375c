package compat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goodnatureofminers/featuregate/internal/model"
)

const (
	identityPath        = "/v1/identity"
	defaultFetchTimeout = 5 * time.Second
	maxIdentityBody     = 64 << 10
)

// HTTPFetcher reads a peer's identity from its REST endpoint.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher builds an HTTPFetcher. A nil client gets a default one with a
// short timeout.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &HTTPFetcher{client: client}
}

// FetchIdentity requests peer + /v1/identity. peer is a base URL such as
// http://10.0.0.1:8080.
func (f *HTTPFetcher) FetchIdentity(ctx context.Context, peer string) (model.Identity, error) {
	endpoint, err := url.JoinPath(peer, identityPath)
	if err != nil {
		return model.Identity{}, fmt.Errorf("build identity url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Identity{}, fmt.Errorf("new identity request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return model.Identity{}, fmt.Errorf("get %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Identity{}, fmt.Errorf("get %s: unexpected status %s", endpoint, resp.Status)
	}

	var identity model.Identity
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxIdentityBody)).Decode(&identity); err != nil {
		return model.Identity{}, fmt.Errorf("decode identity: %w", err)
	}
	return identity, nil
}
