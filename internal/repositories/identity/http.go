package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/elolcd/internal/models"
)

const (
	apiKeyHeader    = "X-API-key"
	defaultPlatform = "2"

	// membershipPath locates the first search hit's membership id
	membershipPath = "Response.0.membershipId"
)

// httpRepository implements the Repository interface over the player directory HTTP API
type httpRepository struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	platform string
}

// NewHTTP creates a new HTTP-backed identity repository
func NewHTTP(cfg *Config) (*httpRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BaseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	if cfg.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	platform := cfg.Platform
	if platform == "" {
		platform = defaultPlatform
	}

	return &httpRepository{
		client:   client,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		platform: platform,
	}, nil
}

// ResolveIdentity searches the directory for the handle and takes the first hit
func (r *httpRepository) ResolveIdentity(ctx context.Context, input *ResolveIdentityInput) (*models.PlayerIdentity, error) {
	if input == nil || input.Handle == "" {
		return nil, ErrEmptyHandle
	}

	endpoint := fmt.Sprintf("%s/SearchDestinyPlayer/%s/%s", r.baseURL, url.PathEscape(r.platform), url.PathEscape(input.Handle))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set(apiKeyHeader, r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search player directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedResponse
	}

	membership := gjson.GetBytes(body, membershipPath)
	if !membership.Exists() || membership.String() == "" {
		return nil, fmt.Errorf("%w for handle %q", ErrMembershipNotFound, input.Handle)
	}

	return &models.PlayerIdentity{
		Handle:       input.Handle,
		MembershipID: membership.String(),
	}, nil
}
