package fireteam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/elolcd/internal/models"
)

// requiredFields must be present and non-null on every player record
var requiredFields = []string{"name", "elo", "kills", "deaths"}

// httpRepository implements the Repository interface over the fireteam HTTP API
type httpRepository struct {
	client  *http.Client
	baseURL string
}

// NewHTTP creates a new HTTP-backed fireteam repository
func NewHTTP(cfg *Config) (*httpRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BaseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &httpRepository{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Endpoint returns the fireteam URL for a mode and membership
func (r *httpRepository) Endpoint(modeCode int, membershipID string) string {
	return fmt.Sprintf("%s/fireteam/%d/%s", r.baseURL, modeCode, url.PathEscape(membershipID))
}

// GetFireteam fetches and decodes the fireteam player list. The request is unauthenticated.
func (r *httpRepository) GetFireteam(ctx context.Context, input *GetFireteamInput) (*GetFireteamOutput, error) {
	if input == nil || input.MembershipID == "" {
		return nil, ErrEmptyMembershipID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.Endpoint(input.ModeCode, input.MembershipID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fireteam request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get fireteam: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read fireteam response: %w", err)
	}

	if err := validatePlayers(body); err != nil {
		return nil, err
	}

	var players []*models.PlayerRecord
	if err := json.Unmarshal(body, &players); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &GetFireteamOutput{
		Players: players,
	}, nil
}

func validatePlayers(body []byte) error {
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return fmt.Errorf("%w: expected a player array", ErrMalformedResponse)
	}

	for i, player := range parsed.Array() {
		if !player.IsObject() {
			return fmt.Errorf("%w: player %d is not an object", ErrMalformedResponse, i)
		}
		for _, field := range requiredFields {
			if value := player.Get(field); !value.Exists() || value.Type == gjson.Null {
				return fmt.Errorf("%w: player %d has no %s", ErrMalformedResponse, i, field)
			}
		}
	}

	return nil
}
