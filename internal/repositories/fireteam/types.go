package fireteam

import (
	"net/http"

	"github.com/KirkDiggler/elolcd/internal/models"
)

// Config holds configuration for the HTTP fireteam repository
type Config struct {
	// HTTPClient is used for outbound requests; http.DefaultClient when nil
	HTTPClient *http.Client

	// BaseURL is the statistics service root, e.g. http://api.guardian.gg
	BaseURL string
}

// GetFireteamInput contains parameters for fetching a fireteam
type GetFireteamInput struct {
	ModeCode     int
	MembershipID string
}

// GetFireteamOutput contains the fetched player records
type GetFireteamOutput struct {
	Players []*models.PlayerRecord
}
