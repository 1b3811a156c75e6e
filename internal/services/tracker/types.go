package tracker

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/elolcd/internal/common/clock"
	"github.com/KirkDiggler/elolcd/internal/common/uuid"
	"github.com/KirkDiggler/elolcd/internal/display"
	"github.com/KirkDiggler/elolcd/internal/models"
	"github.com/KirkDiggler/elolcd/internal/repositories/fireteam"
	"github.com/KirkDiggler/elolcd/internal/repositories/identity"
)

const (
	DefaultUpdatePause  = 3 * time.Second
	DefaultBlinkStep    = time.Second
	DefaultPollInterval = 300 * time.Second
)

// Config holds configuration for the tracker service
type Config struct {
	// Handle is the PSN being tracked
	Handle string

	// Mode selects the fireteam stats to poll
	Mode models.GameMode

	// UpdatePause is how long "Updating ..." stays up before each fetch
	UpdatePause time.Duration

	// BlinkStep is the time between backlight toggles on a change
	BlinkStep time.Duration

	// PollInterval is the wait between cycles
	PollInterval time.Duration

	// Repository dependencies
	IdentityRepo identity.Repository
	FireteamRepo fireteam.Repository

	// Service dependencies
	Display       display.Display
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        logrus.FieldLogger
}

// State is carried from one cycle to the next
type State struct {
	// LastRating and LastKD are the previous reading, zero before the first one
	LastRating float64
	LastKD     float64

	// RatingDelta and KDDelta are the most recent change, shown until the next one
	RatingDelta string
	KDDelta     string
}

// Previous returns the state's last reading as a snapshot
func (s State) Previous() models.StatsSnapshot {
	return models.StatsSnapshot{
		Rating: s.LastRating,
		KD:     s.LastKD,
	}
}

// PollInput contains parameters for one update cycle
type PollInput struct {
	// Identity is the resolved player to look for
	Identity *models.PlayerIdentity

	// State is the result of the previous cycle
	State State
}

// PollOutput contains the result of one update cycle
type PollOutput struct {
	// State to pass to the next cycle; equal to the input state when the player was not found
	State State

	// Found reports whether the player appeared in the fireteam response
	Found bool

	// Changed reports whether a change notification was shown
	Changed bool

	// Snapshot is the new reading, nil when the player was not found
	Snapshot *models.StatsSnapshot

	// CheckedAt is when the cycle finished
	CheckedAt time.Time
}
