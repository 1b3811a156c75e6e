package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/elolcd/internal/common/uuid UUID

// UUID hands out identifiers used to correlate the log lines of one poll cycle
type UUID interface {
	NewCycleID() string
}

// DefaultUUID generates random v4 identifiers
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewCycleID returns a new random identifier
func (d *DefaultUUID) NewCycleID() string {
	return uuid.NewString()
}
