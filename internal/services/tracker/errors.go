package tracker

// TrackerError is a custom error type for tracker errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrIdentityResolution TrackerError = "failed to resolve player identity"
	ErrPoll               TrackerError = "failed to poll fireteam stats"
	ErrDisplay            TrackerError = "display update failed"
	ErrNilIdentity        TrackerError = "identity cannot be nil"
	ErrNilConfig          TrackerError = "config cannot be nil"
	ErrEmptyHandle        TrackerError = "handle cannot be empty"
	ErrNilDisplay         TrackerError = "display cannot be nil"
	ErrNilIdentityRepo    TrackerError = "identity repository cannot be nil"
	ErrNilFireteamRepo    TrackerError = "fireteam repository cannot be nil"
	ErrNilClock           TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator   TrackerError = "UUID generator cannot be nil"
	ErrNilLogger          TrackerError = "logger cannot be nil"
)
