package fireteam

// FireteamError is a custom error type for statistics service errors
type FireteamError string

// Error implements the error interface
func (e FireteamError) Error() string {
	return string(e)
}

const (
	ErrUnexpectedStatus  FireteamError = "unexpected status from fireteam service"
	ErrMalformedResponse FireteamError = "malformed fireteam response"
	ErrEmptyMembershipID FireteamError = "membership id cannot be empty"
	ErrNilConfig         FireteamError = "config cannot be nil"
	ErrEmptyBaseURL      FireteamError = "base url cannot be empty"
)
