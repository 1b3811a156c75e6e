package identity

// IdentityError is a custom error type for player directory errors
type IdentityError string

// Error implements the error interface
func (e IdentityError) Error() string {
	return string(e)
}

const (
	ErrUnexpectedStatus   IdentityError = "unexpected status from player directory"
	ErrMalformedResponse  IdentityError = "malformed player directory response"
	ErrMembershipNotFound IdentityError = "membership id not found"
	ErrEmptyHandle        IdentityError = "handle cannot be empty"
	ErrNilConfig          IdentityError = "config cannot be nil"
	ErrEmptyBaseURL       IdentityError = "base url cannot be empty"
	ErrEmptyAPIKey        IdentityError = "api key cannot be empty"
)
