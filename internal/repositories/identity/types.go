package identity

import "net/http"

// Config holds configuration for the HTTP player directory repository
type Config struct {
	// HTTPClient is used for outbound requests; http.DefaultClient when nil
	HTTPClient *http.Client

	// BaseURL is the directory root, e.g. http://www.bungie.net/Platform/Destiny
	BaseURL string

	// APIKey is sent in the X-API-key header
	APIKey string

	// Platform is the membership type segment of the search path
	Platform string
}

// ResolveIdentityInput contains parameters for resolving a handle
type ResolveIdentityInput struct {
	Handle string
}
