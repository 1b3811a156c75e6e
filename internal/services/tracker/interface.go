package tracker

import "context"

// Service drives the poll-compare-render loop for one tracked player
type Service interface {
	// Run resolves the player's identity and polls until ctx is cancelled.
	// Cancellation is a clean shutdown and returns nil.
	Run(ctx context.Context) error

	// Poll performs a single update cycle against the given state
	Poll(ctx context.Context, input *PollInput) (*PollOutput, error)
}
