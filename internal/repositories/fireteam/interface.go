package fireteam

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/elolcd/internal/repositories/fireteam Repository

import "context"

// Repository fetches fireteam stats from the statistics service
type Repository interface {
	// GetFireteam returns every player record in the member's latest fireteam for a mode
	GetFireteam(ctx context.Context, input *GetFireteamInput) (*GetFireteamOutput, error)
}
