package identity

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/elolcd/internal/repositories/identity Repository

import (
	"context"

	"github.com/KirkDiggler/elolcd/internal/models"
)

// Repository resolves player handles against the player directory
type Repository interface {
	// ResolveIdentity looks up the membership id for a handle
	ResolveIdentity(ctx context.Context, input *ResolveIdentityInput) (*models.PlayerIdentity, error)
}
