package repositories

import (
	"context"

	"github.com/holonet/holonet-backend/internal/domain/entities"
)

// CommunityRepository define a interface para consultas de comunidades
type CommunityRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*entities.Community, error)

	// RemoveMemberships remove as participações do usuário (cascata de conta)
	RemoveMemberships(ctx context.Context, userID string) error
}
