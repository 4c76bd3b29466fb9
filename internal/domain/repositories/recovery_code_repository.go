package repositories

import (
	"context"

	"github.com/holonet/holonet-backend/internal/domain/entities"
)

// RecoveryCodeRepository define a interface para códigos de recuperação
type RecoveryCodeRepository interface {
	Create(ctx context.Context, code *entities.RecoveryCode) error

	// FindActiveByUser retorna o código mais recente não consumido, ou nil
	FindActiveByUser(ctx context.Context, userID string) (*entities.RecoveryCode, error)

	Consume(ctx context.Context, id string) error
	DeleteAllForUser(ctx context.Context, userID string) error
}
