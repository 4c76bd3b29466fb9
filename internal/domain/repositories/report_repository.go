package repositories

import (
	"context"

	"github.com/holonet/holonet-backend/internal/domain/entities"
)

// ReportRepository define a interface para persistência de denúncias
type ReportRepository interface {
	Create(ctx context.Context, report *entities.Report) error
	List(ctx context.Context) ([]*entities.Report, error)
}
