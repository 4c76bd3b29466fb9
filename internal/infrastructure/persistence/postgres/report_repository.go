package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
)

// ReportRepository implementa repositories.ReportRepository
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository cria um novo ReportRepository
func NewReportRepository(db *gorm.DB) repositories.ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *entities.Report) error {
	model := &ReportModel{
		ID:            report.ID,
		ReporterID:    report.ReporterID,
		ReporterEmail: report.ReporterEmail,
		ReportedID:    report.ReportedID,
		Motivo:        report.Motivo,
	}

	db := dbFromContext(ctx, r.db)
	return db.Create(model).Error
}

func (r *ReportRepository) List(ctx context.Context) ([]*entities.Report, error) {
	var models []*ReportModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	reports := make([]*entities.Report, 0, len(models))
	for _, model := range models {
		reports = append(reports, &entities.Report{
			ID:            model.ID,
			ReporterID:    model.ReporterID,
			ReporterEmail: model.ReporterEmail,
			ReportedID:    model.ReportedID,
			Motivo:        model.Motivo,
			CreatedAt:     time.Unix(model.CreatedAt, 0),
		})
	}

	return reports, nil
}
