package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	"github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/ports"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
)

// ReportService contém a lógica de negócio para denúncias
type ReportService struct {
	reports repositories.ReportRepository
	users   repositories.UserRepository
	logger  ports.Logger
}

// NewReportService cria um novo ReportService
func NewReportService(
	reports repositories.ReportRepository,
	users repositories.UserRepository,
	logger ports.Logger,
) *ReportService {
	return &ReportService{
		reports: reports,
		users:   users,
		logger:  logger,
	}
}

// CreateInput representa os dados de uma denúncia
type CreateInput struct {
	ReporterID    string
	ReporterEmail string
	ReportedID    string
	Motivo        string
}

// Create registra uma denúncia contra um usuário existente. Validações na
// ordem do contrato: usuário denunciado, email, motivo obrigatório, tamanho.
func (s *ReportService) Create(ctx context.Context, input CreateInput) error {
	if input.ReportedID == "" {
		return errors.ErrUserNotFound
	}

	target, err := s.users.FindByID(ctx, input.ReportedID)
	if err != nil || target == nil {
		return errors.ErrUserNotFound
	}

	if !validEmail(input.ReporterEmail) {
		return errors.ErrReportInvalidEmail
	}
	if blank(input.Motivo) {
		return errors.ErrReasonRequired
	}
	if len([]rune(input.Motivo)) > entities.MaxReportReasonLen {
		return errors.ErrReasonTooLong
	}

	report := &entities.Report{
		ID:            uuid.NewString(),
		ReporterID:    input.ReporterID,
		ReporterEmail: input.ReporterEmail,
		ReportedID:    input.ReportedID,
		Motivo:        input.Motivo,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		s.logger.Error("report creation failed", "error", err)
		return errors.ErrReportFailed
	}

	s.logger.Info("user reported",
		"reporter_id", input.ReporterID,
		"reported_id", input.ReportedID,
	)
	return nil
}

// List retorna todas as denúncias, da mais recente para a mais antiga
func (s *ReportService) List(ctx context.Context) ([]*entities.Report, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, errors.ErrGeneric
	}

	return reports, nil
}
