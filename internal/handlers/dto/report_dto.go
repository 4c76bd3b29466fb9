package dto

import (
	"time"

	"github.com/holonet/holonet-backend/internal/domain/entities"
)

// ReportRequest representa uma denúncia contra um usuário
type ReportRequest struct {
	Email  string `json:"email"`
	Motivo string `json:"motivo"`
}

// ReportResponse representa uma denúncia na listagem de moderação
type ReportResponse struct {
	ID            string    `json:"id"`
	ReporterID    string    `json:"denunciante"`
	ReporterEmail string    `json:"emailDenunciante"`
	ReportedID    string    `json:"denunciado"`
	Motivo        string    `json:"motivo"`
	CreatedAt     time.Time `json:"criadoEm"`
}

// ToReportResponses converte uma lista de entidades Report
func ToReportResponses(reports []*entities.Report) []ReportResponse {
	responses := make([]ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = ReportResponse{
			ID:            report.ID,
			ReporterID:    report.ReporterID,
			ReporterEmail: report.ReporterEmail,
			ReportedID:    report.ReportedID,
			Motivo:        report.Motivo,
			CreatedAt:     report.CreatedAt,
		}
	}
	return responses
}
