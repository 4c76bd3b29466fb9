package entities

import "time"

// MaxReportReasonLen limita o tamanho do motivo de uma denúncia
const MaxReportReasonLen = 500

// Report representa uma denúncia contra um usuário. Do ponto de vista da API
// é um registro write-only; a leitura é restrita à moderação.
type Report struct {
	ID            string
	ReporterID    string
	ReporterEmail string
	ReportedID    string
	Motivo        string
	CreatedAt     time.Time
}
