package mail

import (
	"context"

	"github.com/holonet/holonet-backend/internal/domain/ports"
)

// LogMailer implementa ports.Mailer escrevendo no log em vez de enviar email.
// A entrega real por SMTP fica atrás da mesma porta.
type LogMailer struct {
	logger ports.Logger
}

// NewLogMailer cria um mailer de log
func NewLogMailer(logger ports.Logger) ports.Mailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendRecoveryCode(ctx context.Context, email, code string) error {
	m.logger.Info("recovery code issued",
		"email", email,
		"code", code,
	)
	return nil
}
