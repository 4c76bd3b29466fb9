package ports

import "context"

// Mailer define a interface para envio de emails transacionais
type Mailer interface {
	SendRecoveryCode(ctx context.Context, email, code string) error
}
