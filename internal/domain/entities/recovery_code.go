package entities

import "time"

// RecoveryCodeTTL é a validade de um código de recuperação de senha
const RecoveryCodeTTL = 15 * time.Minute

// RecoveryCode representa um código de recuperação de senha enviado por email.
// Apenas o digest bcrypt do código é persistido.
type RecoveryCode struct {
	ID        string
	UserID    string
	CodeHash  string
	ExpiresAt time.Time
	Consumed  bool
	CreatedAt time.Time
}

// Usable verifica se o código ainda pode ser resgatado
func (r *RecoveryCode) Usable(now time.Time) bool {
	return !r.Consumed && now.Before(r.ExpiresAt)
}
