package services

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	"github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/ports"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
)

const recoveryCodeLen = 6

// RecoveryService contém a lógica de recuperação de senha por código
type RecoveryService struct {
	users  repositories.UserRepository
	codes  repositories.RecoveryCodeRepository
	mailer ports.Mailer
	logger ports.Logger
	now    func() time.Time
}

// NewRecoveryService cria um novo RecoveryService
func NewRecoveryService(
	users repositories.UserRepository,
	codes repositories.RecoveryCodeRepository,
	mailer ports.Mailer,
	logger ports.Logger,
) *RecoveryService {
	return &RecoveryService{
		users:  users,
		codes:  codes,
		mailer: mailer,
		logger: logger,
		now:    time.Now,
	}
}

// RequestCode gera um código de recuperação e o envia por email. Emails
// desconhecidos não produzem erro, para não permitir enumeração de contas.
func (s *RecoveryService) RequestCode(ctx context.Context, email string) error {
	if !validEmail(email) {
		return errors.ErrInvalidEmail
	}

	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return errors.ErrGeneric
	}
	if user == nil {
		return nil
	}

	code, err := numericCode(recoveryCodeLen)
	if err != nil {
		return errors.ErrGeneric
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return errors.ErrGeneric
	}

	recovery := &entities.RecoveryCode{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CodeHash:  string(hash),
		ExpiresAt: s.now().Add(entities.RecoveryCodeTTL),
	}
	if err := s.codes.Create(ctx, recovery); err != nil {
		return errors.ErrGeneric
	}

	if err := s.mailer.SendRecoveryCode(ctx, user.Email.String(), code); err != nil {
		s.logger.Warn("recovery code delivery failed",
			"user_id", user.ID,
			"error", err,
		)
	}

	return nil
}

// ResetPassword troca a senha mediante código válido. Qualquer falha na
// verificação do código produz o mesmo erro.
func (s *RecoveryService) ResetPassword(ctx context.Context, email, code, novaSenha string) error {
	if !validEmail(email) {
		return errors.ErrInvalidEmail
	}
	if blank(novaSenha) {
		return errors.ErrPasswordRequired
	}

	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return errors.ErrGeneric
	}
	if user == nil {
		return errors.ErrInvalidRecovery
	}

	recovery, err := s.codes.FindActiveByUser(ctx, user.ID)
	if err != nil {
		return errors.ErrGeneric
	}
	if recovery == nil || !recovery.Usable(s.now()) {
		return errors.ErrInvalidRecovery
	}

	if bcrypt.CompareHashAndPassword([]byte(recovery.CodeHash), []byte(code)) != nil {
		return errors.ErrInvalidRecovery
	}

	if err := s.codes.Consume(ctx, recovery.ID); err != nil {
		return errors.ErrGeneric
	}

	rows, err := s.users.UpdatePassword(ctx, user.ID, hashSenha(novaSenha))
	if err != nil || rows < 1 {
		return errors.ErrGeneric
	}

	s.logger.Info("password reset", "user_id", user.ID)
	return nil
}

// numericCode gera n dígitos decimais com crypto/rand
func numericCode(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + digit.Int64()))
	}
	return b.String(), nil
}
