package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	"github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/ports"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
	"github.com/holonet/holonet-backend/internal/domain/valueobjects"
)

const dateLayout = "2006-01-02"

// UserService contém a lógica de negócio para usuários
type UserService struct {
	users       repositories.UserRepository
	friendships repositories.FriendshipRepository
	communities repositories.CommunityRepository
	codes       repositories.RecoveryCodeRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
	now         func() time.Time
}

// NewUserService cria um novo UserService
func NewUserService(
	users repositories.UserRepository,
	friendships repositories.FriendshipRepository,
	communities repositories.CommunityRepository,
	codes repositories.RecoveryCodeRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		users:       users,
		friendships: friendships,
		communities: communities,
		codes:       codes,
		uow:         uow,
		logger:      logger,
		now:         time.Now,
	}
}

// RegisterInput representa os dados de cadastro
type RegisterInput struct {
	Nome       string
	Email      string
	Senha      string
	Nascimento string
}

// Register cadastra um novo usuário. As validações seguem a ordem do
// contrato: nome, email, senha, idade mínima, email já em uso.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	if !validNome(input.Nome) {
		return nil, errors.ErrInvalidName
	}
	if !validEmail(input.Email) {
		return nil, errors.ErrInvalidEmail
	}
	if blank(input.Senha) {
		return nil, errors.ErrPasswordRequired
	}

	nascimento, err := time.Parse(dateLayout, strings.TrimSpace(input.Nascimento))
	if err != nil {
		return nil, errors.ErrUnderage
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	user := &entities.User{
		ID:         uuid.NewString(),
		Nome:       strings.TrimSpace(input.Nome),
		Email:      email,
		Senha:      hashSenha(input.Senha),
		Nascimento: nascimento,
		Role:       entities.RoleUser,
	}

	if !user.OldEnough(s.now()) {
		return nil, errors.ErrUnderage
	}

	// Pré-checagem pelo erro específico; o índice único cobre a corrida
	existing, err := s.users.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, errors.ErrRegistrationFailed
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	if err := s.users.Create(ctx, user); err != nil {
		if stderrors.Is(err, errors.ErrEmailAlreadyExists) {
			return nil, errors.ErrEmailAlreadyExists
		}
		s.logger.Error("user registration failed", "error", err)
		return nil, errors.ErrRegistrationFailed
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", email.String())
	return user, nil
}

// Login autentica por email e senha, comparando digests
func (s *UserService) Login(ctx context.Context, email, senha string) (*entities.User, error) {
	if !validEmail(email) {
		return nil, errors.ErrInvalidEmail
	}
	if blank(senha) {
		return nil, errors.ErrInvalidPassword
	}

	normalized := strings.TrimSpace(strings.ToLower(email))
	user, err := s.users.FindByCredentials(ctx, normalized, hashSenha(senha))
	if err != nil || user == nil {
		// Mensagem genérica: não revelar se email existe ou senha errou
		return nil, errors.ErrLoginFailed
	}

	return user, nil
}

// Find busca um usuário por email ou id; email tem precedência.
// Retorna nil sem erro quando nada é encontrado.
func (s *UserService) Find(ctx context.Context, email, id string) (*entities.User, error) {
	if email == "" && id == "" {
		return nil, errors.ErrMissingFields
	}

	var (
		user *entities.User
		err  error
	)
	if email != "" {
		user, err = s.users.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	} else {
		user, err = s.users.FindByID(ctx, id)
	}
	if err != nil {
		return nil, errors.ErrGeneric
	}

	return user, nil
}

// SearchByName busca usuários por substring do nome
func (s *UserService) SearchByName(ctx context.Context, nome string) ([]*entities.User, error) {
	users, err := s.users.SearchByName(ctx, nome)
	if err != nil {
		return nil, errors.ErrGeneric
	}
	if len(users) == 0 {
		return nil, errors.ErrNoUsersFound
	}

	return users, nil
}

// UpdateProfile altera nome e, quando informado, a data de nascimento
func (s *UserService) UpdateProfile(ctx context.Context, id, nome, nascimento string) error {
	if !validNome(nome) {
		return errors.ErrInvalidName
	}

	user := &entities.User{
		ID:   id,
		Nome: strings.TrimSpace(nome),
	}
	if !blank(nascimento) {
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(nascimento))
		if err != nil {
			return errors.ErrInvalidFields
		}
		user.Nascimento = parsed
	}

	rows, err := s.users.Update(ctx, user)
	if err != nil || rows < 1 {
		return errors.ErrProfileUpdate
	}

	return nil
}

// UpdateImage grava o caminho público da nova imagem de perfil
func (s *UserService) UpdateImage(ctx context.Context, id, imagem string) error {
	rows, err := s.users.UpdateImage(ctx, id, imagem)
	if err != nil || rows < 1 {
		return errors.ErrImageUpdate
	}

	return nil
}

// Delete remove a conta e, em cascata na mesma transação, as amizades,
// participações em comunidades e códigos de recuperação
func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.friendships.DeleteAllForUser(txCtx, id); err != nil {
			return err
		}
		if err := s.communities.RemoveMemberships(txCtx, id); err != nil {
			return err
		}
		if err := s.codes.DeleteAllForUser(txCtx, id); err != nil {
			return err
		}

		rows, err := s.users.Delete(txCtx, id)
		if err != nil {
			return err
		}
		if rows < 1 {
			return errors.ErrGeneric
		}
		return nil
	})
	if err != nil {
		s.logger.Error("account deletion failed", "user_id", id, "error", err)
		return errors.ErrGeneric
	}

	s.logger.Info("account deleted", "user_id", id)
	return nil
}
