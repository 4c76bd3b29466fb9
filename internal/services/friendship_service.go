package services

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	"github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/ports"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
)

// Situações aceitas pelo endpoint de resposta a pedido de amizade
const (
	SituacaoAceitar = "A"
	SituacaoNegar   = "N"
)

// FriendshipService contém a lógica de negócio para amizades
type FriendshipService struct {
	friendships repositories.FriendshipRepository
	users       repositories.UserRepository
	logger      ports.Logger
}

// NewFriendshipService cria um novo FriendshipService
func NewFriendshipService(
	friendships repositories.FriendshipRepository,
	users repositories.UserRepository,
	logger ports.Logger,
) *FriendshipService {
	return &FriendshipService{
		friendships: friendships,
		users:       users,
		logger:      logger,
	}
}

// Request cria um pedido de amizade direcionado. Pedido pendente na mesma
// direção ou amizade mútua em qualquer direção são rejeitados; o índice
// único do storage decide corridas entre pedidos idênticos.
func (s *FriendshipService) Request(ctx context.Context, requesterID, requestedID string) error {
	if requestedID == "" || requesterID == requestedID {
		return errors.ErrInvalidFields
	}

	target, err := s.users.FindByID(ctx, requestedID)
	if err != nil {
		return errors.ErrGeneric
	}
	if target == nil {
		return errors.ErrUserNotFound
	}

	pending, err := s.friendships.HasPending(ctx, requesterID, requestedID)
	if err != nil {
		return errors.ErrGeneric
	}
	if pending {
		return errors.ErrFriendRequestExists
	}

	friends, err := s.friendships.AreFriends(ctx, requesterID, requestedID)
	if err != nil {
		return errors.ErrGeneric
	}
	if friends {
		return errors.ErrAlreadyFriends
	}

	friendship := &entities.Friendship{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		RequestedID: requestedID,
		Status:      entities.FriendshipPending,
	}

	if err := s.friendships.Create(ctx, friendship); err != nil {
		if stderrors.Is(err, errors.ErrFriendRequestExists) {
			return errors.ErrFriendRequestExists
		}
		s.logger.Error("friend request failed", "error", err)
		return errors.ErrGeneric
	}

	s.logger.Info("friend request sent",
		"requester_id", requesterID,
		"requested_id", requestedID,
	)
	return nil
}

// Respond aceita (A) ou recusa (N) um pedido. Só a parte envolvida na
// relação consegue afetar a linha.
func (s *FriendshipService) Respond(ctx context.Context, id, userID, situacao string) error {
	if id == "" || (situacao != SituacaoAceitar && situacao != SituacaoNegar) {
		return errors.ErrInvalidFields
	}

	if situacao == SituacaoAceitar {
		rows, err := s.friendships.Accept(ctx, id, userID)
		if err != nil || rows < 1 {
			return errors.ErrAcceptFailed
		}
		return nil
	}

	rows, err := s.friendships.DeleteInvolving(ctx, id, userID)
	if err != nil || rows < 1 {
		return errors.ErrRejectFailed
	}
	return nil
}

// Remove desfaz uma amizade. Com type=user o id é do outro usuário e a
// relação é resolvida em qualquer direção; com type=request o id é da
// própria relação.
func (s *FriendshipService) Remove(ctx context.Context, id, removeType, userID string) error {
	if id == "" || removeType == "" {
		return errors.ErrInvalidFields
	}

	switch removeType {
	case "user":
		friendshipID, err := s.friendships.FindIDBetween(ctx, id, userID)
		if err != nil {
			return errors.ErrGeneric
		}
		if friendshipID == "" {
			return errors.ErrFriendshipNotFound
		}
		id = friendshipID
	case "request":
		// id já é o da relação
	default:
		return errors.ErrInvalidFields
	}

	rows, err := s.friendships.DeleteInvolving(ctx, id, userID)
	if err != nil || rows < 1 {
		return errors.ErrUnfriendFailed
	}

	return nil
}

// ListFriends lista os amigos (relações aceitas) de um usuário existente
func (s *FriendshipService) ListFriends(ctx context.Context, userID string) ([]*entities.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrGeneric
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	friends, err := s.friendships.ListFriends(ctx, userID)
	if err != nil {
		return nil, errors.ErrGeneric
	}

	return friends, nil
}

// ListPending lista os pedidos pendentes endereçados ao usuário
func (s *FriendshipService) ListPending(ctx context.Context, userID string) ([]repositories.PendingRequest, error) {
	pending, err := s.friendships.ListPending(ctx, userID)
	if err != nil {
		return nil, errors.ErrGeneric
	}

	return pending, nil
}
