package repositories

import (
	"context"

	"github.com/holonet/holonet-backend/internal/domain/entities"
)

// PendingRequest é um pedido de amizade pendente endereçado a um usuário,
// com o id da relação para aceite ou recusa
type PendingRequest struct {
	FriendshipID string
	Requester    *entities.User
}

// FriendshipRepository define a interface para persistência de amizades
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *entities.Friendship) error

	// HasPending verifica pedido pendente na mesma direção
	HasPending(ctx context.Context, requesterID, requestedID string) (bool, error)

	// AreFriends verifica amizade aceita em qualquer direção
	AreFriends(ctx context.Context, userA, userB string) (bool, error)

	// Accept efetiva o pedido apenas quando requestedID é a parte solicitada
	Accept(ctx context.Context, id, requestedID string) (int64, error)

	// DeleteInvolving remove a relação apenas quando userID participa dela
	DeleteInvolving(ctx context.Context, id, userID string) (int64, error)

	// FindIDBetween retorna o id da relação entre dois usuários em qualquer
	// direção, ou vazio quando não existe
	FindIDBetween(ctx context.Context, userA, userB string) (string, error)

	ListFriends(ctx context.Context, userID string) ([]*entities.User, error)
	ListPending(ctx context.Context, userID string) ([]PendingRequest, error)

	// DeleteAllForUser remove todas as relações do usuário (cascata de conta)
	DeleteAllForUser(ctx context.Context, userID string) error
}
