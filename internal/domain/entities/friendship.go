package entities

import "time"

// FriendshipStatus representa a situação de uma relação de amizade
type FriendshipStatus string

const (
	// FriendshipPending indica um pedido enviado e ainda não respondido
	FriendshipPending FriendshipStatus = "P"
	// FriendshipAccepted indica uma amizade mútua
	FriendshipAccepted FriendshipStatus = "A"
)

// Friendship representa um pedido de amizade direcionado que, quando aceito,
// passa a valer como relação mútua
type Friendship struct {
	ID          string
	RequesterID string
	RequestedID string
	Status      FriendshipStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPending verifica se o pedido ainda aguarda resposta
func (f *Friendship) IsPending() bool {
	return f.Status == FriendshipPending
}

// Involves verifica se o usuário participa da relação em qualquer direção
func (f *Friendship) Involves(userID string) bool {
	return f.RequesterID == userID || f.RequestedID == userID
}
