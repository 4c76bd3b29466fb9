package dto

import (
	"github.com/holonet/holonet-backend/internal/domain/repositories"
)

// FriendRequestRequest representa um pedido de amizade
type FriendRequestRequest struct {
	UsuarioSolicitado string `json:"usuarioSolicitado"`
}

// PendingRequestResponse representa um pedido pendente endereçado ao
// usuário, com o id da relação para aceite ou recusa
type PendingRequestResponse struct {
	ID          string       `json:"id"`
	Solicitante UserResponse `json:"solicitante"`
}

// ToPendingRequestResponses converte a lista de pedidos pendentes
func ToPendingRequestResponses(pending []repositories.PendingRequest) []PendingRequestResponse {
	responses := make([]PendingRequestResponse, len(pending))
	for i, p := range pending {
		responses[i] = PendingRequestResponse{
			ID:          p.FriendshipID,
			Solicitante: ToUserResponse(p.Requester),
		}
	}
	return responses
}
