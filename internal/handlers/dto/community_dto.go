package dto

import (
	"github.com/holonet/holonet-backend/internal/domain/entities"
)

// CommunityResponse representa uma comunidade nas respostas
type CommunityResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	Imagem    string `json:"imagem,omitempty"`
}

// ToCommunityResponses converte uma lista de entidades Community
func ToCommunityResponses(communities []*entities.Community) []CommunityResponse {
	responses := make([]CommunityResponse, len(communities))
	for i, community := range communities {
		responses[i] = CommunityResponse{
			ID:        community.ID,
			Nome:      community.Nome,
			Descricao: community.Descricao,
			Imagem:    community.Imagem,
		}
	}
	return responses
}
