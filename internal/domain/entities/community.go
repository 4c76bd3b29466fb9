package entities

import "time"

// Community representa uma comunidade temática da rede
type Community struct {
	ID        string
	Nome      string
	Descricao string
	Imagem    string
	CreatedAt time.Time
}

// CommunityMember representa a participação de um usuário em uma comunidade
type CommunityMember struct {
	UserID      string
	CommunityID string
	JoinedAt    time.Time
}
