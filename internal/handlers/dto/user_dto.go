package dto

import (
	"github.com/holonet/holonet-backend/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// RegisterRequest representa a requisição de cadastro
type RegisterRequest struct {
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	Senha      string `json:"senha"`
	Nascimento string `json:"nascimento"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse ecoa a identidade do usuário junto com o token
type LoginResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// UpdateProfileRequest representa a requisição de edição de perfil
type UpdateProfileRequest struct {
	Nome       string `json:"nome"`
	Nascimento string `json:"nascimento"`
}

// RecoveryCodeRequest solicita um código de recuperação de senha
type RecoveryCodeRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest troca a senha usando um código de recuperação
type ResetPasswordRequest struct {
	Email  string `json:"email"`
	Codigo string `json:"codigo"`
	Senha  string `json:"senha"`
}

// UserResponse representa um usuário nas respostas. O digest de senha
// nunca é serializado.
type UserResponse struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	Nascimento string `json:"nascimento"`
	Imagem     string `json:"imagem,omitempty"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	nascimento := ""
	if !user.Nascimento.IsZero() {
		nascimento = user.Nascimento.Format(dateLayout)
	}

	return UserResponse{
		ID:         user.ID,
		Nome:       user.Nome,
		Email:      user.Email.String(),
		Nascimento: nascimento,
		Imagem:     user.Imagem,
	}
}

// ToUserResponses converte uma lista de entidades User
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
