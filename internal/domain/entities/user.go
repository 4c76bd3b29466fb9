package entities

import (
	"errors"
	"time"

	"github.com/holonet/holonet-backend/internal/domain/valueobjects"
)

// MinimumAge é a idade mínima permitida para cadastro
const MinimumAge = 13

// User representa um usuário da rede
type User struct {
	ID         string
	Nome       string
	Email      valueobjects.Email
	Senha      string // digest SHA-256 em hex, nunca a senha em claro
	Nascimento time.Time
	Imagem     string
	Role       Role
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft delete
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// OldEnough aplica a regra de idade mínima por subtração de ano calendário
func (u *User) OldEnough(now time.Time) bool {
	if u.Nascimento.IsZero() {
		return false
	}
	return now.Year()-u.Nascimento.Year() >= MinimumAge
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Nome == "" {
		return errors.New("nome is required")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Senha == "" {
		return errors.New("senha digest is required")
	}

	if u.Role != RoleAdmin && u.Role != RoleUser {
		return errors.New("invalid role")
	}

	return nil
}
