package repositories

import (
	"context"

	"github.com/holonet/holonet-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Buscas retornam nil quando nada é encontrado; mutações retornam a
// quantidade de linhas afetadas, e zero sinaliza no-op para o chamador.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByCredentials(ctx context.Context, email, senhaDigest string) (*entities.User, error)
	SearchByName(ctx context.Context, nome string) ([]*entities.User, error)
	Update(ctx context.Context, user *entities.User) (int64, error)
	UpdateImage(ctx context.Context, id, imagem string) (int64, error)
	UpdatePassword(ctx context.Context, id, senhaDigest string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
