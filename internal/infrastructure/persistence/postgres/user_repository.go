package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	domainerrors "github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
	"github.com/holonet/holonet-backend/internal/domain/valueobjects"
)

const dateLayout = "2006-01-02"

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := toUserModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("email = ? AND deleted_at IS NULL", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model)
}

func (r *UserRepository) FindByCredentials(ctx context.Context, email, senhaDigest string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("email = ? AND senha = ? AND deleted_at IS NULL", email, senhaDigest).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model)
}

func (r *UserRepository) SearchByName(ctx context.Context, nome string) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&UserModel{}).
		Where("nome LIKE ? AND deleted_at IS NULL", "%"+nome+"%").
		Order("nome")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return toUserEntities(models)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) (int64, error) {
	values := map[string]any{
		"nome": user.Nome,
	}
	if !user.Nascimento.IsZero() {
		values["nascimento"] = user.Nascimento.Format(dateLayout)
	}

	db := dbFromContext(ctx, r.db)
	result := db.Model(&UserModel{}).
		Where("id = ? AND deleted_at IS NULL", user.ID).
		Updates(values)

	return result.RowsAffected, result.Error
}

func (r *UserRepository) UpdateImage(ctx context.Context, id, imagem string) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("imagem", imagem)

	return result.RowsAffected, result.Error
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, senhaDigest string) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("senha", senhaDigest)

	return result.RowsAffected, result.Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) (int64, error) {
	db := dbFromContext(ctx, r.db)
	// Soft delete: marcar deleted_at em vez de remover a linha
	result := db.Model(&UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now().Unix())

	return result.RowsAffected, result.Error
}

// Conversores

func toUserModel(user *entities.User) *UserModel {
	var deletedAt *int64
	if user.DeletedAt != nil {
		ts := user.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &UserModel{
		ID:         user.ID,
		Nome:       user.Nome,
		Email:      user.Email.String(),
		Senha:      user.Senha,
		Nascimento: user.Nascimento.Format(dateLayout),
		Imagem:     user.Imagem,
		Role:       string(user.Role),
		CreatedAt:  user.CreatedAt.Unix(),
		UpdatedAt:  user.UpdatedAt.Unix(),
		DeletedAt:  deletedAt,
	}
}

func toUserEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	// Datas inválidas viram zero value; a regra de idade trata esse caso
	nascimento, _ := time.Parse(dateLayout, model.Nascimento)

	return &entities.User{
		ID:         model.ID,
		Nome:       model.Nome,
		Email:      email,
		Senha:      model.Senha,
		Nascimento: nascimento,
		Imagem:     model.Imagem,
		Role:       entities.Role(model.Role),
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
		DeletedAt:  deletedAt,
	}, nil
}

func toUserEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := toUserEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
