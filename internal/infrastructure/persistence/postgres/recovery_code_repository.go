package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
)

// RecoveryCodeRepository implementa repositories.RecoveryCodeRepository
type RecoveryCodeRepository struct {
	db *gorm.DB
}

// NewRecoveryCodeRepository cria um novo RecoveryCodeRepository
func NewRecoveryCodeRepository(db *gorm.DB) repositories.RecoveryCodeRepository {
	return &RecoveryCodeRepository{db: db}
}

func (r *RecoveryCodeRepository) Create(ctx context.Context, code *entities.RecoveryCode) error {
	model := &RecoveryCodeModel{
		ID:        code.ID,
		UserID:    code.UserID,
		CodeHash:  code.CodeHash,
		ExpiresAt: code.ExpiresAt.Unix(),
		Consumed:  code.Consumed,
	}

	db := dbFromContext(ctx, r.db)
	return db.Create(model).Error
}

func (r *RecoveryCodeRepository) FindActiveByUser(ctx context.Context, userID string) (*entities.RecoveryCode, error) {
	var model RecoveryCodeModel

	db := dbFromContext(ctx, r.db)
	err := db.
		Where("user_id = ? AND consumed = ?", userID, false).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.RecoveryCode{
		ID:        model.ID,
		UserID:    model.UserID,
		CodeHash:  model.CodeHash,
		ExpiresAt: time.Unix(model.ExpiresAt, 0),
		Consumed:  model.Consumed,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}, nil
}

func (r *RecoveryCodeRepository) Consume(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&RecoveryCodeModel{}).
		Where("id = ?", id).
		Update("consumed", true).Error
}

func (r *RecoveryCodeRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("user_id = ?", userID).Delete(&RecoveryCodeModel{}).Error
}
