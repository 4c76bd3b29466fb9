package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	domainerrors "github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
)

// FriendshipRepository implementa repositories.FriendshipRepository
type FriendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository cria um novo FriendshipRepository
func NewFriendshipRepository(db *gorm.DB) repositories.FriendshipRepository {
	return &FriendshipRepository{db: db}
}

func (r *FriendshipRepository) Create(ctx context.Context, friendship *entities.Friendship) error {
	model := &FriendshipModel{
		ID:          friendship.ID,
		RequesterID: friendship.RequesterID,
		RequestedID: friendship.RequestedID,
		Situacao:    string(friendship.Status),
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		// Índice único (requester, requested): perdedor da corrida cai aqui
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrFriendRequestExists
		}
		return err
	}

	return nil
}

func (r *FriendshipRepository) HasPending(ctx context.Context, requesterID, requestedID string) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&FriendshipModel{}).
		Where("requester_id = ? AND requested_id = ? AND situacao = ?",
			requesterID, requestedID, string(entities.FriendshipPending)).
		Count(&count).Error

	return count > 0, err
}

func (r *FriendshipRepository) AreFriends(ctx context.Context, userA, userB string) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&FriendshipModel{}).
		Where("situacao = ?", string(entities.FriendshipAccepted)).
		Where("(requester_id = ? AND requested_id = ?) OR (requester_id = ? AND requested_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error

	return count > 0, err
}

func (r *FriendshipRepository) Accept(ctx context.Context, id, requestedID string) (int64, error) {
	db := dbFromContext(ctx, r.db)
	// Apenas a parte solicitada pode aceitar
	result := db.Model(&FriendshipModel{}).
		Where("id = ? AND requested_id = ? AND situacao = ?",
			id, requestedID, string(entities.FriendshipPending)).
		Update("situacao", string(entities.FriendshipAccepted))

	return result.RowsAffected, result.Error
}

func (r *FriendshipRepository) DeleteInvolving(ctx context.Context, id, userID string) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.
		Where("id = ? AND (requester_id = ? OR requested_id = ?)", id, userID, userID).
		Delete(&FriendshipModel{})

	return result.RowsAffected, result.Error
}

func (r *FriendshipRepository) FindIDBetween(ctx context.Context, userA, userB string) (string, error) {
	var model FriendshipModel

	db := dbFromContext(ctx, r.db)
	err := db.
		Where("(requester_id = ? AND requested_id = ?) OR (requester_id = ? AND requested_id = ?)",
			userA, userB, userB, userA).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	return model.ID, nil
}

func (r *FriendshipRepository) ListFriends(ctx context.Context, userID string) ([]*entities.User, error) {
	db := dbFromContext(ctx, r.db)

	var rows []*FriendshipModel
	err := db.
		Where("situacao = ?", string(entities.FriendshipAccepted)).
		Where("requester_id = ? OR requested_id = ?", userID, userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	friendIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.RequesterID == userID {
			friendIDs = append(friendIDs, row.RequestedID)
		} else {
			friendIDs = append(friendIDs, row.RequesterID)
		}
	}

	if len(friendIDs) == 0 {
		return []*entities.User{}, nil
	}

	var models []*UserModel
	err = db.Model(&UserModel{}).
		Where("id IN ? AND deleted_at IS NULL", friendIDs).
		Order("nome").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toUserEntities(models)
}

func (r *FriendshipRepository) ListPending(ctx context.Context, userID string) ([]repositories.PendingRequest, error) {
	db := dbFromContext(ctx, r.db)

	var rows []*FriendshipModel
	err := db.
		Where("requested_id = ? AND situacao = ?", userID, string(entities.FriendshipPending)).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []repositories.PendingRequest{}, nil
	}

	requesterIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		requesterIDs = append(requesterIDs, row.RequesterID)
	}

	var models []*UserModel
	err = db.Model(&UserModel{}).
		Where("id IN ? AND deleted_at IS NULL", requesterIDs).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*UserModel, len(models))
	for _, model := range models {
		byID[model.ID] = model
	}

	pending := make([]repositories.PendingRequest, 0, len(rows))
	for _, row := range rows {
		model, ok := byID[row.RequesterID]
		if !ok {
			// Solicitante deletado entre as consultas
			continue
		}
		requester, err := toUserEntity(model)
		if err != nil {
			return nil, err
		}
		pending = append(pending, repositories.PendingRequest{
			FriendshipID: row.ID,
			Requester:    requester,
		})
	}

	return pending, nil
}

func (r *FriendshipRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	db := dbFromContext(ctx, r.db)
	return db.
		Where("requester_id = ? OR requested_id = ?", userID, userID).
		Delete(&FriendshipModel{}).Error
}
