package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
)

// CommunityRepository implementa repositories.CommunityRepository
type CommunityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository cria um novo CommunityRepository
func NewCommunityRepository(db *gorm.DB) repositories.CommunityRepository {
	return &CommunityRepository{db: db}
}

func (r *CommunityRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Community, error) {
	db := dbFromContext(ctx, r.db)

	var memberships []*CommunityMemberModel
	if err := db.Where("user_id = ?", userID).Find(&memberships).Error; err != nil {
		return nil, err
	}

	if len(memberships) == 0 {
		return []*entities.Community{}, nil
	}

	communityIDs := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		communityIDs = append(communityIDs, membership.CommunityID)
	}

	var models []*CommunityModel
	err := db.Model(&CommunityModel{}).
		Where("id IN ?", communityIDs).
		Order("nome").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	communities := make([]*entities.Community, 0, len(models))
	for _, model := range models {
		communities = append(communities, &entities.Community{
			ID:        model.ID,
			Nome:      model.Nome,
			Descricao: model.Descricao,
			Imagem:    model.Imagem,
			CreatedAt: time.Unix(model.CreatedAt, 0),
		})
	}

	return communities, nil
}

func (r *CommunityRepository) RemoveMemberships(ctx context.Context, userID string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("user_id = ?", userID).Delete(&CommunityMemberModel{}).Error
}
