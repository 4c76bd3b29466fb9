package services

import (
	"context"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	"github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/ports"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
)

// CommunityService contém a lógica de negócio para comunidades
type CommunityService struct {
	communities repositories.CommunityRepository
	users       repositories.UserRepository
	logger      ports.Logger
}

// NewCommunityService cria um novo CommunityService
func NewCommunityService(
	communities repositories.CommunityRepository,
	users repositories.UserRepository,
	logger ports.Logger,
) *CommunityService {
	return &CommunityService{
		communities: communities,
		users:       users,
		logger:      logger,
	}
}

// ListUserCommunities lista as comunidades de um usuário existente
func (s *CommunityService) ListUserCommunities(ctx context.Context, userID string) ([]*entities.Community, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrGeneric
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	communities, err := s.communities.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.ErrGeneric
	}

	return communities, nil
}
