package services

import (
	"context"
	"sort"
	"strings"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	"github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/ports"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
)

// Fakes em memória para os testes de serviço. Implementam o mesmo contrato
// dos repositórios gorm, inclusive os conflitos dos índices únicos.

type nopLogger struct{}

func (nopLogger) Info(string, ...any)        {}
func (nopLogger) Error(string, ...any)       {}
func (nopLogger) Debug(string, ...any)       {}
func (nopLogger) Warn(string, ...any)        {}
func (l nopLogger) With(...any) ports.Logger { return l }

type fakeUoW struct{}

func (fakeUoW) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUoW) Commit(context.Context) error                       { return nil }
func (fakeUoW) Rollback(context.Context) error                     { return nil }
func (fakeUoW) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type memUsers struct {
	byID map[string]*entities.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[string]*entities.User)}
}

var _ repositories.UserRepository = (*memUsers)(nil)

func (m *memUsers) Create(_ context.Context, user *entities.User) error {
	for _, u := range m.byID {
		if u.Email.String() == user.Email.String() {
			return errors.ErrEmailAlreadyExists
		}
	}
	clone := *user
	m.byID[user.ID] = &clone
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id string) (*entities.User, error) {
	return m.byID[id], nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range m.byID {
		if u.Email.String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByCredentials(_ context.Context, email, senhaDigest string) (*entities.User, error) {
	for _, u := range m.byID {
		if u.Email.String() == email && u.Senha == senhaDigest {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) SearchByName(_ context.Context, nome string) ([]*entities.User, error) {
	var found []*entities.User
	for _, u := range m.byID {
		if strings.Contains(strings.ToLower(u.Nome), strings.ToLower(nome)) {
			found = append(found, u)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Nome < found[j].Nome })
	return found, nil
}

func (m *memUsers) Update(_ context.Context, user *entities.User) (int64, error) {
	existing, ok := m.byID[user.ID]
	if !ok {
		return 0, nil
	}
	existing.Nome = user.Nome
	if !user.Nascimento.IsZero() {
		existing.Nascimento = user.Nascimento
	}
	return 1, nil
}

func (m *memUsers) UpdateImage(_ context.Context, id, imagem string) (int64, error) {
	existing, ok := m.byID[id]
	if !ok {
		return 0, nil
	}
	existing.Imagem = imagem
	return 1, nil
}

func (m *memUsers) UpdatePassword(_ context.Context, id, senhaDigest string) (int64, error) {
	existing, ok := m.byID[id]
	if !ok {
		return 0, nil
	}
	existing.Senha = senhaDigest
	return 1, nil
}

func (m *memUsers) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.byID[id]; !ok {
		return 0, nil
	}
	delete(m.byID, id)
	return 1, nil
}

type memFriendships struct {
	users *memUsers
	rows  map[string]*entities.Friendship
}

func newMemFriendships(users *memUsers) *memFriendships {
	return &memFriendships{users: users, rows: make(map[string]*entities.Friendship)}
}

var _ repositories.FriendshipRepository = (*memFriendships)(nil)

func (m *memFriendships) Create(_ context.Context, friendship *entities.Friendship) error {
	for _, f := range m.rows {
		if f.RequesterID == friendship.RequesterID && f.RequestedID == friendship.RequestedID {
			return errors.ErrFriendRequestExists
		}
	}
	clone := *friendship
	m.rows[friendship.ID] = &clone
	return nil
}

func (m *memFriendships) HasPending(_ context.Context, requesterID, requestedID string) (bool, error) {
	for _, f := range m.rows {
		if f.RequesterID == requesterID && f.RequestedID == requestedID && f.IsPending() {
			return true, nil
		}
	}
	return false, nil
}

func (m *memFriendships) AreFriends(_ context.Context, userA, userB string) (bool, error) {
	for _, f := range m.rows {
		if f.Status == entities.FriendshipAccepted && f.Involves(userA) && f.Involves(userB) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memFriendships) Accept(_ context.Context, id, requestedID string) (int64, error) {
	f, ok := m.rows[id]
	if !ok || f.RequestedID != requestedID || !f.IsPending() {
		return 0, nil
	}
	f.Status = entities.FriendshipAccepted
	return 1, nil
}

func (m *memFriendships) DeleteInvolving(_ context.Context, id, userID string) (int64, error) {
	f, ok := m.rows[id]
	if !ok || !f.Involves(userID) {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

func (m *memFriendships) FindIDBetween(_ context.Context, userA, userB string) (string, error) {
	for id, f := range m.rows {
		if f.Involves(userA) && f.Involves(userB) {
			return id, nil
		}
	}
	return "", nil
}

func (m *memFriendships) ListFriends(_ context.Context, userID string) ([]*entities.User, error) {
	var friends []*entities.User
	for _, f := range m.rows {
		if f.Status != entities.FriendshipAccepted || !f.Involves(userID) {
			continue
		}
		other := f.RequesterID
		if other == userID {
			other = f.RequestedID
		}
		if u := m.users.byID[other]; u != nil {
			friends = append(friends, u)
		}
	}
	return friends, nil
}

func (m *memFriendships) ListPending(_ context.Context, userID string) ([]repositories.PendingRequest, error) {
	var pending []repositories.PendingRequest
	for id, f := range m.rows {
		if f.RequestedID != userID || !f.IsPending() {
			continue
		}
		if u := m.users.byID[f.RequesterID]; u != nil {
			pending = append(pending, repositories.PendingRequest{FriendshipID: id, Requester: u})
		}
	}
	return pending, nil
}

func (m *memFriendships) DeleteAllForUser(_ context.Context, userID string) error {
	for id, f := range m.rows {
		if f.Involves(userID) {
			delete(m.rows, id)
		}
	}
	return nil
}

type memCommunities struct {
	communities map[string]*entities.Community
	memberships []entities.CommunityMember
}

func newMemCommunities() *memCommunities {
	return &memCommunities{communities: make(map[string]*entities.Community)}
}

var _ repositories.CommunityRepository = (*memCommunities)(nil)

func (m *memCommunities) ListByUser(_ context.Context, userID string) ([]*entities.Community, error) {
	var result []*entities.Community
	for _, member := range m.memberships {
		if member.UserID != userID {
			continue
		}
		if c := m.communities[member.CommunityID]; c != nil {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *memCommunities) RemoveMemberships(_ context.Context, userID string) error {
	kept := m.memberships[:0]
	for _, member := range m.memberships {
		if member.UserID != userID {
			kept = append(kept, member)
		}
	}
	m.memberships = kept
	return nil
}

type memReports struct {
	rows []*entities.Report
}

var _ repositories.ReportRepository = (*memReports)(nil)

func (m *memReports) Create(_ context.Context, report *entities.Report) error {
	clone := *report
	m.rows = append(m.rows, &clone)
	return nil
}

func (m *memReports) List(_ context.Context) ([]*entities.Report, error) {
	reversed := make([]*entities.Report, len(m.rows))
	for i, r := range m.rows {
		reversed[len(m.rows)-1-i] = r
	}
	return reversed, nil
}

type memCodes struct {
	rows map[string]*entities.RecoveryCode
}

func newMemCodes() *memCodes {
	return &memCodes{rows: make(map[string]*entities.RecoveryCode)}
}

var _ repositories.RecoveryCodeRepository = (*memCodes)(nil)

func (m *memCodes) Create(_ context.Context, code *entities.RecoveryCode) error {
	clone := *code
	m.rows[code.ID] = &clone
	return nil
}

func (m *memCodes) FindActiveByUser(_ context.Context, userID string) (*entities.RecoveryCode, error) {
	var latest *entities.RecoveryCode
	for _, c := range m.rows {
		if c.UserID != userID || c.Consumed {
			continue
		}
		if latest == nil || c.ExpiresAt.After(latest.ExpiresAt) {
			latest = c
		}
	}
	return latest, nil
}

func (m *memCodes) Consume(_ context.Context, id string) error {
	if c, ok := m.rows[id]; ok {
		c.Consumed = true
	}
	return nil
}

func (m *memCodes) DeleteAllForUser(_ context.Context, userID string) error {
	for id, c := range m.rows {
		if c.UserID == userID {
			delete(m.rows, id)
		}
	}
	return nil
}
