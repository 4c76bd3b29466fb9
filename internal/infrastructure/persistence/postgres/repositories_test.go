package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	domainerrors "github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/valueobjects"
)

// newTestDB abre um sqlite em memória com o mesmo schema e a mesma
// tradução de erros da conexão postgres
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("falha inesperada ao abrir sqlite: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("falha inesperada ao migrar schema: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, nome, email string) *entities.User {
	t.Helper()

	vo, err := valueobjects.NewEmail(email)
	if err != nil {
		t.Fatalf("email de teste inválido: %v", err)
	}

	user := &entities.User{
		ID:         uuid.NewString(),
		Nome:       nome,
		Email:      vo,
		Senha:      "0000000000000000000000000000000000000000000000000000000000000000",
		Nascimento: time.Date(1990, 5, 4, 0, 0, 0, 0, time.UTC),
		Role:       entities.RoleUser,
	}

	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("falha inesperada ao criar usuário: %v", err)
	}

	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("cria e busca por id e email", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		created := seedUser(t, db, "Luke Skywalker", "luke@alianca.com")

		byID, err := repo.FindByID(ctx, created.ID)
		if err != nil || byID == nil {
			t.Fatalf("FindByID = (%v, %v), esperava usuário", byID, err)
		}
		if byID.Nascimento.Format("2006-01-02") != "1990-05-04" {
			t.Errorf("nascimento = %v, esperava 1990-05-04", byID.Nascimento)
		}

		byEmail, err := repo.FindByEmail(ctx, "luke@alianca.com")
		if err != nil || byEmail == nil || byEmail.ID != created.ID {
			t.Fatalf("FindByEmail = (%v, %v), esperava o mesmo usuário", byEmail, err)
		}
	})

	t.Run("email duplicado vira erro de domínio", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		seedUser(t, db, "Luke Skywalker", "luke@alianca.com")

		vo, _ := valueobjects.NewEmail("luke@alianca.com")
		err := repo.Create(ctx, &entities.User{
			ID:    uuid.NewString(),
			Nome:  "Clone",
			Email: vo,
			Senha: "1111111111111111111111111111111111111111111111111111111111111111",
			Role:  entities.RoleUser,
		})
		if err != domainerrors.ErrEmailAlreadyExists {
			t.Errorf("Create = %v, esperava ErrEmailAlreadyExists", err)
		}
	})

	t.Run("busca por credenciais", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		created := seedUser(t, db, "Luke Skywalker", "luke@alianca.com")

		found, err := repo.FindByCredentials(ctx, "luke@alianca.com", created.Senha)
		if err != nil || found == nil {
			t.Fatalf("FindByCredentials = (%v, %v), esperava usuário", found, err)
		}

		wrong, err := repo.FindByCredentials(ctx, "luke@alianca.com", "digest-errado")
		if err != nil || wrong != nil {
			t.Errorf("FindByCredentials com digest errado = (%v, %v), esperava nil", wrong, err)
		}
	})

	t.Run("busca por trecho do nome", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		seedUser(t, db, "Luke Skywalker", "luke@alianca.com")
		seedUser(t, db, "Leia Organa", "leia@alianca.com")

		found, err := repo.SearchByName(ctx, "Skywalker")
		if err != nil {
			t.Fatalf("SearchByName: %v", err)
		}
		if len(found) != 1 || found[0].Nome != "Luke Skywalker" {
			t.Errorf("SearchByName = %v, esperava apenas Luke", found)
		}
	})

	t.Run("soft delete esconde o usuário de todas as buscas", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		created := seedUser(t, db, "Luke Skywalker", "luke@alianca.com")

		rows, err := repo.Delete(ctx, created.ID)
		if err != nil || rows != 1 {
			t.Fatalf("Delete = (%d, %v), esperava 1 linha", rows, err)
		}

		if found, _ := repo.FindByID(ctx, created.ID); found != nil {
			t.Error("FindByID deveria ignorar usuário deletado")
		}
		if found, _ := repo.FindByEmail(ctx, "luke@alianca.com"); found != nil {
			t.Error("FindByEmail deveria ignorar usuário deletado")
		}
		if found, _ := repo.FindByCredentials(ctx, "luke@alianca.com", created.Senha); found != nil {
			t.Error("FindByCredentials deveria ignorar usuário deletado")
		}

		// Segundo delete é no-op
		rows, err = repo.Delete(ctx, created.ID)
		if err != nil || rows != 0 {
			t.Errorf("Delete repetido = (%d, %v), esperava 0 linhas", rows, err)
		}
	})

	t.Run("mutações reportam linhas afetadas", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		created := seedUser(t, db, "Luke Skywalker", "luke@alianca.com")

		rows, err := repo.UpdateImage(ctx, created.ID, "storage/users/foto.png")
		if err != nil || rows != 1 {
			t.Errorf("UpdateImage = (%d, %v), esperava 1 linha", rows, err)
		}

		rows, err = repo.UpdateImage(ctx, "fantasma", "storage/users/foto.png")
		if err != nil || rows != 0 {
			t.Errorf("UpdateImage de fantasma = (%d, %v), esperava 0 linhas", rows, err)
		}
	})
}

func TestFriendshipRepository(t *testing.T) {
	ctx := context.Background()

	seedPair := func(t *testing.T) (*gorm.DB, *entities.User, *entities.User) {
		db := newTestDB(t)
		luke := seedUser(t, db, "Luke Skywalker", "luke@alianca.com")
		leia := seedUser(t, db, "Leia Organa", "leia@alianca.com")
		return db, luke, leia
	}

	request := func(t *testing.T, db *gorm.DB, requesterID, requestedID string) string {
		t.Helper()
		id := uuid.NewString()
		err := NewFriendshipRepository(db).Create(ctx, &entities.Friendship{
			ID:          id,
			RequesterID: requesterID,
			RequestedID: requestedID,
			Status:      entities.FriendshipPending,
		})
		if err != nil {
			t.Fatalf("falha inesperada ao criar pedido: %v", err)
		}
		return id
	}

	t.Run("índice único barra pedido duplicado", func(t *testing.T) {
		db, luke, leia := seedPair(t)
		repo := NewFriendshipRepository(db)
		request(t, db, luke.ID, leia.ID)

		err := repo.Create(ctx, &entities.Friendship{
			ID:          uuid.NewString(),
			RequesterID: luke.ID,
			RequestedID: leia.ID,
			Status:      entities.FriendshipPending,
		})
		if err != domainerrors.ErrFriendRequestExists {
			t.Errorf("Create duplicado = %v, esperava ErrFriendRequestExists", err)
		}
	})

	t.Run("só a parte solicitada aceita", func(t *testing.T) {
		db, luke, leia := seedPair(t)
		repo := NewFriendshipRepository(db)
		id := request(t, db, luke.ID, leia.ID)

		rows, err := repo.Accept(ctx, id, luke.ID)
		if err != nil || rows != 0 {
			t.Errorf("Accept pelo solicitante = (%d, %v), esperava 0 linhas", rows, err)
		}

		rows, err = repo.Accept(ctx, id, leia.ID)
		if err != nil || rows != 1 {
			t.Fatalf("Accept pela parte solicitada = (%d, %v), esperava 1 linha", rows, err)
		}

		friends, err := repo.ListFriends(ctx, luke.ID)
		if err != nil || len(friends) != 1 || friends[0].ID != leia.ID {
			t.Errorf("ListFriends = (%v, %v), esperava Leia", friends, err)
		}

		// Amizade vale nas duas direções
		mutual, err := repo.AreFriends(ctx, leia.ID, luke.ID)
		if err != nil || !mutual {
			t.Errorf("AreFriends = (%v, %v), esperava true", mutual, err)
		}
	})

	t.Run("remoção exige participação na relação", func(t *testing.T) {
		db, luke, leia := seedPair(t)
		han := seedUser(t, db, "Han Solo", "han@alianca.com")
		repo := NewFriendshipRepository(db)
		id := request(t, db, luke.ID, leia.ID)

		rows, err := repo.DeleteInvolving(ctx, id, han.ID)
		if err != nil || rows != 0 {
			t.Errorf("DeleteInvolving por terceiro = (%d, %v), esperava 0 linhas", rows, err)
		}

		rows, err = repo.DeleteInvolving(ctx, id, leia.ID)
		if err != nil || rows != 1 {
			t.Errorf("DeleteInvolving pela parte = (%d, %v), esperava 1 linha", rows, err)
		}
	})

	t.Run("pedidos pendentes trazem o solicitante", func(t *testing.T) {
		db, luke, leia := seedPair(t)
		repo := NewFriendshipRepository(db)
		id := request(t, db, luke.ID, leia.ID)

		pending, err := repo.ListPending(ctx, leia.ID)
		if err != nil || len(pending) != 1 {
			t.Fatalf("ListPending = (%v, %v), esperava 1 pedido", pending, err)
		}
		if pending[0].FriendshipID != id || pending[0].Requester.ID != luke.ID {
			t.Errorf("pedido = %+v, esperava relação %s de Luke", pending[0], id)
		}

		// Nada pendente para o solicitante
		none, err := repo.ListPending(ctx, luke.ID)
		if err != nil || len(none) != 0 {
			t.Errorf("ListPending do solicitante = (%v, %v), esperava vazio", none, err)
		}
	})

	t.Run("cascata remove as relações do usuário", func(t *testing.T) {
		db, luke, leia := seedPair(t)
		han := seedUser(t, db, "Han Solo", "han@alianca.com")
		repo := NewFriendshipRepository(db)
		request(t, db, luke.ID, leia.ID)
		request(t, db, han.ID, luke.ID)

		if err := repo.DeleteAllForUser(ctx, luke.ID); err != nil {
			t.Fatalf("DeleteAllForUser: %v", err)
		}

		if id, _ := repo.FindIDBetween(ctx, luke.ID, leia.ID); id != "" {
			t.Error("relação com Leia deveria ter sido removida")
		}
		if id, _ := repo.FindIDBetween(ctx, han.ID, luke.ID); id != "" {
			t.Error("relação com Han deveria ter sido removida")
		}
	})
}

func TestRecoveryCodeRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	luke := seedUser(t, db, "Luke Skywalker", "luke@alianca.com")
	repo := NewRecoveryCodeRepository(db)

	code := &entities.RecoveryCode{
		ID:        uuid.NewString(),
		UserID:    luke.ID,
		CodeHash:  "$2a$10$hash",
		ExpiresAt: time.Now().Add(entities.RecoveryCodeTTL),
	}
	if err := repo.Create(ctx, code); err != nil {
		t.Fatalf("falha inesperada ao criar código: %v", err)
	}

	active, err := repo.FindActiveByUser(ctx, luke.ID)
	if err != nil || active == nil || active.ID != code.ID {
		t.Fatalf("FindActiveByUser = (%v, %v), esperava o código criado", active, err)
	}

	if err := repo.Consume(ctx, code.ID); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	if active, _ := repo.FindActiveByUser(ctx, luke.ID); active != nil {
		t.Error("código consumido não deveria constar como ativo")
	}
}

func TestUnitOfWorkRollback(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)
	uow := NewUnitOfWork(db)
	luke := seedUser(t, db, "Luke Skywalker", "luke@alianca.com")

	sentinel := domainerrors.ErrGeneric
	err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := repo.Delete(txCtx, luke.ID); err != nil {
			return err
		}
		return sentinel
	})
	if err == nil {
		t.Fatal("esperava erro propagado pela transação")
	}

	// Rollback: o usuário continua lá
	found, err := repo.FindByID(ctx, luke.ID)
	if err != nil || found == nil {
		t.Errorf("FindByID após rollback = (%v, %v), esperava usuário", found, err)
	}
}
