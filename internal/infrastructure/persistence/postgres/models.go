package postgres

import "gorm.io/gorm"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID         string `gorm:"type:uuid;primary_key"`
	Nome       string `gorm:"type:varchar(100);not null;index"`
	Email      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Senha      string `gorm:"type:char(64);not null"` // digest SHA-256 em hex
	Nascimento string `gorm:"type:date;not null"`
	Imagem     string `gorm:"type:varchar(500)"`
	Role       string `gorm:"type:varchar(50);not null"`
	CreatedAt  int64  `gorm:"autoCreateTime"`
	UpdatedAt  int64  `gorm:"autoUpdateTime"`
	DeletedAt  *int64 `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "usuarios"
}

// FriendshipModel é o model GORM para pedidos de amizade e amizades.
// O índice único no par (requester, requested) é o árbitro final contra
// pedidos duplicados em corrida.
type FriendshipModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	RequesterID string `gorm:"type:uuid;not null;uniqueIndex:idx_amizade_par;index"`
	RequestedID string `gorm:"type:uuid;not null;uniqueIndex:idx_amizade_par;index"`
	Situacao    string `gorm:"type:char(1);not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
}

func (FriendshipModel) TableName() string {
	return "amizades"
}

// CommunityModel é o model GORM para comunidades
type CommunityModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	Nome      string `gorm:"type:varchar(100);not null"`
	Descricao string `gorm:"type:varchar(500)"`
	Imagem    string `gorm:"type:varchar(500)"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (CommunityModel) TableName() string {
	return "comunidades"
}

// CommunityMemberModel é o model GORM para participação em comunidades
type CommunityMemberModel struct {
	UserID      string `gorm:"type:uuid;not null;uniqueIndex:idx_membro;index"`
	CommunityID string `gorm:"type:uuid;not null;uniqueIndex:idx_membro"`
	JoinedAt    int64  `gorm:"autoCreateTime"`
}

func (CommunityMemberModel) TableName() string {
	return "comunidade_membros"
}

// ReportModel é o model GORM para denúncias
type ReportModel struct {
	ID            string `gorm:"type:uuid;primary_key"`
	ReporterID    string `gorm:"type:uuid;not null;index"`
	ReporterEmail string `gorm:"type:varchar(255);not null"`
	ReportedID    string `gorm:"type:uuid;not null;index"`
	Motivo        string `gorm:"type:varchar(500);not null"`
	CreatedAt     int64  `gorm:"autoCreateTime"`
}

func (ReportModel) TableName() string {
	return "denuncias"
}

// RecoveryCodeModel é o model GORM para códigos de recuperação de senha
type RecoveryCodeModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;not null;index"`
	CodeHash  string `gorm:"type:varchar(255);not null"` // digest bcrypt
	ExpiresAt int64  `gorm:"not null"`
	Consumed  bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (RecoveryCodeModel) TableName() string {
	return "codigos_recuperacao"
}

// Migrate aplica o schema de todos os models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&FriendshipModel{},
		&CommunityModel{},
		&CommunityMemberModel{},
		&ReportModel{},
		&RecoveryCodeModel{},
	)
}
