package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// Local armazena arquivos enviados em disco local, espelhando o layout
// público servido em /storage/users e /storage/communities
type Local struct {
	root string
}

// NewLocal cria o storage garantindo os diretórios de destino
func NewLocal(root string) (*Local, error) {
	for _, dir := range []string{"users", "communities"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage dir: %w", err)
		}
	}
	return &Local{root: root}, nil
}

// UsersDir retorna o diretório local de imagens de usuários
func (l *Local) UsersDir() string {
	return filepath.Join(l.root, "users")
}

// CommunitiesDir retorna o diretório local de imagens de comunidades
func (l *Local) CommunitiesDir() string {
	return filepath.Join(l.root, "communities")
}

// SaveUserImage persiste o upload em disco com nome aleatório e retorna o
// caminho público do arquivo (storage/users/...)
func (l *Local) SaveUserImage(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)

	dst, err := os.Create(filepath.Join(l.UsersDir(), name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join("storage/users", name), nil
}
