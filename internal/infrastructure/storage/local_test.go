package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("imagem", filename)
	if err != nil {
		t.Fatalf("falha inesperada ao montar multipart: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("falha inesperada ao escrever conteúdo: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("PUT", "/usuario/imagem", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("falha inesperada ao interpretar multipart: %v", err)
	}

	return req.MultipartForm.File["imagem"][0]
}

func TestLocalCriaDiretorios(t *testing.T) {
	root := t.TempDir()

	local, err := NewLocal(root)
	if err != nil {
		t.Fatalf("falha inesperada ao criar storage: %v", err)
	}

	for _, dir := range []string{local.UsersDir(), local.CommunitiesDir()} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("diretório %s deveria existir", dir)
		}
	}
}

func TestSaveUserImage(t *testing.T) {
	local, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("falha inesperada ao criar storage: %v", err)
	}

	fh := uploadFileHeader(t, "perfil.png", []byte("conteudo-da-imagem"))

	public, err := local.SaveUserImage(fh)
	if err != nil {
		t.Fatalf("falha inesperada ao salvar imagem: %v", err)
	}

	if !strings.HasPrefix(public, "storage/users/") {
		t.Errorf("caminho público = %q, esperava prefixo storage/users/", public)
	}
	if filepath.Ext(public) != ".png" {
		t.Errorf("caminho público = %q, esperava extensão preservada", public)
	}

	saved := filepath.Join(local.UsersDir(), filepath.Base(public))
	data, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("arquivo salvo deveria existir: %v", err)
	}
	if string(data) != "conteudo-da-imagem" {
		t.Errorf("conteúdo = %q, esperava o upload intacto", data)
	}
}
