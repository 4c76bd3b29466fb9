package services

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate é a instância compartilhada do go-playground/validator
var validate = validator.New()

// nomePattern espelha a regra de nome de usuário do cadastro: 3 a 30
// caracteres, começando por letra ou número
var nomePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ._-]{2,29}$`)

func validNome(nome string) bool {
	return nomePattern.MatchString(strings.TrimSpace(nome))
}

func validEmail(email string) bool {
	return validate.Var(strings.TrimSpace(email), "required,email") == nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// hashSenha aplica o digest de senha da base: SHA-256 puro, sem salt e sem
// fator de trabalho. Fraqueza conhecida, mantida por compatibilidade com os
// registros de usuários existentes.
func hashSenha(senha string) string {
	sum := sha256.Sum256([]byte(senha))
	return hex.EncodeToString(sum[:])
}
