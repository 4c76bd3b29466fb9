package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/holonet/holonet-backend/internal/handlers/middleware"
)

// ErrorResponse é o corpo de erro da API: uma única mensagem legível,
// sem códigos estruturados
type ErrorResponse struct {
	Err string `json:"err"`
}

// Err monta o corpo {"err": mensagem} traduzindo o código do erro para o
// idioma da requisição
func Err(c *gin.Context, err error) ErrorResponse {
	return ErrorResponse{Err: T(c, err.Error())}
}

// T traduz uma chave no contexto da requisição
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	return middleware.Translate(c, key, params...)
}
