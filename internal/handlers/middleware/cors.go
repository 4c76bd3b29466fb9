package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AllowedOrigins normaliza a lista de origens configurada em ORIGIN
func AllowedOrigins(origin string) []string {
	parts := strings.Split(origin, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// OriginAllowed aplica a política de origem compartilhada entre o REST e o
// websocket. Requisições sem Origin (mesma origem, curl) são aceitas.
func OriginAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// CORS monta o middleware gin-contrib/cors com a política da aplicação
func CORS(allowed []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "x-access-token"},
		ExposeHeaders: []string{"Content-Length"},
	}

	wildcard := false
	for _, o := range allowed {
		if o == "*" {
			wildcard = true
			break
		}
	}

	if wildcard {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowed
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
