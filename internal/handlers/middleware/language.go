package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/holonet/holonet-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave do idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave do serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// Language detecta o idioma da requisição e o disponibiliza no contexto.
// Prioridade: query ?lang=, header Accept-Language, idioma padrão.
func Language(svc *i18n.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" || !svc.IsLanguageSupported(lang) {
			lang = pickAcceptLanguage(svc, c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = svc.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, svc)

		c.Next()
	}
}

// Translate traduz uma chave usando o serviço e idioma do contexto.
// Sem serviço disponível, a própria chave é retornada.
func Translate(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, ok := c.Get(I18nServiceContextKey)
	if !ok {
		return key
	}

	svc, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return svc.T(RequestLanguage(c), key, params...)
}

// RequestLanguage retorna o idioma detectado para a requisição
func RequestLanguage(c *gin.Context) string {
	if lang, ok := c.Get(LanguageContextKey); ok {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return ""
}

// pickAcceptLanguage percorre o Accept-Language e retorna o primeiro idioma
// suportado, aceitando variação sem região (pt-BR -> pt)
func pickAcceptLanguage(svc *i18n.Service, header string) string {
	if header == "" {
		return ""
	}

	for _, lang := range strings.Split(header, ",") {
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if svc.IsLanguageSupported(lang) {
			return lang
		}

		if idx := strings.Index(lang, "-"); idx != -1 {
			if base := lang[:idx]; svc.IsLanguageSupported(base) {
				return base
			}
		}
	}

	return ""
}
