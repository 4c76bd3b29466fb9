package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL é a validade fixa do token
const TokenTTL = 72 * time.Hour

// ErrInvalidToken sinaliza token expirado, malformado ou sem assinatura válida
var ErrInvalidToken = errors.New("invalid token")

// Claims é o payload do token: identidade mínima do usuário
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService emite e verifica tokens HS256 assinados com o segredo do servidor
type JWTService struct {
	key []byte
	ttl time.Duration
}

// NewJWTService cria um serviço de tokens com a validade padrão
func NewJWTService(key string) *JWTService {
	return NewJWTServiceTTL(key, TokenTTL)
}

// NewJWTServiceTTL cria um serviço de tokens com validade customizada
func NewJWTServiceTTL(key string, ttl time.Duration) *JWTService {
	return &JWTService{key: []byte(key), ttl: ttl}
}

// Issue assina um token carregando id e email do usuário
func (s *JWTService) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify valida o token e retorna as claims. Falha fechado: qualquer
// problema (expiração, assinatura, formato) resulta em ErrInvalidToken.
func (s *JWTService) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
