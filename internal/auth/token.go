// internal/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de acesso (inclui RBAC simples: IsAdmin).
type Claims struct {
	UserID  uint `json:"userId"`
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token.
const AccessTTL = 15 * time.Minute

func segredo() ([]byte, error) {
	s := os.Getenv("AUTH_JWT_SECRET")
	if s == "" {
		return nil, errors.New("AUTH_JWT_SECRET não configurado")
	}
	return []byte(s), nil
}

// GenerateAccessToken gera um JWT HS256 com sub, exp, iat e jti.
func GenerateAccessToken(userID uint, isAdmin bool) (string, error) {
	key, err := segredo()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        fmt.Sprintf("%d-%d", userID, now.UnixNano()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseAndValidate valida assinatura e expiração e devolve as claims.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	key, err := segredo()
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("token expirado")
	}

	return c, nil
}
