package auth

import (
	"fmt"
	"time"

	"lead-pipeline-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload the external identity collaborator issues.
// Token issuance and credential verification live outside this service; we
// only validate and map tokens to board users.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service validates bearer tokens
type Service struct {
	secret []byte
}

// NewService creates a new auth service
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// ValidateToken parses and verifies a JWT, returning its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("token carries no email claim")
	}
	return claims, nil
}

// GenerateToken issues a token for a user. Kept for tests and local
// development; production tokens come from the external identity provider.
func (s *Service) GenerateToken(user *models.User, ttl time.Duration) (string, error) {
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
