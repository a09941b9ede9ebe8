// Package auth validates access tokens issued by the external auth service.
package auth

import (
	"medremind/config"
	"medremind/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type jwtService struct {
	accessSecret string
}

// NewJWTService is the constructor for jwtService. Token issuing lives in the
// auth service; this side only verifies signatures against the shared secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// ValidateAccessToken verifies the token and extracts the subject user ID.
func (s *jwtService) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return uuid.Nil, errors.New("invalid access token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "token has no subject")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "token subject is not a user ID")
	}

	return userID, nil
}
