// Package auth provides JWT minting and verification for the server API.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/avoronkov/wellfinder/internal/common"
)

// Claims carries the registered claims plus the account the token was
// issued for.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string
}

// GenerateToken signs an HS256 token for accountID expiring at expiresAt.
// Each token carries a unique ID, so repeated mints for the same account
// never collide.
func GenerateToken(accountID string, secretKey []byte, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		AccountID: accountID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetAccountIDFromToken parses and verifies tokenString and returns the
// account it was issued for. Expired or malformed tokens yield
// common.ErrInvalidToken.
func GetAccountIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrInvalidToken
		}
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.AccountID, nil
}
