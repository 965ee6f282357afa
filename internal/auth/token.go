package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token claims: the registered set plus the username.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// GenerateToken issues an HS256 access token for username.
func GenerateToken(username string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Username: username,
	})

	return token.SignedString(secretKey)
}

// UsernameFromToken validates tokenString and returns its username.
// Expired tokens fail with common.ErrTokenExpired, anything else wrong with
// common.ErrInvalidToken.
func UsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Username == "" {
		return "", common.ErrInvalidToken
	}
	return claims.Username, nil
}

// SessionFromToken rebuilds an authenticated session from a valid token.
func SessionFromToken(tokenString string, secretKey []byte) (*Session, error) {
	username, err := UsernameFromToken(tokenString, secretKey)
	if err != nil {
		return nil, err
	}
	return &Session{identity: username, authed: true}, nil
}
