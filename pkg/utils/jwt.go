package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

var signingKey []byte

// SetSigningKey installs the configured secret; called once at startup.
// Until then the helpers fall back to the raw environment so tooling
// that bypasses config still works.
func SetSigningKey(secret string) {
	signingKey = []byte(secret)
}

func jwtKey() []byte {
	if len(signingKey) > 0 {
		return signingKey
	}
	return []byte(os.Getenv("JWT_SECRET"))
}

func CreateToken(userId uuid.UUID, username string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:   userId.String(),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userId.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
