package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

const (
	accessTokenTTL  = 60 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// Claims carries the token subject (user email) plus the user id.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func CreateAccessToken(email string, userID uuid.UUID) (string, error) {
	return createToken(email, userID, accessTokenTTL)
}

func CreateRefreshToken(email string, userID uuid.UUID) (string, error) {
	return createToken(email, userID, refreshTokenTTL)
}

func createToken(email string, userID uuid.UUID, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
