package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "secondbrain"

var (
	jwtSecret []byte
	tokenTTL  = 7 * 24 * time.Hour
)

// InitJWT sets the signing secret and token lifetime for the process.
// Must be called before GenerateToken or ParseToken.
func InitJWT(secret string, ttl time.Duration) {
	jwtSecret = []byte(secret)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

// GenerateToken issues a signed HS256 bearer token embedding the user id.
func GenerateToken(userID string) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("jwt secret not initialized")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     tokenIssuer,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a bearer token and returns the embedded user id.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	if iss, ok := claims["iss"].(string); ok && iss != tokenIssuer {
		return "", errors.New("invalid token issuer")
	}

	if exp, ok := claims["exp"].(float64); !ok || time.Now().Unix() > int64(exp) {
		return "", errors.New("token has expired")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("invalid user id in token")
	}
	return userID, nil
}
