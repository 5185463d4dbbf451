package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ownmsg/message-service/internal/model"
)

const sessionTTL = 30 * time.Minute

type Generator struct {
	secret []byte
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
	}
}

func (g *Generator) GenerateSessionToken(userID, username, phoneNumber string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(sessionTTL)

	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username:    username,
		PhoneNumber: phoneNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign session JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateSessionToken(tokenString string) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse session JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid session JWT token")
}
