package model

import "github.com/golang-jwt/jwt/v5"

type SessionClaims struct {
	jwt.RegisteredClaims

	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
}
