package model

import (
	"time"
)

type User struct {
	ID              string    `db:"id" json:"uid"`
	Username        string    `db:"username" json:"username"`
	PhoneNumber     string    `db:"phone_number" json:"phoneNumber"`
	IsPhoneVerified bool      `db:"is_phone_verified" json:"isPhoneVerified"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
	UpdatedAt       time.Time `db:"updated_at" json:"-"`
}

// Identity is the provider-side record for a registered phone number.
type Identity struct {
	SubjectID   string `json:"subject_id"`
	PhoneNumber string `json:"phone_number"`
	DisplayName string `json:"display_name,omitempty"`
}

// IdentityToken holds the verified claims of a provider-issued ID token.
type IdentityToken struct {
	SubjectID   string `json:"subject_id"`
	PhoneNumber string `json:"phone_number"`
}

type UserUpdatedEvent struct {
	UserID      string `json:"user_id"`
	NewUsername string `json:"new_username"`
}
