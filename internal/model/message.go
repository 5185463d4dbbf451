package model

import (
	"time"
)

const (
	StatusSent = "sent"
)

type MessageList []Message

type Message struct {
	ID         string    `db:"id" json:"id"`
	SenderID   string    `db:"sender_id" json:"senderId"`
	ReceiverID string    `db:"receiver_id" json:"receiverId"`
	Content    string    `db:"content" json:"message"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
	Status     string    `db:"status" json:"status"`
}

type SendMessageInput struct {
	SenderID   string `json:"senderId" validate:"required,max=100"`
	ReceiverID string `json:"receiverId" validate:"required,max=100"`
	Content    string `json:"message" validate:"required,max=1000"`
}
