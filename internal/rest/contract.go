//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/ownmsg/message-service/internal/model"
)

type MessageService interface {
	SendMessage(ctx context.Context, input *model.SendMessageInput) (*model.Message, error)
	ListMessages(ctx context.Context, limit int) (model.MessageList, error)
	ListBySender(ctx context.Context, senderID string, limit int) (model.MessageList, error)
	ListByReceiver(ctx context.Context, receiverID string, limit int) (model.MessageList, error)
}

type UserRepo interface {
	AddUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
}

type IdentityClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*model.IdentityToken, error)
	CreateIdentity(ctx context.Context, phoneNumber, displayName, password string) (string, error)
	LookupByPhone(ctx context.Context, phoneNumber string) (*model.Identity, error)
}

type JWTGenerator interface {
	GenerateSessionToken(userID, username, phoneNumber string) (string, int64, error)
	ValidateSessionToken(tokenString string) (*model.SessionClaims, error)
}
