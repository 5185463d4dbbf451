//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/ownmsg/message-service/internal/model"
)

type MessageRepo interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	GetRecentMessages(ctx context.Context, limit int) (model.MessageList, error)
	GetMessagesBySender(ctx context.Context, senderID string, limit int) (model.MessageList, error)
	GetMessagesByReceiver(ctx context.Context, receiverID string, limit int) (model.MessageList, error)
}

type Validator interface {
	ValidateSendMessage(input *model.SendMessageInput) error
	ValidateLimit(limit int) error
}
