package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ownmsg/message-service/internal/model"
)

// Service is the single boundary enforcing the message data-model
// invariants: it validates input before any store access, constructs the
// canonical record, and passes storage failures through untouched.
type Service struct {
	repository MessageRepo
	validator  Validator
}

func New(repo MessageRepo, validator Validator) *Service {
	return &Service{
		repository: repo,
		validator:  validator,
	}
}

func (s *Service) SendMessage(ctx context.Context, input *model.SendMessageInput) (*model.Message, error) {
	if err := s.validator.ValidateSendMessage(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	message := &model.Message{
		ID:         uuid.New().String(),
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
		Status:     model.StatusSent,
	}

	if err := s.repository.SaveMessage(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *Service) ListMessages(ctx context.Context, limit int) (model.MessageList, error) {
	if err := s.validator.ValidateLimit(limit); err != nil {
		return nil, err
	}

	return s.repository.GetRecentMessages(ctx, limit)
}

func (s *Service) ListBySender(ctx context.Context, senderID string, limit int) (model.MessageList, error) {
	if senderID == "" {
		return nil, model.NewValidationError("senderId", "senderId parameter is required")
	}

	if err := s.validator.ValidateLimit(limit); err != nil {
		return nil, err
	}

	return s.repository.GetMessagesBySender(ctx, senderID, limit)
}

func (s *Service) ListByReceiver(ctx context.Context, receiverID string, limit int) (model.MessageList, error) {
	if receiverID == "" {
		return nil, model.NewValidationError("receiverId", "receiverId parameter is required")
	}

	if err := s.validator.ValidateLimit(limit); err != nil {
		return nil, err
	}

	return s.repository.GetMessagesByReceiver(ctx, receiverID, limit)
}
