package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/ownmsg/message-service/internal/config"
	"github.com/ownmsg/message-service/internal/model"
)

type DBRepo interface {
	UpdateUserName(ctx context.Context, userID, newUsername string) error
}

// Handler applies username changes published by the user platform so the
// locally stored profile stays in sync.
type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdatedHandler")

	var event model.UserUpdatedEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user event: %v", err))
		return
	}

	if event.UserID == "" || event.NewUsername == "" {
		logger.Error("incomplete user update event, skipping")
		return
	}

	if err := h.repository.UpdateUserName(ctx, event.UserID, event.NewUsername); err != nil {
		logger.Error(fmt.Sprintf("failed to update username for %s: %v", event.UserID, err))
	}
}
