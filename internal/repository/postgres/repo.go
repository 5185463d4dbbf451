package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/ownmsg/message-service/internal/config"
	"github.com/ownmsg/message-service/internal/model"
)

type Repository struct {
	connection   *sqlx.DB
	queryTimeout time.Duration
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection:   conn,
		queryTimeout: cfg.Postgres.QueryTimeout,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// withTimeout bounds every store call so a degraded database surfaces as a
// storage failure instead of a hung request.
func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.queryTimeout)
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, model.ErrStorageUnavailable, err)
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := sq.Insert("messages").
		Columns("id", "sender_id", "receiver_id", "content", "created_at", "updated_at", "status").
		Values(message.ID, message.SenderID, message.ReceiverID, message.Content,
			message.CreatedAt, message.UpdatedAt, message.Status).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return storageError("failed to save message", err)
	}

	return nil
}

func (r *Repository) GetRecentMessages(ctx context.Context, limit int) (model.MessageList, error) {
	return r.selectMessages(ctx, messageSelect().Limit(uint64(limit)))
}

func (r *Repository) GetMessagesBySender(ctx context.Context, senderID string, limit int) (model.MessageList, error) {
	return r.selectMessages(ctx, messageSelect().
		Where(sq.Eq{"sender_id": senderID}).
		Limit(uint64(limit)))
}

func (r *Repository) GetMessagesByReceiver(ctx context.Context, receiverID string, limit int) (model.MessageList, error) {
	return r.selectMessages(ctx, messageSelect().
		Where(sq.Eq{"receiver_id": receiverID}).
		Limit(uint64(limit)))
}

// messageSelect orders newest first; the id tiebreak keeps the order
// deterministic for records created at the same instant.
func messageSelect() sq.SelectBuilder {
	return sq.Select(
		"id",
		"sender_id",
		"receiver_id",
		"content",
		"created_at",
		"updated_at",
		"status",
	).
		From("messages").
		OrderBy("created_at DESC", "id ASC")
}

func (r *Repository) selectMessages(ctx context.Context, builder sq.SelectBuilder) (model.MessageList, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessageList{}
	err = r.connection.SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, storageError("failed to fetch messages", err)
	}

	return messages, nil
}

func (r *Repository) AddUser(ctx context.Context, user *model.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := sq.Insert("users").
		Columns("id", "username", "phone_number", "is_phone_verified").
		Values(user.ID, user.Username, user.PhoneNumber, user.IsPhoneVerified).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return storageError("failed to add user", err)
	}

	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := sq.Select("id", "username", "phone_number", "is_phone_verified", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.connection.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, storageError("failed to get user", err)
	}

	return &user, nil
}

func (r *Repository) UpdateUserName(ctx context.Context, userID, newUsername string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := sq.Update("users").
		Set("username", newUsername).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return storageError("failed to update username", err)
	}

	return nil
}
