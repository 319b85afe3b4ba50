package repositories_sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/errors"
	"github.com/drujensen/aichat/internal/domain/interfaces"

	"github.com/google/uuid"
)

type SqliteMessageRepository struct {
	db *sql.DB
}

func NewSQLiteMessageRepository(db *sql.DB) *SqliteMessageRepository {
	return &SqliteMessageRepository{db: db}
}

func (r *SqliteMessageRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO message (id, conversation_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, message.ID, message.ConversationID, string(message.Role), message.Content, message.CreatedAt.UnixMicro())
	if err != nil {
		return errors.InternalErrorf("failed to create message: %v", err)
	}

	return nil
}

func (r *SqliteMessageRepository) ListMessages(ctx context.Context, conversationID string) ([]*entities.Message, error) {
	// Oldest first; rowid breaks ties between same-instant inserts.
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, conversation_id, role, content, created_at
		FROM message
		WHERE conversation_id = ?
		ORDER BY created_at ASC, rowid ASC
	`, conversationID)
	if err != nil {
		return nil, errors.InternalErrorf("failed to list messages: %v", err)
	}
	defer rows.Close()

	var messages []*entities.Message
	for rows.Next() {
		var message entities.Message
		var role string
		var createdAt int64
		if err := rows.Scan(&message.ID, &message.ConversationID, &role, &message.Content, &createdAt); err != nil {
			return nil, errors.InternalErrorf("failed to scan message row: %v", err)
		}
		message.Role = entities.Role(role)
		message.CreatedAt = time.UnixMicro(createdAt)
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.InternalErrorf("failed to iterate message rows: %v", err)
	}

	return messages, nil
}

var _ interfaces.MessageRepository = (*SqliteMessageRepository)(nil)
