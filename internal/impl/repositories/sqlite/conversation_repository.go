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

// conversationListLimit caps how many conversations a single list call
// returns, newest first.
const conversationListLimit = 100

type SqliteConversationRepository struct {
	db *sql.DB
}

func NewSQLiteConversationRepository(db *sql.DB) *SqliteConversationRepository {
	return &SqliteConversationRepository{db: db}
}

func (r *SqliteConversationRepository) CreateConversation(ctx context.Context, conversation *entities.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	conversation.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conversation (id, title, created_by, created_at)
		VALUES (?, ?, ?, ?)
	`, conversation.ID, conversation.Title, conversation.CreatedBy, conversation.CreatedAt.UnixMicro())
	if err != nil {
		return errors.InternalErrorf("failed to create conversation: %v", err)
	}

	return nil
}

func (r *SqliteConversationRepository) GetConversation(ctx context.Context, id string) (*entities.Conversation, error) {
	var conversation entities.Conversation
	var createdAt int64

	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, created_by, created_at
		FROM conversation
		WHERE id = ?
	`, id).Scan(&conversation.ID, &conversation.Title, &conversation.CreatedBy, &createdAt)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundErrorf("conversation not found: %s", id)
	}
	if err != nil {
		return nil, errors.InternalErrorf("failed to get conversation: %v", err)
	}

	conversation.CreatedAt = time.UnixMicro(createdAt)
	return &conversation, nil
}

func (r *SqliteConversationRepository) ListConversations(ctx context.Context) ([]*entities.Conversation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, created_by, created_at
		FROM conversation
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, conversationListLimit)
	if err != nil {
		return nil, errors.InternalErrorf("failed to list conversations: %v", err)
	}
	defer rows.Close()

	var conversations []*entities.Conversation
	for rows.Next() {
		var conversation entities.Conversation
		var createdAt int64
		if err := rows.Scan(&conversation.ID, &conversation.Title, &conversation.CreatedBy, &createdAt); err != nil {
			return nil, errors.InternalErrorf("failed to scan conversation row: %v", err)
		}
		conversation.CreatedAt = time.UnixMicro(createdAt)
		conversations = append(conversations, &conversation)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.InternalErrorf("failed to iterate conversation rows: %v", err)
	}

	return conversations, nil
}

func (r *SqliteConversationRepository) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

var _ interfaces.ConversationRepository = (*SqliteConversationRepository)(nil)
