package repositories_json

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/errors"
	"github.com/drujensen/aichat/internal/domain/interfaces"

	"github.com/google/uuid"
)

type JsonMessageRepository struct {
	mu       sync.RWMutex
	filePath string
	data     []*entities.Message
}

func NewJSONMessageRepository(dataDir string) (interfaces.MessageRepository, error) {
	filePath := filepath.Join(dataDir, "messages.json")
	repo := &JsonMessageRepository{
		filePath: filePath,
		data:     []*entities.Message{},
	}

	if err := repo.load(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *JsonMessageRepository) load() error {
	data, err := os.ReadFile(r.filePath)
	if os.IsNotExist(err) {
		return nil // File doesn't exist yet, start with empty data
	}
	if err != nil {
		return errors.InternalErrorf("failed to read messages.json: %v", err)
	}

	var messages []*entities.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return errors.InternalErrorf("failed to unmarshal messages.json: %v", err)
	}

	// Validate UUIDs
	for _, message := range messages {
		if message.ID == "" {
			return errors.InternalErrorf("message is missing an ID")
		}
		if _, err := uuid.Parse(message.ID); err != nil {
			return errors.InternalErrorf("message has an invalid UUID: %v", err)
		}
	}

	r.data = messages
	return nil
}

func (r *JsonMessageRepository) save() error {
	data, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return errors.InternalErrorf("failed to marshal messages: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.filePath), 0755); err != nil {
		return errors.InternalErrorf("failed to create directory: %v", err)
	}

	if err := os.WriteFile(r.filePath, data, 0644); err != nil {
		return errors.InternalErrorf("failed to write messages.json: %v", err)
	}

	return nil
}

func (r *JsonMessageRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	r.data = append(r.data, message)
	return r.save()
}

func (r *JsonMessageRepository) ListMessages(ctx context.Context, conversationID string) ([]*entities.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Slice order is insertion order, which is creation order.
	var messages []*entities.Message
	for _, message := range r.data {
		if message.ConversationID == conversationID {
			copied := *message
			messages = append(messages, &copied)
		}
	}

	return messages, nil
}

var _ interfaces.MessageRepository = (*JsonMessageRepository)(nil)
